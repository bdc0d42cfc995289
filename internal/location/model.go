package location

// Location is a post office record returned by the pincode lookup.
// Pincode is always kept as a string so leading zeros survive.
type Location struct {
	OfficeName   string `json:"officeName"`
	Pincode      string `json:"pincode"`
	Taluk        string `json:"taluk"`
	DistrictName string `json:"districtName"`
	StateName    string `json:"stateName"`
}

type LocationsResponse struct {
	Locations []Location `json:"locations"`
	Selected  bool       `json:"selected"`
}

type LocationRequest struct {
	Location *Location `json:"location" validate:"required"`
}

type LocationResponse struct {
	Location *Location `json:"location"`
}
