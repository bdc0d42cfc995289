package registration

import (
	"github.com/xw1nchester/pinfinds-backend/internal/location"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
)

// View is what a client needs to render the current wizard step.
type View struct {
	Step        Step               `json:"step"`
	Pincode     string             `json:"pincode"`
	Phone       string             `json:"phone,omitempty"`
	Form        *provider.Fields   `json:"form,omitempty"`
	IsEdit      bool               `json:"isEdit"`
	Error       string             `json:"error,omitempty"`
	Location    *location.Location `json:"location,omitempty"`
	CurrentUser *provider.Provider `json:"currentUser,omitempty"`
	Redirect    string             `json:"redirect,omitempty"`
}

type PhoneRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type OTPRequest struct {
	OTP string `json:"otp" validate:"required"`
}

type ProfileRequest struct {
	Name        string            `json:"name"`
	ServiceType provider.Category `json:"serviceType" validate:"required"`
	Contact     string            `json:"contact" validate:"required"`
	ShowContact bool              `json:"showContact"`
	ImageURL    string            `json:"imageUrl"`
	Bio         string            `json:"bio"`
	WhatsApp    string            `json:"whatsapp"`
	Instagram   string            `json:"instagram"`
	Website     string            `json:"website"`
	MapURL      string            `json:"mapUrl"`
}

func (r ProfileRequest) Fields() provider.Fields {
	return provider.Fields{
		Name:        r.Name,
		ServiceType: r.ServiceType,
		Contact:     r.Contact,
		ShowContact: r.ShowContact,
		ImageURL:    r.ImageURL,
		Bio:         r.Bio,
		WhatsApp:    r.WhatsApp,
		Instagram:   r.Instagram,
		Website:     r.Website,
		MapURL:      r.MapURL,
	}
}

// NewView describes s for the given pincode.
func NewView(s Snapshot) View {
	view := View{
		Step:    s.State.Step(),
		Pincode: s.Pincode,
		Error:   s.Error,
	}

	switch st := s.State.(type) {
	case OtpVerification:
		view.Phone = st.Phone
	case ProfileDetails:
		form := st.Form
		view.Phone = st.Phone
		view.Form = &form
		view.IsEdit = st.IsEdit()
	case Established:
		p := st.Provider
		view.CurrentUser = &p
		view.Redirect = "/contacts/" + s.Pincode
	}

	return view
}
