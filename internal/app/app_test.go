package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/xw1nchester/pinfinds-backend/internal/config"
	"github.com/xw1nchester/pinfinds-backend/internal/location"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
	providerhandler "github.com/xw1nchester/pinfinds-backend/internal/provider/handler"
	"github.com/xw1nchester/pinfinds-backend/internal/registration"
	sessionhandler "github.com/xw1nchester/pinfinds-backend/internal/session/handler"
	"go.uber.org/zap"
)

const (
	Pincode = "560001"
	Phone   = "9876543210"
	OTPCode = "123456"
)

type APITestSuite struct {
	suite.Suite
	lookup  *httptest.Server
	server  *httptest.Server
	app     *App
	client  *http.Client
	baseURL string
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, &APITestSuite{})
}

func (s *APITestSuite) SetupSuite() {
	s.lookup = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/" + Pincode:
			w.Write([]byte(`{"pincodeLookup":[{"officeName":"Bangalore GPO","pincode":560001,"taluk":"Bangalore North","districtName":"Bangalore","stateName":"Karnataka"}]}`))
		default:
			w.Write([]byte(`{"pincodeLookup":[]}`))
		}
	}))

	cfg := config.Config{
		Env: config.EnvTest,
		HTTPServer: config.HTTPServer{
			AllowedOrigins: []string{"*"},
			Timeout:        time.Second,
		},
		Storage: config.Storage{Driver: config.StorageMemory},
		Session: config.Session{
			Backend:    config.SessionMemory,
			Secret:     "test-session-secret",
			TTL:        time.Hour,
			CookieName: "sid",
		},
		OTP: config.OTP{Code: OTPCode},
		Location: config.Location{
			BaseURL: s.lookup.URL,
			Timeout: time.Second,
			RPS:     100,
			Burst:   100,
		},
	}

	app, err := NewApp(zap.NewNop(), cfg)
	s.Require().NoError(err)

	s.app = app
	s.server = httptest.NewServer(app.Handler())
	s.baseURL = s.server.URL + "/api"
}

func (s *APITestSuite) TearDownSuite() {
	s.server.Close()
	s.lookup.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s.Require().NoError(s.app.Shutdown(ctx))
}

// SetupTest gives every test a fresh visitor session.
func (s *APITestSuite) SetupTest() {
	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)

	s.client = &http.Client{Jar: jar}
}

func (s *APITestSuite) do(method, path string, body any, dest any) int {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if dest != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(dest))
	}

	return resp.StatusCode
}

func (s *APITestSuite) TestPing() {
	resp, err := s.client.Get(s.baseURL + "/ping")
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("pong", string(body))
}

func (s *APITestSuite) TestLocationIsRemembered() {
	var search location.LocationsResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/locations?q="+Pincode, nil, &search))
	s.True(search.Selected)
	s.Require().Len(search.Locations, 1)
	s.Equal(Pincode, search.Locations[0].Pincode)

	var state sessionhandler.SessionResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/session", nil, &state))
	s.Require().NotNil(state.LastLocation)
	s.Equal("Bangalore GPO", state.LastLocation.OfficeName)
	s.Nil(state.CurrentUser)

	var listing providerhandler.DirectoryResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/pincodes/"+Pincode+"/providers", nil, &listing))
	s.Require().NotNil(listing.Location)
	s.Equal(Pincode, listing.Location.Pincode)

	var other providerhandler.DirectoryResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/pincodes/110001/providers", nil, &other))
	s.Nil(other.Location)

	s.Equal(http.StatusOK, s.do(http.MethodDelete, "/session/location", nil, nil))

	state = sessionhandler.SessionResponse{}
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/session", nil, &state))
	s.Nil(state.LastLocation)
}

func (s *APITestSuite) TestLocationSearchTooShort() {
	var errBody map[string]string
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/locations?q=ab", nil, &errBody))
	s.Equal("Please enter at least 3 characters to search.", errBody["message"])
}

func (s *APITestSuite) TestDirectoryFilter() {
	var all providerhandler.DirectoryResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/pincodes/"+Pincode+"/providers", nil, &all))
	s.Equal(all.Total, len(all.Providers))

	var electricians providerhandler.DirectoryResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/pincodes/"+Pincode+"/providers?category=Electrician", nil, &electricians))
	s.Equal(all.Total, electricians.Total)
	s.Require().NotEmpty(electricians.Providers)
	for _, p := range electricians.Providers {
		s.Equal(provider.Electrician, p.ServiceType)
	}

	var searched providerhandler.DirectoryResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/pincodes/"+Pincode+"/providers?search=quickfix", nil, &searched))
	s.Require().Len(searched.Providers, 1)
	s.Equal("QuickFix Plumbers", searched.Providers[0].Name)

	var errBody map[string]string
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/pincodes/"+Pincode+"/providers?verified=maybe", nil, &errBody))
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/pincodes/"+Pincode+"/providers?category=Astronaut", nil, &errBody))
}

func (s *APITestSuite) TestRegistrationFlow() {
	var before providerhandler.DirectoryResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/pincodes/"+Pincode+"/providers", nil, &before))

	base := "/register/" + Pincode

	var view registration.View
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, base, nil, &view))
	s.Equal(registration.StepPhone, view.Step)

	var errBody map[string]string
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, base+"/phone", registration.PhoneRequest{Phone: "12ab"}, &errBody))
	s.Equal("Please enter a valid phone number.", errBody["message"])

	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, base+"/phone", registration.PhoneRequest{Phone: Phone}, &view))
	s.Equal(registration.StepOTP, view.Step)
	s.Equal(Phone, view.Phone)

	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, base+"/otp", registration.OTPRequest{OTP: "000000"}, &errBody))
	s.Equal("Invalid OTP. Please try again.", errBody["message"])

	view = registration.View{}
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, base, nil, &view))
	s.Equal(registration.StepOTP, view.Step)
	s.Equal("Invalid OTP. Please try again.", view.Error)

	view = registration.View{}
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, base+"/otp", registration.OTPRequest{OTP: OTPCode}, &view))
	s.Equal(registration.StepProfile, view.Step)
	s.Require().NotNil(view.Form)
	s.Equal(Phone, view.Form.Contact)
	s.False(view.IsEdit)

	profile := registration.ProfileRequest{
		Name:        "Sharma Electricals",
		ServiceType: provider.Electrician,
		Contact:     Phone,
		ShowContact: true,
		Bio:         "Wiring and repairs",
	}

	view = registration.View{}
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, base+"/profile", profile, &view))
	s.Equal(registration.StepEstablished, view.Step)
	s.Equal("/contacts/"+Pincode, view.Redirect)
	s.Require().NotNil(view.CurrentUser)
	s.True(view.CurrentUser.IsVerified)
	s.Equal("Sharma Electricals", view.CurrentUser.Name)

	var state sessionhandler.SessionResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/session", nil, &state))
	s.Require().NotNil(state.CurrentUser)
	s.Equal(view.CurrentUser.ID, state.CurrentUser.ID)

	var after providerhandler.DirectoryResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/pincodes/"+Pincode+"/providers", nil, &after))
	s.Equal(before.Total+1, after.Total)
	s.Equal("Sharma Electricals", after.Providers[0].Name)

	view = registration.View{}
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, base+"/edit", nil, &view))
	s.Equal(registration.StepProfile, view.Step)
	s.True(view.IsEdit)
	s.Require().NotNil(view.Form)
	s.Equal("Sharma Electricals", view.Form.Name)

	profile.Name = "Sharma Electricals & Sons"

	view = registration.View{}
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, base+"/profile", profile, &view))
	s.Equal(registration.StepEstablished, view.Step)
	s.Equal("Sharma Electricals & Sons", view.CurrentUser.Name)

	var edited providerhandler.DirectoryResponse
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/pincodes/"+Pincode+"/providers", nil, &edited))
	s.Equal(after.Total, edited.Total)
	s.Equal("Sharma Electricals & Sons", edited.Providers[0].Name)

	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/session/logout", nil, nil))

	state = sessionhandler.SessionResponse{}
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/session", nil, &state))
	s.Nil(state.CurrentUser)

	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, base+"/edit", nil, &errBody))
}

func (s *APITestSuite) TestKnownPhoneLogsIn() {
	base := "/register/" + Pincode

	var view registration.View
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, base+"/phone", registration.PhoneRequest{Phone: "9123456780"}, &view))
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, base+"/otp", registration.OTPRequest{OTP: OTPCode}, &view))
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, base+"/profile", registration.ProfileRequest{
		Name:        "Lakshmi Tailors",
		ServiceType: provider.Shop,
		Contact:     "9123456780",
		ShowContact: true,
	}, &view))
	s.Require().Equal(registration.StepEstablished, view.Step)

	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	s.client = &http.Client{Jar: jar}

	view = registration.View{}
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, base+"/phone", registration.PhoneRequest{Phone: "9123456780"}, &view))
	s.Equal(registration.StepEstablished, view.Step)
	s.Require().NotNil(view.CurrentUser)
	s.Equal("Lakshmi Tailors", view.CurrentUser.Name)
}

func (s *APITestSuite) TestStepOutOfOrder() {
	var errBody map[string]string
	s.Equal(http.StatusConflict, s.do(http.MethodPost, "/register/"+Pincode+"/otp", registration.OTPRequest{OTP: OTPCode}, &errBody))
}
