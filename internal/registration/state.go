package registration

import "github.com/xw1nchester/pinfinds-backend/internal/provider"

type Step string

const (
	StepPhone       Step = "phone"
	StepOTP         Step = "otp"
	StepProfile     Step = "profile"
	StepEstablished Step = "established"
)

// State is one step of the registration wizard. Each variant carries only
// the data known at that step.
type State interface {
	Step() Step
	isState()
}

type PhoneEntry struct{}

type OtpVerification struct {
	Phone string
}

// ProfileDetails is reached after OTP verification, or directly in edit mode
// when Existing is set.
type ProfileDetails struct {
	Phone    string
	Form     provider.Fields
	Existing *provider.Provider
}

type Established struct {
	Provider provider.Provider
}

func (PhoneEntry) Step() Step      { return StepPhone }
func (OtpVerification) Step() Step { return StepOTP }
func (ProfileDetails) Step() Step  { return StepProfile }
func (Established) Step() Step     { return StepEstablished }

func (PhoneEntry) isState()      {}
func (OtpVerification) isState() {}
func (ProfileDetails) isState()  {}
func (Established) isState()     {}

func (s ProfileDetails) IsEdit() bool {
	return s.Existing != nil
}
