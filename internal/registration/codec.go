package registration

import (
	"encoding/json"
	"fmt"

	"github.com/xw1nchester/pinfinds-backend/internal/provider"
)

// Snapshot is a wizard state as kept in the session between requests.
type Snapshot struct {
	State   State
	Pincode string
	Error   string
}

type envelope struct {
	Step     Step               `json:"step"`
	Pincode  string             `json:"pincode"`
	Phone    string             `json:"phone,omitempty"`
	Form     *provider.Fields   `json:"form,omitempty"`
	Existing *provider.Provider `json:"existing,omitempty"`
	Provider *provider.Provider `json:"provider,omitempty"`
	Error    string             `json:"error,omitempty"`
}

func Encode(s Snapshot) (json.RawMessage, error) {
	env := envelope{
		Pincode: s.Pincode,
		Error:   s.Error,
	}

	switch st := s.State.(type) {
	case PhoneEntry:
		env.Step = StepPhone
	case OtpVerification:
		env.Step = StepOTP
		env.Phone = st.Phone
	case ProfileDetails:
		env.Step = StepProfile
		env.Phone = st.Phone
		env.Form = &st.Form
		env.Existing = st.Existing
	case Established:
		env.Step = StepEstablished
		env.Provider = &st.Provider
	default:
		return nil, fmt.Errorf("unknown registration state %T", s.State)
	}

	return json.Marshal(env)
}

func Decode(raw json.RawMessage) (Snapshot, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Snapshot{}, err
	}

	snapshot := Snapshot{
		Pincode: env.Pincode,
		Error:   env.Error,
	}

	switch env.Step {
	case StepPhone:
		snapshot.State = PhoneEntry{}
	case StepOTP:
		snapshot.State = OtpVerification{Phone: env.Phone}
	case StepProfile:
		st := ProfileDetails{Phone: env.Phone, Existing: env.Existing}
		if env.Form != nil {
			st.Form = *env.Form
		}
		snapshot.State = st
	case StepEstablished:
		if env.Provider == nil {
			return Snapshot{}, fmt.Errorf("established registration state without provider")
		}
		snapshot.State = Established{Provider: *env.Provider}
	default:
		return Snapshot{}, fmt.Errorf("unknown registration step %q", env.Step)
	}

	return snapshot, nil
}
