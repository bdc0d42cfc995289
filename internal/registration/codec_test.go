package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
)

func TestEncodeDecode(t *testing.T) {
	edit, err := EditProfile(ExistingProvider)
	require.NoError(t, err)

	snapshots := map[string]Snapshot{
		"phone":       {State: PhoneEntry{}, Pincode: Pincode, Error: ErrInvalidPhone.Message},
		"otp":         {State: OtpVerification{Phone: Phone}, Pincode: Pincode},
		"profile":     {State: ProfileDetails{Phone: Phone, Form: provider.Fields{Contact: Phone, ServiceType: provider.Shop, ShowContact: true}}, Pincode: Pincode},
		"edit":        {State: edit, Pincode: Pincode},
		"established": {State: Established{Provider: *ExistingProvider}, Pincode: Pincode},
	}

	for name, snapshot := range snapshots {
		t.Run(name, func(t *testing.T) {
			raw, err := Encode(snapshot)
			require.NoError(t, err)

			decoded, err := Decode(raw)
			require.NoError(t, err)
			assert.Equal(t, snapshot, decoded)
		})
	}
}

func TestEncode_Envelope(t *testing.T) {
	raw, err := Encode(Snapshot{State: OtpVerification{Phone: Phone}, Pincode: Pincode, Error: ErrInvalidOTP.Message})
	require.NoError(t, err)

	assert.JSONEq(t, `{"step":"otp","pincode":"560001","phone":"9876543210","error":"Invalid OTP. Please try again."}`, string(raw))
}

func TestDecode_Invalid(t *testing.T) {
	for _, raw := range []string{`not json`, `{"step":"unknown"}`, `{"step":"established"}`} {
		_, err := Decode([]byte(raw))
		assert.Error(t, err, raw)
	}
}
