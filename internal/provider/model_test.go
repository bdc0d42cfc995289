package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(string(c))
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}

	_, err := ParseCategory("Bakery")
	require.ErrorIs(t, err, ErrUnknownCategory)

	_, err = ParseCategory("shop")
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategories_ReturnsCopy(t *testing.T) {
	c := Categories()
	c[0] = "Bakery"

	assert.Equal(t, Electrician, Categories()[0])
	assert.Len(t, Categories(), 9)
}

func TestFields_Validate(t *testing.T) {
	tests := []struct {
		name        string
		fields      Fields
		expectedErr error
	}{
		{
			name:   "public contact",
			fields: Fields{Name: "Daily Needs Store", ServiceType: Shop, ShowContact: true},
		},
		{
			name:        "empty name",
			fields:      Fields{ServiceType: Shop, ShowContact: true},
			expectedErr: ErrNameRequired,
		},
		{
			name:        "unknown category",
			fields:      Fields{Name: "Bakery", ServiceType: "Bakery", ShowContact: true},
			expectedErr: ErrUnknownCategory,
		},
		{
			name:        "hidden contact without alternatives",
			fields:      Fields{Name: "Rajesh Kumar", ServiceType: Carpenter, ShowContact: false},
			expectedErr: ErrAlternativeContactRequired,
		},
		{
			name:   "hidden contact with map url",
			fields: Fields{Name: "Rajesh Kumar", ServiceType: Carpenter, MapURL: "https://x"},
		},
		{
			name:   "hidden contact with instagram",
			fields: Fields{Name: "Ammu's Beauty Spot", ServiceType: Salon, Instagram: "ammusbeautyspot"},
		},
		{
			name:   "hidden contact with website",
			fields: Fields{Name: "Rajesh Kumar", ServiceType: Carpenter, Website: "https://rajeshcarpentry.example.com"},
		},
		{
			name:        "whatsapp is not an alternative",
			fields:      Fields{Name: "Priya Tuition Center", ServiceType: Tutor, WhatsApp: "+919844055667"},
			expectedErr: ErrAlternativeContactRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fields.Validate()
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestProvider_Merge(t *testing.T) {
	existing := Provider{
		ID:          6,
		Name:        "Rajesh Kumar",
		ServiceType: Carpenter,
		Contact:     "+91 98860 12345",
		IsVerified:  true,
		Website:     "https://rajeshcarpentry.example.com",
	}

	merged := existing.Merge(Fields{
		Name:        "Rajesh Woodworks",
		ServiceType: Carpenter,
		Contact:     "+91 98860 12345",
		ShowContact: true,
	})

	assert.Equal(t, 6, merged.ID)
	assert.True(t, merged.IsVerified)
	assert.Equal(t, "Rajesh Woodworks", merged.Name)
	assert.True(t, merged.ShowContact)
	assert.Empty(t, merged.Website)
	assert.Equal(t, existing, existing.Merge(existing.Fields()))
}
