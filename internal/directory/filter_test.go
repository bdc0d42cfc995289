package directory

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
	providerdb "github.com/xw1nchester/pinfinds-backend/internal/provider/db"
)

func boolPtr(v bool) *bool {
	return &v
}

func isSubsequence(sub, full []provider.Provider) bool {
	i := 0
	for _, p := range full {
		if i < len(sub) && sub[i] == p {
			i++
		}
	}
	return i == len(sub)
}

func filters() map[string]Filter {
	shop := NewFilter()
	shop.ToggleCategory(provider.Shop)

	verified := NewFilter()
	verified.SetShowVerified(boolPtr(true))

	combined := NewFilter()
	combined.SetSearchTerm("r")
	combined.ToggleCategory(provider.Plumber)
	combined.ToggleCategory(provider.Carpenter)
	combined.SetShowVerified(boolPtr(true))

	return map[string]Filter{
		"empty":    NewFilter(),
		"zero":     {},
		"shop":     shop,
		"verified": verified,
		"search":   {SearchTerm: "ST"},
		"combined": combined,
	}
}

func TestApply_Identity(t *testing.T) {
	list := providerdb.Seed()

	assert.Equal(t, list, Apply(list, NewFilter()))
	assert.Equal(t, list, Apply(list, Filter{}))
}

func TestApply_EmptyInput(t *testing.T) {
	res := Apply(nil, NewFilter())
	require.NotNil(t, res)
	assert.Empty(t, res)
}

func TestApply_SubsequenceAndIdempotence(t *testing.T) {
	list := providerdb.Seed()

	for name, f := range filters() {
		t.Run(name, func(t *testing.T) {
			once := Apply(list, f)
			assert.True(t, isSubsequence(once, list))
			assert.Equal(t, once, Apply(once, f))
		})
	}
}

func TestApply_Category(t *testing.T) {
	list := []provider.Provider{
		{ID: 1, ServiceType: provider.Electrician},
		{ID: 2, ServiceType: provider.Shop},
		{ID: 3, ServiceType: provider.Salon},
		{ID: 4, ServiceType: provider.Shop},
	}

	f := NewFilter()
	f.ToggleCategory(provider.Shop)

	res := Apply(list, f)
	require.Len(t, res, 2)
	for _, p := range res {
		assert.Equal(t, provider.Shop, p.ServiceType)
	}

	f.ToggleCategory(provider.Shop)
	assert.Equal(t, list, Apply(list, f))
}

func TestApply_Verified(t *testing.T) {
	list := []provider.Provider{
		{ID: 1, IsVerified: true},
		{ID: 2, IsVerified: false},
		{ID: 3, IsVerified: true},
	}

	tests := []struct {
		name        string
		showVerfied *bool
		expectedIDs []int
	}{
		{name: "all", showVerfied: nil, expectedIDs: []int{1, 2, 3}},
		{name: "verified only", showVerfied: boolPtr(true), expectedIDs: []int{1, 3}},
		{name: "unverified only", showVerfied: boolPtr(false), expectedIDs: []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter()
			f.SetShowVerified(tt.showVerfied)

			ids := []int{}
			for _, p := range Apply(list, f) {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestFilter_MatchesSearch(t *testing.T) {
	p := provider.Provider{
		Name:        "QuickFix Plumbers",
		ServiceType: provider.Plumber,
		Contact:     "+91 80500 11223",
	}

	tests := []struct {
		term     string
		expected bool
	}{
		{term: "plumb", expected: true},
		{term: "PLUMB", expected: true},
		{term: "quickfix", expected: true},
		{term: "80500", expected: true},
		{term: "zzz", expected: false},
		{term: " plumb", expected: true},
		{term: "plumb  ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			f := NewFilter()
			f.SetSearchTerm(tt.term)
			assert.Equal(t, tt.expected, f.Matches(p))
		})
	}
}

func TestFilter_Clear(t *testing.T) {
	f := NewFilter()
	f.SetSearchTerm("shop")
	f.ToggleCategory(provider.Shop)
	f.SetShowVerified(boolPtr(false))

	f.Clear()

	assert.Empty(t, f.SearchTerm)
	assert.Empty(t, f.Categories)
	assert.Nil(t, f.ShowVerified)
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expected      Filter
		expectedError error
	}{
		{
			name:     "empty",
			query:    "",
			expected: NewFilter(),
		},
		{
			name:  "all params",
			query: "search=fix&category=Plumber,Shop&category=Tutor&verified=true",
			expected: Filter{
				SearchTerm: "fix",
				Categories: map[provider.Category]struct{}{
					provider.Plumber: {},
					provider.Shop:    {},
					provider.Tutor:   {},
				},
				ShowVerified: boolPtr(true),
			},
		},
		{
			name:     "verified all",
			query:    "verified=all",
			expected: NewFilter(),
		},
		{
			name:  "unverified",
			query: "verified=false",
			expected: Filter{
				Categories:   map[provider.Category]struct{}{},
				ShowVerified: boolPtr(false),
			},
		},
		{
			name:          "unknown category",
			query:         "category=Astronaut",
			expectedError: provider.ErrUnknownCategory,
		},
		{
			name:          "invalid verified",
			query:         "verified=maybe",
			expectedError: ErrInvalidVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			f, err := FromQuery(q)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}
