package directory

import (
	"strings"

	"github.com/xw1nchester/pinfinds-backend/internal/provider"
)

// Filter narrows a provider listing. The zero value matches everything.
type Filter struct {
	SearchTerm string
	Categories map[provider.Category]struct{}
	// ShowVerified is nil for all providers, otherwise the required isVerified value.
	ShowVerified *bool
}

func NewFilter() Filter {
	return Filter{Categories: make(map[provider.Category]struct{})}
}

func (f *Filter) SetSearchTerm(term string) {
	f.SearchTerm = term
}

// ToggleCategory adds the category when absent and removes it otherwise.
func (f *Filter) ToggleCategory(c provider.Category) {
	if f.Categories == nil {
		f.Categories = make(map[provider.Category]struct{})
	}

	if _, ok := f.Categories[c]; ok {
		delete(f.Categories, c)
		return
	}

	f.Categories[c] = struct{}{}
}

func (f *Filter) SetShowVerified(v *bool) {
	f.ShowVerified = v
}

func (f *Filter) Clear() {
	*f = NewFilter()
}

func (f Filter) HasCategory(c provider.Category) bool {
	_, ok := f.Categories[c]
	return ok
}

func (f Filter) Matches(p provider.Provider) bool {
	return f.matchesSearch(p) && f.matchesCategory(p) && f.matchesVerified(p)
}

// contact is compared as is, it is usually digits
func (f Filter) matchesSearch(p provider.Provider) bool {
	term := strings.ToLower(f.SearchTerm)

	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(string(p.ServiceType)), term) ||
		strings.Contains(p.Contact, term)
}

func (f Filter) matchesCategory(p provider.Provider) bool {
	if len(f.Categories) == 0 {
		return true
	}

	return f.HasCategory(p.ServiceType)
}

func (f Filter) matchesVerified(p provider.Provider) bool {
	return f.ShowVerified == nil || *f.ShowVerified == p.IsVerified
}

// Apply returns the providers matching f in their original order.
func Apply(providers []provider.Provider, f Filter) []provider.Provider {
	res := make([]provider.Provider, 0, len(providers))

	for _, p := range providers {
		if f.Matches(p) {
			res = append(res, p)
		}
	}

	return res
}
