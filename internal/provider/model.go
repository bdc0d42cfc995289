package provider

import (
	"slices"

	"github.com/xw1nchester/pinfinds-backend/internal/apperror"
)

type Category string

const (
	Electrician Category = "Electrician"
	Salon       Category = "Salon"
	Plumber     Category = "Plumber"
	Medical     Category = "Medical"
	Shop        Category = "Shop"
	Emergency   Category = "Emergency"
	Carpenter   Category = "Carpenter"
	Mechanic    Category = "Mechanic"
	Tutor       Category = "Tutor"
)

var categories = []Category{
	Electrician,
	Salon,
	Plumber,
	Medical,
	Shop,
	Emergency,
	Carpenter,
	Mechanic,
	Tutor,
}

var (
	ErrUnknownCategory            = apperror.NewAppError("unknown service category")
	ErrNameRequired               = apperror.NewAppError("Name and Service Name are required.")
	ErrAlternativeContactRequired = apperror.NewAppError("If you hide your contact number, you must provide a Map URL, Instagram, or Website.")
)

// Categories returns every service category in display order.
func Categories() []Category {
	return slices.Clone(categories)
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

func (c Category) Valid() bool {
	return slices.Contains(categories, c)
}

type Provider struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	ServiceType Category `json:"serviceType"`
	Contact     string   `json:"contact"`
	IsVerified  bool     `json:"isVerified"`
	ShowContact bool     `json:"showContact"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	WhatsApp    string   `json:"whatsapp,omitempty"`
	Instagram   string   `json:"instagram,omitempty"`
	Website     string   `json:"website,omitempty"`
	MapURL      string   `json:"mapUrl,omitempty"`
}

// Fields is the editable part of a provider: everything except id and isVerified.
type Fields struct {
	Name        string   `json:"name"`
	ServiceType Category `json:"serviceType"`
	Contact     string   `json:"contact"`
	ShowContact bool     `json:"showContact"`
	ImageURL    string   `json:"imageUrl"`
	Bio         string   `json:"bio"`
	WhatsApp    string   `json:"whatsapp"`
	Instagram   string   `json:"instagram"`
	Website     string   `json:"website"`
	MapURL      string   `json:"mapUrl"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type ProviderResponse struct {
	Provider Provider `json:"provider"`
}

// Validate checks the rules applied when a profile form is submitted.
// A hidden contact number needs at least one other way to reach the provider.
func (f Fields) Validate() error {
	if f.Name == "" {
		return ErrNameRequired
	}

	if !f.ServiceType.Valid() {
		return ErrUnknownCategory
	}

	if !f.ShowContact && f.MapURL == "" && f.Instagram == "" && f.Website == "" {
		return ErrAlternativeContactRequired
	}

	return nil
}

func (p Provider) Fields() Fields {
	return Fields{
		Name:        p.Name,
		ServiceType: p.ServiceType,
		Contact:     p.Contact,
		ShowContact: p.ShowContact,
		ImageURL:    p.ImageURL,
		Bio:         p.Bio,
		WhatsApp:    p.WhatsApp,
		Instagram:   p.Instagram,
		Website:     p.Website,
		MapURL:      p.MapURL,
	}
}

// Merge overwrites every editable field, keeping id and isVerified.
func (p Provider) Merge(f Fields) Provider {
	return Provider{
		ID:          p.ID,
		IsVerified:  p.IsVerified,
		Name:        f.Name,
		ServiceType: f.ServiceType,
		Contact:     f.Contact,
		ShowContact: f.ShowContact,
		ImageURL:    f.ImageURL,
		Bio:         f.Bio,
		WhatsApp:    f.WhatsApp,
		Instagram:   f.Instagram,
		Website:     f.Website,
		MapURL:      f.MapURL,
	}
}
