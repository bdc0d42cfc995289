package providerdb

import (
	"slices"

	"github.com/xw1nchester/pinfinds-backend/internal/provider"
)

var seed = []provider.Provider{
	{
		ID:          1,
		Name:        "Mohammed Azhar",
		ServiceType: provider.Electrician,
		Contact:     "+91 98765 43210",
		IsVerified:  true,
		ShowContact: true,
		ImageURL:    "https://i.pravatar.cc/150?u=1",
		Bio:         "Certified electrician with 10+ years of experience.",
		WhatsApp:    "+919876543210",
	},
	{
		ID:          2,
		Name:        "Ammu’s Beauty Spot",
		ServiceType: provider.Salon,
		Contact:     "+91 98451 23789",
		ShowContact: false,
		ImageURL:    "https://i.pravatar.cc/150?u=2",
		Bio:         "Unisex salon for hair, skin, and nails.",
		Instagram:   "ammusbeautyspot",
		MapURL:      "https://maps.app.goo.gl/example",
	},
	{
		ID:          3,
		Name:        "QuickFix Plumbers",
		ServiceType: provider.Plumber,
		Contact:     "+91 80500 11223",
		IsVerified:  true,
		ShowContact: true,
		Bio:         "24/7 emergency plumbing services.",
	},
	{
		ID:          4,
		Name:        "City Medicals",
		ServiceType: provider.Medical,
		Contact:     "+91 80234 56789",
		IsVerified:  true,
		ShowContact: true,
		ImageURL:    "https://i.pravatar.cc/150?u=4",
		Bio:         "Pharmacy open 24 hours. We deliver.",
		Website:     "https://citymedicals.example.com",
	},
	{
		ID:          5,
		Name:        "Daily Needs Store",
		ServiceType: provider.Shop,
		Contact:     "+91 99001 88776",
		ShowContact: true,
		ImageURL:    "https://i.pravatar.cc/150?u=5",
		Bio:         "All household groceries and items available.",
	},
	{
		ID:          6,
		Name:        "Rajesh Kumar",
		ServiceType: provider.Carpenter,
		Contact:     "+91 98860 12345",
		IsVerified:  true,
		ShowContact: false,
		ImageURL:    "https://i.pravatar.cc/150?u=6",
		Website:     "https://rajeshcarpentry.example.com",
	},
	{
		ID:          7,
		Name:        "24/7 Ambulance",
		ServiceType: provider.Emergency,
		Contact:     "102",
		IsVerified:  true,
		ShowContact: true,
		Bio:         "Fast and reliable ambulance service.",
	},
	{
		ID:          8,
		Name:        "Speedy Auto Garage",
		ServiceType: provider.Mechanic,
		Contact:     "+91 77600 99887",
		ShowContact: true,
		ImageURL:    "https://i.pravatar.cc/150?u=8",
	},
	{
		ID:          9,
		Name:        "Priya Tuition Center",
		ServiceType: provider.Tutor,
		Contact:     "+91 98440 55667",
		IsVerified:  true,
		ShowContact: false,
		ImageURL:    "https://i.pravatar.cc/150?u=9",
		Bio:         "Maths and Science tutoring for grades 6-12.",
		WhatsApp:    "+919844055667",
		MapURL:      "https://maps.app.goo.gl/example2",
	},
}

// Seed returns the sample listing the in-memory storage starts with.
func Seed() []provider.Provider {
	return slices.Clone(seed)
}
