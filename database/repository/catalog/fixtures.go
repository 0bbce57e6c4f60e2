package catalogRepo

import (
	"calmfix/models"

	"github.com/shopspring/decimal"
)

const placeholderAvatar = "/placeholder.svg?height=40&width=40"

func seedServices() []models.Service {
	return []models.Service{
		{
			ID: "plumber", Name: "Plumber", Icon: "wrench", Description: "Emergency plumbing repairs",
			BasePrice: decimal.NewFromInt(85), EmergencyPrice: decimal.NewFromInt(120),
			AvgResponseTime: "15-20 min", Available24x7: true,
			Subcategories: []string{"Leak Repair", "Drain Cleaning", "Pipe Installation", "Water Heater", "Toilet Repair"},
		},
		{
			ID: "electrician", Name: "Electrician", Icon: "zap", Description: "Electrical repairs & installations",
			BasePrice: decimal.NewFromInt(95), EmergencyPrice: decimal.NewFromInt(140),
			AvgResponseTime: "20-25 min", Available24x7: true,
			Subcategories: []string{"Wiring", "Panel Upgrade", "Outlet Installation", "Lighting", "Smart Home"},
		},
		{
			ID: "carpenter", Name: "Carpenter", Icon: "hammer", Description: "Wood repairs & installations",
			BasePrice: decimal.NewFromInt(75), EmergencyPrice: decimal.NewFromInt(110),
			AvgResponseTime: "25-30 min", Available24x7: false,
			Subcategories: []string{"Door Repair", "Cabinet Installation", "Trim Work", "Furniture Repair", "Custom Build"},
		},
		{
			ID: "painter", Name: "Painter", Icon: "paintbrush", Description: "Interior & exterior painting",
			BasePrice: decimal.NewFromInt(65), EmergencyPrice: decimal.NewFromInt(95),
			AvgResponseTime: "30-35 min", Available24x7: false,
			Subcategories: []string{"Interior Painting", "Exterior Painting", "Touch-ups", "Wallpaper", "Color Consultation"},
		},
		{
			ID: "hvac", Name: "HVAC Technician", Icon: "thermometer", Description: "Heating & cooling systems",
			BasePrice: decimal.NewFromInt(110), EmergencyPrice: decimal.NewFromInt(160),
			AvgResponseTime: "20-30 min", Available24x7: true,
			Subcategories: []string{"AC Repair", "Heating Repair", "Duct Cleaning", "Installation", "Maintenance"},
		},
		{
			ID: "locksmith", Name: "Locksmith", Icon: "key", Description: "Lock & security services",
			BasePrice: decimal.NewFromInt(90), EmergencyPrice: decimal.NewFromInt(130),
			AvgResponseTime: "15-25 min", Available24x7: true,
			Subcategories: []string{"Lockout Service", "Lock Installation", "Key Duplication", "Security Systems", "Safe Services"},
		},
		{
			ID: "appliance", Name: "Appliance Repair", Icon: "settings", Description: "Home appliance repairs",
			BasePrice: decimal.NewFromInt(80), EmergencyPrice: decimal.NewFromInt(115),
			AvgResponseTime: "25-35 min", Available24x7: false,
			Subcategories: []string{"Refrigerator", "Washer/Dryer", "Dishwasher", "Oven/Stove", "Microwave"},
		},
		{
			ID: "roofing", Name: "Roofing", Icon: "home", Description: "Roof repairs & maintenance",
			BasePrice: decimal.NewFromInt(120), EmergencyPrice: decimal.NewFromInt(180),
			AvgResponseTime: "30-45 min", Available24x7: false,
			Subcategories: []string{"Leak Repair", "Shingle Replacement", "Gutter Cleaning", "Inspection", "Emergency Tarping"},
		},
	}
}

func seedProfessionals() []models.Professional {
	return []models.Professional{
		{
			ID: 1, Name: "Mike Johnson", Service: "plumber", Rating: 4.9, Reviews: 127,
			Distance: "0.8 miles", ETA: "15-20 min", HourlyRate: decimal.NewFromInt(85), Verified: true,
			Image: placeholderAvatar, Specialty: "Emergency repairs, drain cleaning", Experience: "8 years",
			Certifications: []string{"Licensed Plumber", "Emergency Response Certified"},
			Availability:   "24/7", CompletedJobs: 1247, Phone: "(555) 123-4567",
		},
		{
			ID: 2, Name: "Sarah Chen", Service: "electrician", Rating: 4.8, Reviews: 89,
			Distance: "1.2 miles", ETA: "20-25 min", HourlyRate: decimal.NewFromInt(95), Verified: true,
			Image: placeholderAvatar, Specialty: "Wiring, panel upgrades", Experience: "6 years",
			Certifications: []string{"Master Electrician", "Smart Home Specialist"},
			Availability:   "24/7", CompletedJobs: 892, Phone: "(555) 234-5678",
		},
		{
			ID: 3, Name: "David Rodriguez", Service: "carpenter", Rating: 4.9, Reviews: 156,
			Distance: "0.5 miles", ETA: "10-15 min", HourlyRate: decimal.NewFromInt(75), Verified: true,
			Image: placeholderAvatar, Specialty: "Cabinet repair, door installation", Experience: "12 years",
			Certifications: []string{"Certified Carpenter", "Custom Furniture Specialist"},
			Availability:   "7 AM - 8 PM", CompletedJobs: 1567, Phone: "(555) 345-6789",
		},
		{
			ID: 4, Name: "Emily Watson", Service: "painter", Rating: 4.7, Reviews: 203,
			Distance: "1.5 miles", ETA: "25-30 min", HourlyRate: decimal.NewFromInt(65), Verified: true,
			Image: placeholderAvatar, Specialty: "Interior painting, touch-ups", Experience: "5 years",
			Certifications: []string{"Professional Painter", "Color Consultant"},
			Availability:   "8 AM - 6 PM", CompletedJobs: 756, Phone: "(555) 456-7890",
		},
		{
			ID: 5, Name: "Robert Kim", Service: "hvac", Rating: 4.8, Reviews: 134,
			Distance: "2.1 miles", ETA: "20-30 min", HourlyRate: decimal.NewFromInt(110), Verified: true,
			Image: placeholderAvatar, Specialty: "AC repair, heating systems", Experience: "10 years",
			Certifications: []string{"HVAC Certified", "EPA Certified"},
			Availability:   "24/7", CompletedJobs: 1123, Phone: "(555) 567-8901",
		},
		{
			ID: 6, Name: "Lisa Park", Service: "locksmith", Rating: 4.9, Reviews: 167,
			Distance: "1.8 miles", ETA: "15-25 min", HourlyRate: decimal.NewFromInt(90), Verified: true,
			Image: placeholderAvatar, Specialty: "Emergency lockouts, security", Experience: "7 years",
			Certifications: []string{"Certified Locksmith", "Security Specialist"},
			Availability:   "24/7", CompletedJobs: 934, Phone: "(555) 678-9012",
		},
	}
}

func seedLocations() []models.Location {
	return []models.Location{
		{ID: "1", Name: "Downtown Plaza", Address: "123 Main St, Downtown", Coordinates: models.Coordinates{Lat: 40.7128, Lng: -74.006}},
		{ID: "2", Name: "Central Park Area", Address: "Central Park West, Midtown", Coordinates: models.Coordinates{Lat: 40.7829, Lng: -73.9654}},
		{ID: "3", Name: "Business District", Address: "Financial District, Downtown", Coordinates: models.Coordinates{Lat: 40.7074, Lng: -74.0113}},
		{ID: "4", Name: "Riverside Commons", Address: "Riverside Dr, West Side", Coordinates: models.Coordinates{Lat: 40.7589, Lng: -73.9851}},
		{ID: "5", Name: "University Campus", Address: "College Ave, North Hills", Coordinates: models.Coordinates{Lat: 40.7505, Lng: -73.9934}},
		{ID: "current", Name: "Current Location", Address: "Your current location", Coordinates: models.Coordinates{Lat: 40.758, Lng: -73.9855}},
	}
}
