package models

import "github.com/shopspring/decimal"

// Professional is a static directory entry for a service provider.
type Professional struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Service        string          `json:"service"` // matches Service.ID
	Rating         float64         `json:"rating"`
	Reviews        int             `json:"reviews"`
	Distance       string          `json:"distance"` // e.g., "0.8 miles"
	ETA            string          `json:"eta"`
	HourlyRate     decimal.Decimal `json:"hourlyRate"`
	Verified       bool            `json:"verified"`
	Image          string          `json:"image"`
	Specialty      string          `json:"specialty"`
	Experience     string          `json:"experience"`
	Certifications []string        `json:"certifications"`
	Availability   string          `json:"availability"`
	CompletedJobs  int             `json:"completedJobs"`
	Phone          string          `json:"phone"`
}

// ProfessionalContact is the subset of a professional shown on a booking.
type ProfessionalContact struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Phone  string  `json:"phone"`
	Rating float64 `json:"rating"`
	Image  string  `json:"image"`
}

// Contact projects the professional onto the booking view.
func (p Professional) Contact() ProfessionalContact {
	return ProfessionalContact{
		ID:     p.ID,
		Name:   p.Name,
		Phone:  p.Phone,
		Rating: p.Rating,
		Image:  p.Image,
	}
}

// Coordinates is a lat/lng pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a preset place the customer can pick as the service address.
type Location struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}
