package models

import (
	"strings"
	"time"
)

// Booking statuses.
const (
	StatusConfirmed = "confirmed"
	StatusEnRoute   = "en_route"
	StatusCancelled = "cancelled"
)

// Urgency levels.
const (
	UrgencyStandard  = "standard"
	UrgencyEmergency = "emergency"
)

// NormalizeUrgency folds case and surrounding space. Empty means standard; ok is
// false for any other unknown level.
func NormalizeUrgency(raw string) (urgency string, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", UrgencyStandard:
		return UrgencyStandard, true
	case UrgencyEmergency:
		return UrgencyEmergency, true
	}
	return "", false
}

// BookingUpdate is one entry in a booking's status history.
type BookingUpdate struct {
	Status    string    `bson:"status" json:"status"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Message   string    `bson:"message" json:"message"`
}

// Booking represents a requested service engagement.
type Booking struct {
	ID               string          `bson:"id" json:"id"` // "CF-<unix millis>"
	ProfessionalID   int             `bson:"professional_id" json:"professionalId"`
	ServiceType      string          `bson:"service_type" json:"serviceType"`
	Location         string          `bson:"location" json:"location"`
	Urgency          string          `bson:"urgency" json:"urgency"`
	Description      string          `bson:"description" json:"description"`
	ContactMethod    string          `bson:"contact_method,omitempty" json:"contactMethod,omitempty"`
	UserID           string          `bson:"user_id" json:"userId"`
	Status           string          `bson:"status" json:"status"`
	CreatedAt        time.Time       `bson:"created_at" json:"createdAt"`
	EstimatedArrival time.Time       `bson:"estimated_arrival" json:"estimatedArrival"`
	Updates          []BookingUpdate `bson:"updates" json:"updates"`
}

// BookingDetail is a booking joined with its professional and service name.
type BookingDetail struct {
	Booking
	Professional *ProfessionalContact `json:"professional,omitempty"`
	Service      string               `json:"service"`
}

// BookingRequest is the body of POST /api/bookings.
type BookingRequest struct {
	ProfessionalID int    `json:"professionalId"`
	ServiceType    string `json:"serviceType" binding:"required"`
	Location       string `json:"location"`
	Urgency        string `json:"urgency" binding:"omitempty,urgency"`
	Description    string `json:"description"`
	ContactMethod  string `json:"contactMethod"`
	UserID         string `json:"userId"`
}
