// models/service_type.go
package models

import "github.com/shopspring/decimal"

func init() {
	// Prices go over the wire as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Service is a bookable category in the catalog.
type Service struct {
	ID              string          `json:"id"`   // e.g., "plumber"
	Name            string          `json:"name"` // e.g., "Plumber"
	Icon            string          `json:"icon"`
	Description     string          `json:"description"`
	BasePrice       decimal.Decimal `json:"basePrice"`      // hourly, standard urgency
	EmergencyPrice  decimal.Decimal `json:"emergencyPrice"` // hourly, emergency urgency
	AvgResponseTime string          `json:"avgResponseTime"`
	Available24x7   bool            `json:"available24x7"`
	Subcategories   []string        `json:"subcategories"`
}

// ServiceQuote is the price/availability estimate for one service request.
type ServiceQuote struct {
	Service        Service         `json:"service"`
	EstimatedPrice decimal.Decimal `json:"estimatedPrice"`
	ResponseTime   string          `json:"responseTime"`
	Available      bool            `json:"available"`
}

// QuoteRequest is the body of POST /api/services.
type QuoteRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Location  string `json:"location"`
	Urgency   string `json:"urgency" binding:"omitempty,urgency"`
}
