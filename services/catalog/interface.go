package catalog

import (
	"time"

	catalogRepo "calmfix/database/repository/catalog"
	"calmfix/models"
)

// CatalogService serves the static service, professional and location catalogs.
type CatalogService interface {
	ListServices() []models.Service
	GetService(id string) (*models.Service, error)
	QuoteService(serviceID, urgency string, at time.Time) (*models.ServiceQuote, error)
	ListProfessionals(service string) []models.Professional
	GetProfessional(id int) (*models.Professional, error)
	MatchProfessional(service string) (*models.Professional, error)
	ListLocations() []models.Location
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}
