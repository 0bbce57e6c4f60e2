package catalogRepo

import "calmfix/models"

// CatalogRepository serves the read-only catalog seeded at startup.
type CatalogRepository interface {
	// GetServices returns every service in catalog order.
	GetServices() []models.Service
	// GetServiceByID returns repository.ErrNotFound for unknown ids.
	GetServiceByID(id string) (*models.Service, error)
	// GetProfessionals returns every professional in catalog order.
	GetProfessionals() []models.Professional
	// GetProfessionalByID returns repository.ErrNotFound for unknown ids.
	GetProfessionalByID(id int) (*models.Professional, error)
	// GetLocations returns the preset locations.
	GetLocations() []models.Location
}
