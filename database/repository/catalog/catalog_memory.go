package catalogRepo

import (
	"fmt"
	"slices"

	"calmfix/database/repository"
	"calmfix/models"
)

// MemoryCatalogRepo holds the seeded catalog. It is never mutated after construction,
// so reads need no locking; callers always receive copies.
type MemoryCatalogRepo struct {
	services      []models.Service
	professionals []models.Professional
	locations     []models.Location
}

// NewMemoryCatalogRepo returns a repository seeded with the default catalog.
func NewMemoryCatalogRepo() CatalogRepository {
	return &MemoryCatalogRepo{
		services:      seedServices(),
		professionals: seedProfessionals(),
		locations:     seedLocations(),
	}
}

func (r *MemoryCatalogRepo) GetServices() []models.Service {
	out := make([]models.Service, len(r.services))
	for i, s := range r.services {
		out[i] = cloneService(s)
	}
	return out
}

func (r *MemoryCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	for _, s := range r.services {
		if s.ID == id {
			svc := cloneService(s)
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("service %q: %w", id, repository.ErrNotFound)
}

func (r *MemoryCatalogRepo) GetProfessionals() []models.Professional {
	out := make([]models.Professional, len(r.professionals))
	for i, p := range r.professionals {
		out[i] = cloneProfessional(p)
	}
	return out
}

func (r *MemoryCatalogRepo) GetProfessionalByID(id int) (*models.Professional, error) {
	for _, p := range r.professionals {
		if p.ID == id {
			pro := cloneProfessional(p)
			return &pro, nil
		}
	}
	return nil, fmt.Errorf("professional %d: %w", id, repository.ErrNotFound)
}

func (r *MemoryCatalogRepo) GetLocations() []models.Location {
	return slices.Clone(r.locations)
}

func cloneService(s models.Service) models.Service {
	s.Subcategories = slices.Clone(s.Subcategories)
	return s
}

func cloneProfessional(p models.Professional) models.Professional {
	p.Certifications = slices.Clone(p.Certifications)
	return p
}
