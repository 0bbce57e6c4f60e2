package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"calmfix/database/repository"
	"calmfix/models"
)

// Non-24x7 services take requests between these hours, inclusive.
const (
	openingHour = 7
	closingHour = 22
)

func (s *DefaultCatalogService) ListServices() []models.Service {
	return s.Repo.GetServices()
}

func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	svc, err := s.Repo.GetServiceByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}
		return nil, err
	}
	return svc, nil
}

// QuoteService prices one request: the emergency rate applies only to urgency "emergency".
func (s *DefaultCatalogService) QuoteService(serviceID, urgency string, at time.Time) (*models.ServiceQuote, error) {
	svc, err := s.GetService(serviceID)
	if err != nil {
		return nil, err
	}

	price := svc.BasePrice
	if level, _ := models.NormalizeUrgency(urgency); level == models.UrgencyEmergency {
		price = svc.EmergencyPrice
	}

	return &models.ServiceQuote{
		Service:        *svc,
		EstimatedPrice: price,
		ResponseTime:   svc.AvgResponseTime,
		Available:      IsAvailable(*svc, at),
	}, nil
}

// IsAvailable reports whether the service takes requests at the given local time.
func IsAvailable(svc models.Service, at time.Time) bool {
	if svc.Available24x7 {
		return true
	}
	hour := at.Hour()
	return hour >= openingHour && hour <= closingHour
}

// ListProfessionals filters by service (all when empty) and orders nearest first,
// higher rating first among equal distances.
func (s *DefaultCatalogService) ListProfessionals(service string) []models.Professional {
	pros := s.Repo.GetProfessionals()
	if service != "" {
		pros = slices.DeleteFunc(pros, func(p models.Professional) bool {
			return p.Service != service
		})
	}

	slices.SortStableFunc(pros, func(a, b models.Professional) int {
		if c := cmp.Compare(ParseDistance(a.Distance), ParseDistance(b.Distance)); c != 0 {
			return c
		}
		return cmp.Compare(b.Rating, a.Rating)
	})
	return pros
}

// ParseDistance reads the leading number of a distance such as "0.8 miles".
// Unparseable values sort last.
func ParseDistance(distance string) float64 {
	fields := strings.Fields(distance)
	if len(fields) == 0 {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}

func (s *DefaultCatalogService) GetProfessional(id int) (*models.Professional, error) {
	pro, err := s.Repo.GetProfessionalByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrProfessionalNotFound, id)
		}
		return nil, err
	}
	return pro, nil
}

// MatchProfessional picks the professional that ListProfessionals ranks first.
func (s *DefaultCatalogService) MatchProfessional(service string) (*models.Professional, error) {
	pros := s.ListProfessionals(service)
	if len(pros) == 0 {
		return nil, fmt.Errorf("%w for service %s", ErrProfessionalNotFound, service)
	}
	return &pros[0], nil
}

func (s *DefaultCatalogService) ListLocations() []models.Location {
	return s.Repo.GetLocations()
}
