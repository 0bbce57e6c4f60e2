package catalog

import (
	"math"
	"testing"
	"time"

	catalogRepo "calmfix/database/repository/catalog"
	"calmfix/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *DefaultCatalogService {
	return &DefaultCatalogService{Repo: catalogRepo.NewMemoryCatalogRepo()}
}

func TestListServicesReturnsFixedCatalog(t *testing.T) {
	services := newService().ListServices()

	require.Len(t, services, 8)
	ids := make([]string, 0, len(services))
	for _, s := range services {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"plumber", "electrician", "carpenter", "painter", "hvac", "locksmith", "appliance", "roofing"}, ids)
}

func TestListServicesReturnsCopies(t *testing.T) {
	svc := newService()
	first := svc.ListServices()
	first[0].Subcategories[0] = "changed"
	first[0].Name = "changed"

	again := svc.ListServices()
	assert.Equal(t, "Plumber", again[0].Name)
	assert.Equal(t, "Leak Repair", again[0].Subcategories[0])
}

func TestQuoteServicePricing(t *testing.T) {
	svc := newService()
	noon := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	standard, err := svc.QuoteService("plumber", models.UrgencyStandard, noon)
	require.NoError(t, err)
	assert.True(t, standard.EstimatedPrice.Equal(decimal.NewFromInt(85)))
	assert.Equal(t, "15-20 min", standard.ResponseTime)
	assert.True(t, standard.Available)

	emergency, err := svc.QuoteService("plumber", models.UrgencyEmergency, noon)
	require.NoError(t, err)
	assert.True(t, emergency.EstimatedPrice.Equal(decimal.NewFromInt(120)))

	mixedCase, err := svc.QuoteService("plumber", "EMERGENCY", noon)
	require.NoError(t, err)
	assert.True(t, mixedCase.EstimatedPrice.Equal(decimal.NewFromInt(120)))

	unset, err := svc.QuoteService("roofing", "", noon)
	require.NoError(t, err)
	assert.True(t, unset.EstimatedPrice.Equal(decimal.NewFromInt(120)))
}

func TestQuoteServiceAvailabilityWindow(t *testing.T) {
	svc := newService()
	at := func(hour int) time.Time { return time.Date(2026, 10, 19, hour, 30, 0, 0, time.UTC) }

	cases := []struct {
		service string
		hour    int
		want    bool
	}{
		{"carpenter", 6, false},
		{"carpenter", 7, true},
		{"carpenter", 22, true},
		{"carpenter", 23, false},
		{"plumber", 3, true},
	}
	for _, tc := range cases {
		quote, err := svc.QuoteService(tc.service, models.UrgencyStandard, at(tc.hour))
		require.NoError(t, err)
		assert.Equal(t, tc.want, quote.Available, "%s at %02d:30", tc.service, tc.hour)
	}
}

func TestQuoteServiceUnknown(t *testing.T) {
	_, err := newService().QuoteService("gardener", models.UrgencyStandard, time.Now())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestListProfessionalsSortedByDistanceThenRating(t *testing.T) {
	pros := newService().ListProfessionals("")

	require.Len(t, pros, 6)
	names := make([]string, 0, len(pros))
	for _, p := range pros {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"David Rodriguez", // 0.5
		"Mike Johnson",    // 0.8
		"Sarah Chen",      // 1.2
		"Emily Watson",    // 1.5
		"Lisa Park",       // 1.8
		"Robert Kim",      // 2.1
	}, names)
}

func TestListProfessionalsFiltersByService(t *testing.T) {
	svc := newService()

	pros := svc.ListProfessionals("locksmith")
	require.Len(t, pros, 1)
	assert.Equal(t, "Lisa Park", pros[0].Name)

	assert.Empty(t, svc.ListProfessionals("roofing"))
	// Filtering must not shrink the catalog itself.
	assert.Len(t, svc.ListProfessionals(""), 6)
}

func TestMatchProfessional(t *testing.T) {
	svc := newService()

	pro, err := svc.MatchProfessional("plumber")
	require.NoError(t, err)
	assert.Equal(t, 1, pro.ID)

	_, err = svc.MatchProfessional("appliance")
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestGetProfessional(t *testing.T) {
	svc := newService()

	pro, err := svc.GetProfessional(2)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", pro.Name)

	_, err = svc.GetProfessional(99)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestParseDistance(t *testing.T) {
	assert.Equal(t, 0.8, ParseDistance("0.8 miles"))
	assert.Equal(t, 2.0, ParseDistance("2"))
	assert.True(t, math.IsInf(ParseDistance("nearby"), 1))
	assert.True(t, math.IsInf(ParseDistance(""), 1))
}

func TestListLocations(t *testing.T) {
	locations := newService().ListLocations()
	require.Len(t, locations, 6)
	assert.Equal(t, "Downtown Plaza", locations[0].Name)
	assert.Equal(t, "current", locations[len(locations)-1].ID)
}
