package usecase

import (
	"fmt"
	"time"

	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/services/provider"
)

const defaultWorkers = 8

// ProviderUC implements the provider use case interface
type ProviderUC struct {
	cfg      *models.Config
	repo     provider.ProviderRepo
	geocoder provider.GeocoderGW
	loc      *time.Location
	workers  int
}

// NewProviderUC creates a new provider use case. Schedules are evaluated in
// cfg.Match.Timezone.
func NewProviderUC(
	cfg *models.Config,
	repo provider.ProviderRepo,
	geocoder provider.GeocoderGW,
) (*ProviderUC, error) {
	tz := cfg.Match.Timezone
	if tz == "" {
		tz = "America/Los_Angeles"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("failed to load match timezone %q: %w", tz, err)
	}

	workers := cfg.Match.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &ProviderUC{
		cfg:      cfg,
		repo:     repo,
		geocoder: geocoder,
		loc:      loc,
		workers:  workers,
	}, nil
}

// Location returns the reference zone schedules are evaluated in
func (uc *ProviderUC) Location() *time.Location {
	return uc.loc
}
