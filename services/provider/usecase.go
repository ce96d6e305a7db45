package provider

import (
	"context"

	"github.com/piresc/optimat/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/optimat/services/provider ProviderUC

// ProviderUC defines the interface for provider business logic
type ProviderUC interface {
	// MatchProviders returns the providers whose schedule and service zone
	// cover the requested trip, ordered by ascending id
	MatchProviders(ctx context.Context, criteria models.MatchCriteria) ([]models.MatchResult, error)

	ListProviders(ctx context.Context) ([]*models.ProviderDetail, error)
	ListProviderNames(ctx context.Context) ([]string, error)
	GetProvider(ctx context.Context, id int64) (*models.ProviderDetail, error)
	FindProvidersByName(ctx context.Context, name string) ([]*models.ProviderDetail, error)

	// Geocode resolves a free-form address for the utility endpoint
	Geocode(ctx context.Context, address string) (models.Coordinate, bool)

	// InvalidateCatalog drops any cached copy of the candidate list
	InvalidateCatalog(ctx context.Context) error
}
