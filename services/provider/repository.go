package provider

import (
	"context"

	"github.com/piresc/optimat/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/optimat/services/provider ProviderRepo

// ProviderRepo defines the interface for provider catalog access
type ProviderRepo interface {
	// FetchCandidates returns every provider with a name, type, schedule and zone
	FetchCandidates(ctx context.Context) ([]*models.ProviderRecord, error)
	InvalidateCandidates(ctx context.Context) error

	ListProviders(ctx context.Context) ([]*models.ProviderDetail, error)
	ListNames(ctx context.Context) ([]string, error)
	// GetProviderByID returns ErrProviderNotFound when no row matches
	GetProviderByID(ctx context.Context, id int64) (*models.ProviderDetail, error)
	FindByName(ctx context.Context, name string) ([]*models.ProviderDetail, error)
}
