package usecase

import (
	"context"
	"strings"

	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/internal/utils"
)

// ListProviders returns the full catalog ordered by id
func (uc *ProviderUC) ListProviders(ctx context.Context) ([]*models.ProviderDetail, error) {
	return uc.repo.ListProviders(ctx)
}

// ListProviderNames returns every provider name ordered alphabetically
func (uc *ProviderUC) ListProviderNames(ctx context.Context) ([]string, error) {
	return uc.repo.ListNames(ctx)
}

// GetProvider returns one provider or provider.ErrProviderNotFound
func (uc *ProviderUC) GetProvider(ctx context.Context, id int64) (*models.ProviderDetail, error) {
	return uc.repo.GetProviderByID(ctx, id)
}

// FindProvidersByName performs a case-insensitive substring search
func (uc *ProviderUC) FindProvidersByName(ctx context.Context, name string) ([]*models.ProviderDetail, error) {
	return uc.repo.FindByName(ctx, strings.TrimSpace(name))
}

// Geocode resolves a single address
func (uc *ProviderUC) Geocode(ctx context.Context, address string) (models.Coordinate, bool) {
	return uc.geocoder.Geocode(ctx, utils.NormalizeAddress(address))
}

// InvalidateCatalog drops the cached candidate list
func (uc *ProviderUC) InvalidateCatalog(ctx context.Context) error {
	if err := uc.repo.InvalidateCandidates(ctx); err != nil {
		logger.ErrorCtx(ctx, "Failed to invalidate provider catalog cache", logger.Err(err))
		return err
	}
	logger.InfoCtx(ctx, "Provider catalog cache invalidated")
	return nil
}
