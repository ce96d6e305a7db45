package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/services/provider"
)

const detailColumns = `provider_id, provider_name, contacts, provider_org,
		service_hours, fare, booking,
		eligibility_req, schedule_type, routing_type, provider_type`

// ListProviders returns the whole catalog ordered by id
func (r *ProviderRepo) ListProviders(ctx context.Context) ([]*models.ProviderDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY provider_id`, detailColumns, r.table)

	providers := []*models.ProviderDetail{}
	if err := r.db.SelectContext(ctx, &providers, query); err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

// ListNames returns provider names ordered alphabetically
func (r *ProviderRepo) ListNames(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT provider_name FROM %s WHERE provider_name IS NOT NULL ORDER BY provider_name`, r.table)

	names := []string{}
	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("failed to list provider names: %w", err)
	}
	return names, nil
}

// GetProviderByID returns a single provider
func (r *ProviderRepo) GetProviderByID(ctx context.Context, id int64) (*models.ProviderDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE provider_id = $1`, detailColumns, r.table)

	var detail models.ProviderDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, provider.ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to get provider %d: %w", id, err)
	}
	return &detail, nil
}

// FindByName returns providers whose name contains name, ignoring case
func (r *ProviderRepo) FindByName(ctx context.Context, name string) ([]*models.ProviderDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE provider_name ILIKE $1 ORDER BY provider_id`, detailColumns, r.table)

	providers := []*models.ProviderDetail{}
	if err := r.db.SelectContext(ctx, &providers, query, "%"+escapeLike(name)+"%"); err != nil {
		return nil, fmt.Errorf("failed to find providers by name: %w", err)
	}
	return providers, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes name match literally inside a LIKE pattern
func escapeLike(name string) string {
	return likeEscaper.Replace(name)
}
