package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/optimat/internal/pkg/constants"
	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/models"
)

// cachedCandidate keeps the stored documents as strings so malformed rows
// survive the round trip unchanged
type cachedCandidate struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Schedule string `json:"schedule"`
	Zone     string `json:"zone"`
}

// candidateRow tolerates providers stored without a name or type
type candidateRow struct {
	ID       int64              `db:"provider_id"`
	Name     sql.NullString     `db:"provider_name"`
	Type     sql.NullString     `db:"provider_type"`
	Schedule models.JSONDoc     `db:"service_hours"`
	Zone     models.ServiceZone `db:"service_zone"`
}

// FetchCandidates returns every provider with a schedule and a zone, ordered
// by id. A missing name or type reads as empty. The list is served from
// Redis when cached.
func (r *ProviderRepo) FetchCandidates(ctx context.Context) ([]*models.ProviderRecord, error) {
	if cached, ok := r.cachedCandidates(ctx); ok {
		return cached, nil
	}

	query := fmt.Sprintf(`
		SELECT provider_id, provider_name, provider_type, service_hours, service_zone
		FROM %s
		WHERE provider_id IS NOT NULL
		  AND service_hours IS NOT NULL
		  AND service_zone IS NOT NULL
		ORDER BY provider_id
	`, r.table)

	var rows []candidateRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to fetch provider candidates: %w", err)
	}

	candidates := make([]*models.ProviderRecord, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, &models.ProviderRecord{
			ID:       row.ID,
			Name:     row.Name.String,
			Type:     row.Type.String,
			Schedule: row.Schedule,
			Zone:     row.Zone,
		})
	}

	r.storeCandidates(ctx, candidates)
	return candidates, nil
}

// InvalidateCandidates drops the cached candidate list
func (r *ProviderRepo) InvalidateCandidates(ctx context.Context) error {
	if !r.cacheEnabled() {
		return nil
	}
	if err := r.redisClient.Delete(ctx, r.candidatesKey()); err != nil {
		return fmt.Errorf("failed to invalidate provider candidates: %w", err)
	}
	return nil
}

func (r *ProviderRepo) cacheEnabled() bool {
	return r.redisClient != nil && r.cfg.ProviderCache.Enabled && r.cfg.ProviderCache.TTL > 0
}

func (r *ProviderRepo) candidatesKey() string {
	return fmt.Sprintf(constants.KeyProviderCandidates, r.table)
}

func (r *ProviderRepo) cachedCandidates(ctx context.Context) ([]*models.ProviderRecord, bool) {
	if !r.cacheEnabled() {
		return nil, false
	}

	data, err := r.redisClient.Get(ctx, r.candidatesKey())
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WarnCtx(ctx, "Provider candidate cache read failed", logger.Err(err))
		}
		return nil, false
	}

	var cached []cachedCandidate
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		logger.WarnCtx(ctx, "Discarding unreadable provider candidate cache", logger.Err(err))
		return nil, false
	}

	candidates := make([]*models.ProviderRecord, 0, len(cached))
	for _, c := range cached {
		candidates = append(candidates, &models.ProviderRecord{
			ID:       c.ID,
			Name:     c.Name,
			Type:     c.Type,
			Schedule: models.JSONDoc(c.Schedule),
			Zone:     models.ServiceZone(c.Zone),
		})
	}
	return candidates, true
}

func (r *ProviderRepo) storeCandidates(ctx context.Context, candidates []*models.ProviderRecord) {
	if !r.cacheEnabled() || len(candidates) == 0 {
		return
	}

	cached := make([]cachedCandidate, 0, len(candidates))
	for _, c := range candidates {
		cached = append(cached, cachedCandidate{
			ID:       c.ID,
			Name:     c.Name,
			Type:     c.Type,
			Schedule: string(c.Schedule),
			Zone:     string(c.Zone),
		})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to encode provider candidates", logger.Err(err))
		return
	}
	if err := r.redisClient.Set(ctx, r.candidatesKey(), data, r.cfg.ProviderCache.TTL); err != nil {
		logger.WarnCtx(ctx, "Failed to cache provider candidates", logger.Err(err))
	}
}
