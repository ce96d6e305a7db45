package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/services/provider"
	"github.com/piresc/optimat/services/provider/matcher"
	"golang.org/x/sync/errgroup"
)

// MatchProviders validates criteria, geocodes both endpoints, and keeps the
// candidates whose schedule and service zone cover the trip
func (uc *ProviderUC) MatchProviders(ctx context.Context, criteria models.MatchCriteria) ([]models.MatchResult, error) {
	req, err := ValidateMatchCriteria(criteria, uc.loc)
	if err != nil {
		return nil, err
	}

	origin, destination, err := uc.geocodeEndpoints(ctx, req)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.repo.FetchCandidates(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to fetch provider candidates", logger.Err(err))
		return nil, provider.NewMatchError(
			provider.CodeMatchProcess,
			"Provider matching failed",
			map[string]interface{}{"original_error": err.Error()},
			err,
		)
	}
	if len(candidates) == 0 {
		return nil, provider.NewMatchError(provider.CodeNoProviders, "No providers found", nil, nil)
	}

	results := uc.filterCandidates(ctx, req, candidates, origin, destination)
	if len(results) == 0 {
		return nil, provider.NewMatchError(
			provider.CodeNoMatches,
			"No providers match the criteria",
			map[string]interface{}{"criteria": req.AdvisoryCriteria()},
			nil,
		)
	}

	logger.InfoCtx(ctx, "Providers matched",
		logger.Int("candidates", len(candidates)),
		logger.Int("matches", len(results)))

	return results, nil
}

// geocodeEndpoints resolves origin and destination concurrently, once each
func (uc *ProviderUC) geocodeEndpoints(ctx context.Context, req models.MatchRequest) (models.Coordinate, models.Coordinate, error) {
	var (
		origin, destination           models.Coordinate
		originFound, destinationFound bool
	)

	var g errgroup.Group
	g.Go(func() error {
		origin, originFound = uc.geocoder.Geocode(ctx, req.OriginAddress)
		return nil
	})
	g.Go(func() error {
		destination, destinationFound = uc.geocoder.Geocode(ctx, req.DestinationAddress)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return origin, destination, provider.NewMatchError(
			provider.CodeMatchProcess,
			"Provider matching failed",
			map[string]interface{}{"original_error": err.Error()},
			err,
		)
	}

	if !originFound || !destinationFound {
		return origin, destination, provider.NewMatchError(
			provider.CodeGeocoding,
			"Could not geocode one or both addresses",
			map[string]interface{}{
				"originAddress":      req.OriginAddress,
				"destinationAddress": req.DestinationAddress,
			},
			nil,
		)
	}
	return origin, destination, nil
}

// filterCandidates evaluates every candidate on a bounded pool. Results land
// in per-index slots so no locking is needed, then get ordered by id.
func (uc *ProviderUC) filterCandidates(
	ctx context.Context,
	req models.MatchRequest,
	candidates []*models.ProviderRecord,
	origin, destination models.Coordinate,
) []models.MatchResult {
	slots := make([]bool, len(candidates))

	var g errgroup.Group
	g.SetLimit(uc.workers)
	for i, p := range candidates {
		i, p := i, p
		g.Go(func() error {
			matched, err := uc.evaluate(req, p, origin, destination)
			if err != nil {
				logger.WarnCtx(ctx, "Skipping provider during match",
					logger.Int64("provider_id", providerID(p)),
					logger.Err(err))
				return nil
			}
			slots[i] = matched
			return nil
		})
	}
	_ = g.Wait()

	results := make([]models.MatchResult, 0, len(candidates))
	for i, matched := range slots {
		if !matched {
			continue
		}
		p := candidates[i]
		results = append(results, models.MatchResult{ID: p.ID, Name: p.Name, Type: p.Type})
	}
	sort.SliceStable(results, func(a, b int) bool { return results[a].ID < results[b].ID })
	return results
}

// evaluate runs the schedule check, then the zone check. A panic while
// reading a record is turned into an error for that provider only.
func (uc *ProviderUC) evaluate(
	req models.MatchRequest,
	p *models.ProviderRecord,
	origin, destination models.Coordinate,
) (matched bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			matched = false
			err = fmt.Errorf("panic while evaluating provider: %v", r)
		}
	}()

	if p == nil {
		return false, fmt.Errorf("nil provider record")
	}

	schedule, err := matcher.ParseSchedule(p.Schedule)
	if err != nil {
		return false, err
	}
	if !matcher.ScheduleMatches(schedule, req.DepartureTime, req.ReturnTime, uc.loc) {
		return false, nil
	}

	zone, err := matcher.ParseZone(p.Zone)
	if err != nil {
		return false, err
	}
	return zone.Covers(origin, destination), nil
}

func providerID(p *models.ProviderRecord) int64 {
	if p == nil {
		return 0
	}
	return p.ID
}
