package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/optimat/internal/pkg/logger"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/services/provider/matcher"
)

const (
	defaultContacts     = "no contact available"
	defaultOrganization = "government"
	defaultBookingVia   = "call center"

	// DefaultHoursResetRatio is the share of copied schedules replaced by
	// generated ones
	DefaultHoursResetRatio = 0.3
)

var bookingPhoneNumbers = []string{
	"(925)938-7433",
	"(510)555-1234",
	"(415)777-8888",
	"(650)123-4567",
	"(408)999-0000",
	"(707)333-4444",
	"(831)222-5555",
	"(916)444-6666",
	"(209)888-9999",
	"(530)777-1111",
}

// ScheduleGenerator supplies service hours for rows that have none
type ScheduleGenerator func() models.ScheduleSpec

// MockCatalogOptions tunes a mock catalog rebuild
type MockCatalogOptions struct {
	Schedule        ScheduleGenerator
	Seed            float64 // Postgres setseed value in [-1, 1]
	HoursResetRatio float64
	ZoneDir         string // <provider name with underscores>.geojson files; empty skips zone loading
}

// MockCatalogStats summarises a mock catalog rebuild
type MockCatalogStats struct {
	Rows               int64
	SchedulesGenerated int
	ZonesLoaded        int
}

type namedProvider struct {
	ID   int64          `db:"provider_id"`
	Name sql.NullString `db:"provider_name"`
}

// RebuildMockCatalog recreates providers_mock from providers in a single
// transaction and fills in randomised test values for the columns the
// service reads
func (r *ProviderRepo) RebuildMockCatalog(ctx context.Context, opts MockCatalogOptions) (MockCatalogStats, error) {
	var stats MockCatalogStats

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// random() below follows this seed for the rest of the transaction
	if _, err = tx.ExecContext(ctx, `SELECT setseed($1)`, opts.Seed); err != nil {
		return stats, fmt.Errorf("failed to seed random: %w", err)
	}

	statements := []string{
		fmt.Sprintf(`DROP TABLE IF EXISTS %s CASCADE`, r.mockTable),
		fmt.Sprintf(`CREATE TABLE %s (LIKE %s INCLUDING ALL)`, r.mockTable, r.sourceTable),
		fmt.Sprintf(`INSERT INTO %s SELECT * FROM %s`, r.mockTable, r.sourceTable),
	}
	for _, stmt := range statements {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return stats, fmt.Errorf("failed to copy provider table: %w", err)
		}
	}

	if err = r.fillDetails(ctx, tx); err != nil {
		return stats, err
	}

	if _, err = tx.ExecContext(ctx,
		fmt.Sprintf(`UPDATE %s SET service_hours = NULL WHERE service_hours IS NOT NULL AND random() < $1`, r.mockTable),
		opts.HoursResetRatio,
	); err != nil {
		return stats, fmt.Errorf("failed to reset service hours: %w", err)
	}

	stats.SchedulesGenerated, err = r.fillSchedules(ctx, tx, opts.Schedule)
	if err != nil {
		return stats, err
	}

	if opts.ZoneDir != "" {
		stats.ZonesLoaded, err = r.fillZones(ctx, tx, opts.ZoneDir)
		if err != nil {
			return stats, err
		}
	}

	if err = r.fillContactDefaults(ctx, tx); err != nil {
		return stats, err
	}

	var source, copied int64
	if err = tx.GetContext(ctx, &source, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.sourceTable)); err != nil {
		return stats, fmt.Errorf("failed to count providers: %w", err)
	}
	if err = tx.GetContext(ctx, &copied, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.mockTable)); err != nil {
		return stats, fmt.Errorf("failed to count mock providers: %w", err)
	}
	if source != copied {
		err = fmt.Errorf("row count mismatch: %d providers vs %d mock providers", source, copied)
		return stats, err
	}
	stats.Rows = copied

	if err = tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit mock catalog: %w", err)
	}

	logger.Info("Mock provider catalog rebuilt",
		logger.Int64("rows", stats.Rows),
		logger.Int("schedules_generated", stats.SchedulesGenerated),
		logger.Int("zones_loaded", stats.ZonesLoaded))
	return stats, nil
}

// fillDetails sets schedule type, eligibility, booking and fare where missing
func (r *ProviderRepo) fillDetails(ctx context.Context, tx *sqlx.Tx) error {
	scheduleType := qualified(r.schema, "providers_schedule_type")
	eligibility := qualified(r.schema, "providers_eligibility_req")

	updates := []struct {
		column string
		stmt   string
		args   []interface{}
	}{
		{
			column: "schedule_type",
			stmt: fmt.Sprintf(`UPDATE %s SET schedule_type = (CASE WHEN random() < 0.5 THEN 'fixed-schedules'::%s ELSE 'in-advance-book'::%s END) WHERE schedule_type IS NULL`,
				r.mockTable, scheduleType, scheduleType),
		},
		{
			column: "eligibility_req",
			stmt: fmt.Sprintf(`UPDATE %s SET eligibility_req = (CASE WHEN random() < 0.5 THEN 'anonymous'::%s ELSE 'ada-approved'::%s END) WHERE eligibility_req IS NULL`,
				r.mockTable, eligibility, eligibility),
		},
		{
			column: "booking",
			stmt: fmt.Sprintf(`UPDATE %s SET booking = json_build_object('call', ($1::text[])[1 + floor(random() * array_length($1::text[], 1))::int], 'method', $2::text) WHERE booking IS NULL OR booking->>'method' IS NULL`,
				r.mockTable),
			args: []interface{}{pq.Array(bookingPhoneNumbers), defaultBookingVia},
		},
		{
			column: "fare",
			stmt: fmt.Sprintf(`UPDATE %s SET fare = (CASE WHEN random() < 0.5 THEN json_build_object('type', 'fixed') ELSE json_build_object('type', 'variable') END) WHERE fare IS NULL OR fare->>'type' IS NULL`,
				r.mockTable),
		},
	}

	for _, u := range updates {
		if _, err := tx.ExecContext(ctx, u.stmt, u.args...); err != nil {
			return fmt.Errorf("failed to fill %s: %w", u.column, err)
		}
	}
	return nil
}

func (r *ProviderRepo) fillSchedules(ctx context.Context, tx *sqlx.Tx, gen ScheduleGenerator) (int, error) {
	var ids []int64
	query := fmt.Sprintf(`SELECT provider_id FROM %s WHERE service_hours IS NULL ORDER BY provider_id`, r.mockTable)
	if err := tx.SelectContext(ctx, &ids, query); err != nil {
		return 0, fmt.Errorf("failed to find providers without hours: %w", err)
	}
	if gen == nil {
		return 0, nil
	}

	update := fmt.Sprintf(`UPDATE %s SET service_hours = $1 WHERE provider_id = $2`, r.mockTable)
	for _, id := range ids {
		hours, err := json.Marshal(gen())
		if err != nil {
			return 0, fmt.Errorf("failed to encode service hours: %w", err)
		}
		if _, err := tx.ExecContext(ctx, update, string(hours), id); err != nil {
			return 0, fmt.Errorf("failed to set service hours for provider %d: %w", id, err)
		}
	}
	return len(ids), nil
}

// fillZones loads a zone file for every provider without one. Missing or
// unusable files are skipped.
func (r *ProviderRepo) fillZones(ctx context.Context, tx *sqlx.Tx, dir string) (int, error) {
	var providers []namedProvider
	query := fmt.Sprintf(`SELECT provider_id, provider_name FROM %s WHERE service_zone IS NULL ORDER BY provider_id`, r.mockTable)
	if err := tx.SelectContext(ctx, &providers, query); err != nil {
		return 0, fmt.Errorf("failed to find providers without zones: %w", err)
	}

	update := fmt.Sprintf(`UPDATE %s SET service_zone = $1::jsonb WHERE provider_id = $2`, r.mockTable)
	loaded := 0
	for _, p := range providers {
		if !p.Name.Valid || strings.TrimSpace(p.Name.String) == "" {
			continue
		}
		path := filepath.Join(dir, zoneFileName(p.Name.String))

		raw, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Warn("No zone file for provider",
					logger.Int64("provider_id", p.ID),
					logger.String("path", path))
			} else {
				logger.Warn("Failed to read zone file",
					logger.Int64("provider_id", p.ID),
					logger.String("path", path),
					logger.Err(err))
			}
			continue
		}
		if _, err := matcher.ParseZone(raw); err != nil {
			logger.Warn("Skipping unusable zone file",
				logger.Int64("provider_id", p.ID),
				logger.String("path", path),
				logger.Err(err))
			continue
		}

		if _, err := tx.ExecContext(ctx, update, string(raw), p.ID); err != nil {
			return 0, fmt.Errorf("failed to set service zone for provider %d: %w", p.ID, err)
		}
		loaded++
	}
	return loaded, nil
}

func zoneFileName(providerName string) string {
	return strings.ReplaceAll(providerName, " ", "_") + ".geojson"
}

// fillContactDefaults fills planning type, website, contacts, contact emails
// and organization where empty
func (r *ProviderRepo) fillContactDefaults(ctx context.Context, tx *sqlx.Tx) error {
	updates := []struct {
		column string
		stmt   string
		args   []interface{}
	}{
		{
			column: "planning_type",
			stmt: fmt.Sprintf(`UPDATE %s SET planning_type = (CASE WHEN random() < 0.33 THEN 'website' WHEN random() < 0.66 THEN 'call' ELSE 'app' END) WHERE planning_type IS NULL OR planning_type = ''`,
				r.mockTable),
		},
		{
			column: "website",
			stmt: fmt.Sprintf(`UPDATE %s SET website = LOWER(CONCAT(REPLACE(provider_name, ' ', ''), '.com')) WHERE website IS NULL OR website = ''`,
				r.mockTable),
		},
		{
			column: "contacts",
			stmt:   fmt.Sprintf(`UPDATE %s SET contacts = $1 WHERE contacts IS NULL OR contacts = ''`, r.mockTable),
			args:   []interface{}{defaultContacts},
		},
		{
			column: "contact_emails",
			stmt: fmt.Sprintf(`UPDATE %s SET contact_emails = LOWER(CONCAT(REPLACE(provider_name, ' ', ''), '@transport.org')) WHERE contact_emails IS NULL OR contact_emails = ''`,
				r.mockTable),
		},
		{
			column: "provider_org",
			stmt:   fmt.Sprintf(`UPDATE %s SET provider_org = $1 WHERE provider_org IS NULL OR provider_org = ''`, r.mockTable),
			args:   []interface{}{defaultOrganization},
		},
	}

	for _, u := range updates {
		if _, err := tx.ExecContext(ctx, u.stmt, u.args...); err != nil {
			return fmt.Errorf("failed to apply provider default %s: %w", u.column, err)
		}
	}
	return nil
}
