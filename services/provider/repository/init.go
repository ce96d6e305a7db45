package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/optimat/internal/pkg/database"
	"github.com/piresc/optimat/internal/pkg/models"
)

// ProviderRepo implements the provider repository interface
type ProviderRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
	schema      string
	table       string // quoted <schema>.<table>
	mockTable   string
	sourceTable string
}

// NewProviderRepository creates a new provider repository. redisClient may be
// nil, in which case candidates are always read from Postgres.
func NewProviderRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *ProviderRepo {
	schema := cfg.Database.Schema
	if schema == "" {
		schema = "atccc"
	}
	return &ProviderRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
		schema:      schema,
		table:       qualified(schema, cfg.Database.ProviderTable()),
		mockTable:   qualified(schema, "providers_mock"),
		sourceTable: qualified(schema, "providers"),
	}
}

func qualified(schema, table string) string {
	return pq.QuoteIdentifier(schema) + "." + pq.QuoteIdentifier(table)
}
