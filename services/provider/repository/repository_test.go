package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/optimat/internal/pkg/database"
	"github.com/piresc/optimat/internal/pkg/models"
	"github.com/piresc/optimat/services/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var candidateColumns = []string{"provider_id", "provider_name", "provider_type", "service_hours", "service_zone"}

var detailColumnNames = []string{
	"provider_id", "provider_name", "contacts", "provider_org",
	"service_hours", "fare", "booking",
	"eligibility_req", "schedule_type", "routing_type", "provider_type",
}

const (
	hoursDoc = `{"hours":[{"day":"1111100","start":"0444","end":"2414"}]}`
	zoneDoc  = `{"type":"Polygon","coordinates":[[[-123,37],[-122,37],[-122,38],[-123,38],[-123,37]]]}`
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.Database.Schema = "atccc"
	cfg.ProviderCache.Enabled = true
	cfg.ProviderCache.TTL = time.Minute
	return cfg
}

func setupProviderRepoTest(t *testing.T, cfg *models.Config, withRedis bool) (*ProviderRepo, sqlmock.Sqlmock, *miniredis.Miniredis, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	var (
		mr          *miniredis.Miniredis
		redisClient *database.RedisClient
	)
	if withRedis {
		mr = miniredis.RunT(t)
		redisClient = &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	}

	repo := NewProviderRepository(cfg, sqlxDB, redisClient)
	cleanup := func() {
		if redisClient != nil {
			redisClient.Close()
		}
		sqlxDB.Close()
	}
	return repo, mock, mr, cleanup
}

func candidateQuery(table string) string {
	return regexp.QuoteMeta("SELECT provider_id, provider_name, provider_type, service_hours, service_zone FROM " + table)
}

func TestNewProviderRepository_TableSelection(t *testing.T) {
	cfg := testConfig()
	repo := NewProviderRepository(cfg, nil, nil)
	assert.Equal(t, `"atccc"."providers"`, repo.table)

	cfg.Database.UseMockData = true
	cfg.Database.Schema = ""
	repo = NewProviderRepository(cfg, nil, nil)
	assert.Equal(t, `"atccc"."providers_mock"`, repo.table)
	assert.Equal(t, `"atccc"."providers"`, repo.sourceTable)
}

func TestFetchCandidates(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, got []*models.ProviderRecord, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(candidateColumns).
					AddRow(int64(3), "Hopelink", "paratransit", hoursDoc, zoneDoc).
					AddRow(int64(8), "Metro Access", "dial-a-ride", []byte(hoursDoc), []byte(zoneDoc))
				mock.ExpectQuery(candidateQuery(`"atccc"."providers"`)).WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, got []*models.ProviderRecord, err error) {
				require.NoError(t, err)
				require.Len(t, got, 2)
				assert.Equal(t, int64(3), got[0].ID)
				assert.Equal(t, "Hopelink", got[0].Name)
				assert.JSONEq(t, hoursDoc, string(got[0].Schedule))
				assert.JSONEq(t, zoneDoc, string(got[1].Zone))
			},
		},
		{
			name: "Missing name or type kept",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(candidateColumns).
					AddRow(int64(5), "Sound Generations", nil, hoursDoc, zoneDoc).
					AddRow(int64(6), nil, nil, hoursDoc, zoneDoc)
				mock.ExpectQuery(regexp.QuoteMeta(
					"WHERE provider_id IS NOT NULL AND service_hours IS NOT NULL AND service_zone IS NOT NULL ORDER BY provider_id",
				)).WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, got []*models.ProviderRecord, err error) {
				require.NoError(t, err)
				require.Len(t, got, 2)
				assert.Equal(t, "Sound Generations", got[0].Name)
				assert.Equal(t, "", got[0].Type)
				assert.Equal(t, int64(6), got[1].ID)
				assert.Equal(t, "", got[1].Name)
				assert.JSONEq(t, zoneDoc, string(got[1].Zone))
			},
		},
		{
			name: "Empty catalog",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(candidateQuery(`"atccc"."providers"`)).WillReturnRows(sqlmock.NewRows(candidateColumns))
			},
			assertFunc: func(t *testing.T, got []*models.ProviderRecord, err error) {
				require.NoError(t, err)
				assert.Empty(t, got)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(candidateQuery(`"atccc"."providers"`)).WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, got []*models.ProviderRecord, err error) {
				assert.Error(t, err)
				assert.Nil(t, got)
				assert.Contains(t, err.Error(), "failed to fetch provider candidates")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, _, cleanup := setupProviderRepoTest(t, testConfig(), false)
			defer cleanup()

			tc.mockSetup(mock)

			got, err := repo.FetchCandidates(context.Background())

			tc.assertFunc(t, got, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFetchCandidates_ReadThroughCache(t *testing.T) {
	repo, mock, mr, cleanup := setupProviderRepoTest(t, testConfig(), true)
	defer cleanup()
	ctx := context.Background()

	malformed := `{"type":"Polygon","coordinates":[[`
	rows := sqlmock.NewRows(candidateColumns).
		AddRow(int64(3), "Hopelink", "paratransit", hoursDoc, zoneDoc).
		AddRow(int64(4), "Broken Zone", "paratransit", hoursDoc, malformed)
	mock.ExpectQuery(candidateQuery(`"atccc"."providers"`)).WillReturnRows(rows)

	first, err := repo.FetchCandidates(ctx)
	require.NoError(t, err)
	assert.True(t, mr.Exists(`provider:candidates:"atccc"."providers"`))
	assert.Equal(t, time.Minute, mr.TTL(`provider:candidates:"atccc"."providers"`))

	// served from Redis; no second query is expected
	second, err := repo.FetchCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, first[0].Name, second[0].Name)
	assert.Equal(t, malformed, string(second[1].Zone))
	assert.NoError(t, mock.ExpectationsWereMet())

	require.NoError(t, repo.InvalidateCandidates(ctx))
	assert.False(t, mr.Exists(`provider:candidates:"atccc"."providers"`))

	mock.ExpectQuery(candidateQuery(`"atccc"."providers"`)).
		WillReturnRows(sqlmock.NewRows(candidateColumns).AddRow(int64(3), "Hopelink", "paratransit", hoursDoc, zoneDoc))
	third, err := repo.FetchCandidates(ctx)
	require.NoError(t, err)
	assert.Len(t, third, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchCandidates_RedisUnavailableFallsBack(t *testing.T) {
	repo, mock, mr, cleanup := setupProviderRepoTest(t, testConfig(), true)
	defer cleanup()
	mr.Close()

	mock.ExpectQuery(candidateQuery(`"atccc"."providers"`)).
		WillReturnRows(sqlmock.NewRows(candidateColumns).AddRow(int64(3), "Hopelink", "paratransit", hoursDoc, zoneDoc))

	got, err := repo.FetchCandidates(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchCandidates_CacheDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.ProviderCache.Enabled = false
	repo, mock, mr, cleanup := setupProviderRepoTest(t, cfg, true)
	defer cleanup()

	mock.ExpectQuery(candidateQuery(`"atccc"."providers"`)).
		WillReturnRows(sqlmock.NewRows(candidateColumns).AddRow(int64(3), "Hopelink", "paratransit", hoursDoc, zoneDoc))

	_, err := repo.FetchCandidates(context.Background())

	require.NoError(t, err)
	assert.Empty(t, mr.Keys())
	assert.NoError(t, repo.InvalidateCandidates(context.Background()))
}

func TestGetProviderByID(t *testing.T) {
	query := regexp.QuoteMeta(`FROM "atccc"."providers" WHERE provider_id = $1`)

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, got *models.ProviderDetail, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(detailColumnNames).AddRow(
					int64(7), "Hopelink", "(425)555-0100", nil,
					hoursDoc, `{"type":"fixed"}`, nil,
					"ada-approved", "in-advance-book", nil, "paratransit",
				)
				mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, got *models.ProviderDetail, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Hopelink", got.Name)
				require.NotNil(t, got.Contacts)
				assert.Equal(t, "(425)555-0100", *got.Contacts)
				assert.Nil(t, got.Organization)
				assert.JSONEq(t, `{"type":"fixed"}`, string(got.Fare))
				assert.Nil(t, got.Booking)
				assert.Equal(t, "paratransit", *got.Type)
			},
		},
		{
			name: "Provider Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows(detailColumnNames))
			},
			assertFunc: func(t *testing.T, got *models.ProviderDetail, err error) {
				assert.ErrorIs(t, err, provider.ErrProviderNotFound)
				assert.Nil(t, got)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, got *models.ProviderDetail, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, provider.ErrProviderNotFound)
				assert.Contains(t, err.Error(), "failed to get provider 7")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, _, cleanup := setupProviderRepoTest(t, testConfig(), false)
			defer cleanup()

			tc.mockSetup(mock)

			got, err := repo.GetProviderByID(context.Background(), 7)

			tc.assertFunc(t, got, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindByName_EscapesPattern(t *testing.T) {
	repo, mock, _, cleanup := setupProviderRepoTest(t, testConfig(), false)
	defer cleanup()

	rows := sqlmock.NewRows(detailColumnNames).AddRow(
		int64(9), "100% Mobility", nil, nil, nil, nil, nil, nil, nil, nil, nil,
	)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE provider_name ILIKE $1 ORDER BY provider_id`)).
		WithArgs(`%100\% mob%`).
		WillReturnRows(rows)

	got, err := repo.FindByName(context.Background(), "100% mob")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(9), got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByName_NoRows(t *testing.T) {
	repo, mock, _, cleanup := setupProviderRepoTest(t, testConfig(), false)
	defer cleanup()

	mock.ExpectQuery("ILIKE").WithArgs("%zzz%").WillReturnRows(sqlmock.NewRows(detailColumnNames))

	got, err := repo.FindByName(context.Background(), "zzz")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListNamesAndProviders(t *testing.T) {
	repo, mock, _, cleanup := setupProviderRepoTest(t, testConfig(), false)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT provider_name FROM "atccc"."providers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"provider_name"}).AddRow("Hopelink").AddRow("Metro Access"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "atccc"."providers" ORDER BY provider_id`)).
		WillReturnRows(sqlmock.NewRows(detailColumnNames).
			AddRow(int64(1), "Hopelink", nil, nil, nil, nil, nil, nil, nil, nil, nil).
			AddRow(int64(2), "Metro Access", nil, nil, nil, nil, nil, nil, nil, nil, nil))

	names, err := repo.ListNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Hopelink", "Metro Access"}, names)

	providers, err := repo.ListProviders(context.Background())
	require.NoError(t, err)
	assert.Len(t, providers, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProviders_Error(t *testing.T) {
	repo, mock, _, cleanup := setupProviderRepoTest(t, testConfig(), false)
	defer cleanup()

	mock.ExpectQuery("ORDER BY provider_id").WillReturnError(errors.New("database error"))

	_, err := repo.ListProviders(context.Background())

	assert.ErrorContains(t, err, "failed to list providers")
}
