// internal/common/profiles/repository_test.go
package profiles

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idea-match-workers/internal/common/config"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/common/metrics"
	"idea-match-workers/internal/common/profiles/profilestest"
)

// ==========================
// Test Helper Functions
// ==========================

var testCache = config.CacheConfig{ProfileTTL: 15 * time.Minute, DismissedTTL: 5 * time.Minute}

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock, redismock.ClientMock) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	return NewRepository(db, rdb, testCache, logger.NewTestLogger(t)), dbMock, redisMock
}

func expectationsMet(t *testing.T, dbMock sqlmock.Sqlmock, redisMock redismock.ClientMock) {
	t.Helper()
	assert.NoError(t, dbMock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

// ==========================
// Get
// ==========================

func TestRepository_Get_CacheHit(t *testing.T) {
	repo, dbMock, redisMock := newTestRepository(t)
	raw := profilestest.JSON(t, profilestest.LowResourceWriter())
	hits := testutil.ToFloat64(metrics.ProfileCacheRequests.WithLabelValues("hit"))

	redisMock.ExpectGet("profile:user-1").SetVal(string(raw))

	p, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, profilestest.LowResourceWriter(), p)
	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.ProfileCacheRequests.WithLabelValues("hit")))
	expectationsMet(t, dbMock, redisMock)
}

func TestRepository_Get_CacheMissLoadsAndCaches(t *testing.T) {
	repo, dbMock, redisMock := newTestRepository(t)
	raw := profilestest.JSON(t, profilestest.FundedDeveloper())

	redisMock.ExpectGet("profile:user-2").RedisNil()
	dbMock.ExpectQuery(regexp.QuoteMeta(queryProfile)).
		WithArgs("user-2").
		WillReturnRows(sqlmock.NewRows([]string{"profile"}).AddRow(raw))
	redisMock.ExpectSet("profile:user-2", string(raw), testCache.ProfileTTL).SetVal("OK")

	p, err := repo.Get(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, profilestest.FundedDeveloper(), p)
	expectationsMet(t, dbMock, redisMock)
}

func TestRepository_Get_CacheDownFallsBackToPostgres(t *testing.T) {
	repo, dbMock, redisMock := newTestRepository(t)
	raw := profilestest.JSON(t, profilestest.LowResourceWriter())

	redisMock.ExpectGet("profile:user-3").SetErr(errors.New("connection refused"))
	dbMock.ExpectQuery(regexp.QuoteMeta(queryProfile)).
		WithArgs("user-3").
		WillReturnRows(sqlmock.NewRows([]string{"profile"}).AddRow(raw))
	redisMock.ExpectSet("profile:user-3", string(raw), testCache.ProfileTTL).SetErr(errors.New("connection refused"))

	p, err := repo.Get(context.Background(), "user-3")
	require.NoError(t, err)
	assert.Equal(t, 5, p.HoursPerWeek)
	expectationsMet(t, dbMock, redisMock)
}

func TestRepository_Get_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(dbMock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "no stored profile",
			setup: func(dbMock sqlmock.Sqlmock) {
				dbMock.ExpectQuery(regexp.QuoteMeta(queryProfile)).WithArgs("user-x").WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrProfileNotFound,
		},
		{
			name: "database down",
			setup: func(dbMock sqlmock.Sqlmock) {
				dbMock.ExpectQuery(regexp.QuoteMeta(queryProfile)).WithArgs("user-x").WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrProfileLookupFailed,
		},
		{
			name: "stored profile violates schema",
			setup: func(dbMock sqlmock.Sqlmock) {
				dbMock.ExpectQuery(regexp.QuoteMeta(queryProfile)).
					WithArgs("user-x").
					WillReturnRows(sqlmock.NewRows([]string{"profile"}).AddRow([]byte(`{"hoursPerWeek": -1}`)))
			},
			wantErr: ErrProfileCorrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, dbMock, redisMock := newTestRepository(t)
			redisMock.ExpectGet("profile:user-x").RedisNil()
			tt.setup(dbMock)

			_, err := repo.Get(context.Background(), "user-x")
			assert.ErrorIs(t, err, tt.wantErr)
			expectationsMet(t, dbMock, redisMock)
		})
	}
}

// ==========================
// Resolve
// ==========================

func TestRepository_Resolve(t *testing.T) {
	t.Run("inline profile wins over userId", func(t *testing.T) {
		repo, dbMock, redisMock := newTestRepository(t)

		p, err := repo.Resolve(context.Background(), "user-1", profilestest.JSON(t, profilestest.FundedDeveloper()))
		require.NoError(t, err)
		assert.Equal(t, 35, p.HoursPerWeek)
		expectationsMet(t, dbMock, redisMock)
	})

	t.Run("invalid inline profile", func(t *testing.T) {
		repo, _, _ := newTestRepository(t)

		_, err := repo.Resolve(context.Background(), "", []byte(`{"hoursPerWeek": 10, "riskTolerance": 11}`))
		require.ErrorIs(t, err, ErrInputValidation)
		assert.Contains(t, err.Error(), "riskTolerance")
	})

	t.Run("neither userId nor profile", func(t *testing.T) {
		repo, _, _ := newTestRepository(t)

		_, err := repo.Resolve(context.Background(), "", []byte("null"))
		assert.ErrorIs(t, err, ErrInputValidation)
	})
}

// ==========================
// Dismissed ideas
// ==========================

func TestRepository_Dismissed(t *testing.T) {
	t.Run("cached list", func(t *testing.T) {
		repo, dbMock, redisMock := newTestRepository(t)
		redisMock.ExpectGet("dismissed:user-1").SetVal(`["micro-saas"]`)

		ids, err := repo.Dismissed(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"micro-saas"}, ids)
		expectationsMet(t, dbMock, redisMock)
	})

	t.Run("loads from postgres on miss", func(t *testing.T) {
		repo, dbMock, redisMock := newTestRepository(t)
		redisMock.ExpectGet("dismissed:user-1").RedisNil()
		dbMock.ExpectQuery(regexp.QuoteMeta(queryDismissed)).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"idea_id"}).AddRow("micro-saas").AddRow("paid-community"))
		redisMock.ExpectSet("dismissed:user-1", `["micro-saas","paid-community"]`, testCache.DismissedTTL).SetVal("OK")

		ids, err := repo.Dismissed(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"micro-saas", "paid-community"}, ids)
		expectationsMet(t, dbMock, redisMock)
	})

	t.Run("none dismissed", func(t *testing.T) {
		repo, dbMock, redisMock := newTestRepository(t)
		redisMock.ExpectGet("dismissed:user-1").RedisNil()
		dbMock.ExpectQuery(regexp.QuoteMeta(queryDismissed)).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"idea_id"}))
		redisMock.ExpectSet("dismissed:user-1", `[]`, testCache.DismissedTTL).SetVal("OK")

		ids, err := repo.Dismissed(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Empty(t, ids)
		assert.NotNil(t, ids)
	})
}

func TestRepository_Dismiss(t *testing.T) {
	at := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	t.Run("inserts and invalidates", func(t *testing.T) {
		repo, dbMock, redisMock := newTestRepository(t)
		dbMock.ExpectExec(regexp.QuoteMeta(insertDismissed)).
			WithArgs("user-1", "micro-saas", at).
			WillReturnResult(sqlmock.NewResult(0, 1))
		redisMock.ExpectDel("dismissed:user-1").SetVal(1)

		require.NoError(t, repo.Dismiss(context.Background(), "user-1", "micro-saas", at))
		expectationsMet(t, dbMock, redisMock)
	})

	t.Run("write failure", func(t *testing.T) {
		repo, dbMock, _ := newTestRepository(t)
		dbMock.ExpectExec(regexp.QuoteMeta(insertDismissed)).
			WithArgs("user-1", "micro-saas", at).
			WillReturnError(errors.New("disk full"))

		err := repo.Dismiss(context.Background(), "user-1", "micro-saas", at)
		assert.ErrorIs(t, err, ErrDatabaseWrite)
	})
}

func TestRepository_Invalidate(t *testing.T) {
	repo, dbMock, redisMock := newTestRepository(t)
	redisMock.ExpectDel("profile:user-1", "dismissed:user-1").SetVal(2)

	require.NoError(t, repo.Invalidate(context.Background(), "user-1"))
	expectationsMet(t, dbMock, redisMock)
}
