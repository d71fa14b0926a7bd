// internal/workers/ideas/compare-ideas/handler_test.go
package compareideas

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idea-match-workers/internal/common/config"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/common/profiles"
	"idea-match-workers/internal/common/profiles/profilestest"
	"idea-match-workers/internal/matching"
)

// ==========================
// Test Helper Functions
// ==========================

func setupHandler(t *testing.T, cfg *Config) *Handler {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, _ := redismock.NewClientMock()
	log := logger.NewTestLogger(t)
	repo := profiles.NewRepository(db, rdb, config.CacheConfig{ProfileTTL: time.Minute}, log)
	return NewHandler(cfg, repo, matching.DefaultCatalog(), log)
}

func ideaIDs(comparisons []Comparison) []string {
	ids := make([]string, len(comparisons))
	for i, c := range comparisons {
		ids[i] = c.IdeaID
	}
	return ids
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name       string
		ideaIDs    []string
		wantScores []int
		wantBest   string
	}{
		{
			name:       "keeps request order",
			ideaIDs:    []string{"micro-saas", "paid-community", "niche-newsletter"},
			wantScores: []int{55, 70, 100},
			wantBest:   "niche-newsletter",
		},
		{
			name:       "single idea",
			ideaIDs:    []string{"productized-service"},
			wantScores: []int{85},
			wantBest:   "productized-service",
		},
		{
			name:       "raw score breaks clamped ties",
			ideaIDs:    []string{"template-shop", "niche-newsletter"},
			wantScores: []int{100, 100},
			wantBest:   "niche-newsletter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupHandler(t, LoadConfig(nil))

			output, err := h.Execute(context.Background(), &Input{
				Profile: profilestest.JSON(t, profilestest.LowResourceWriter()),
				IdeaIDs: tt.ideaIDs,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.ideaIDs, ideaIDs(output.Comparisons))

			scores := make([]int, len(output.Comparisons))
			for i, c := range output.Comparisons {
				scores[i] = c.TotalScore
				assert.NotEmpty(t, c.Factors)
				assert.NotEmpty(t, c.Title)
			}
			assert.Equal(t, tt.wantScores, scores)
			assert.Equal(t, tt.wantBest, output.BestIdeaID)
		})
	}
}

func TestBest_TiesGoToFirstRequested(t *testing.T) {
	comparisons := []Comparison{
		{IdeaID: "a", RawScore: 70},
		{IdeaID: "b", RawScore: 90},
		{IdeaID: "c", RawScore: 90},
	}
	assert.Equal(t, "b", best(comparisons))
	assert.Empty(t, best(nil))
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		ideaIDs []string
		wantErr error
	}{
		{name: "no ideas", ideaIDs: nil, wantErr: ErrInputValidation},
		{name: "too many ideas", ideaIDs: []string{"micro-saas", "paid-community", "template-shop"}, wantErr: ErrInputValidation},
		{name: "duplicate idea", ideaIDs: []string{"micro-saas", "micro-saas"}, wantErr: ErrInputValidation},
		{name: "unknown idea", ideaIDs: []string{"micro-saas", "food-truck"}, wantErr: ErrIdeaNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setupHandler(t, &Config{Timeout: time.Second, MaxIdeas: 2})

			_, err := h.Execute(context.Background(), &Input{
				Profile: profilestest.JSON(t, profilestest.LowResourceWriter()),
				IdeaIDs: tt.ideaIDs,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	assert.Equal(t, 5, LoadConfig(nil).MaxIdeas)
	assert.Equal(t, 3, LoadConfig(&config.Config{Matching: config.MatchingConfig{CompareMaxIdeas: 3}}).MaxIdeas)
}
