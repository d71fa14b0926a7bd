// internal/workers/ideas/explain-match/handler_test.go
package explainmatch

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idea-match-workers/internal/common/config"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/common/profiles"
	"idea-match-workers/internal/common/profiles/profilestest"
	"idea-match-workers/internal/matching"
	"idea-match-workers/internal/models"
)

func setupHandler(t *testing.T) (*Handler, redismock.ClientMock) {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	log := logger.NewTestLogger(t)
	repo := profiles.NewRepository(db, rdb, config.CacheConfig{ProfileTTL: time.Minute}, log)
	return NewHandler(LoadConfig(nil), repo, matching.DefaultCatalog(), log), redisMock
}

func factorIDs(factors []models.MatchFactor) []string {
	ids := make([]string, len(factors))
	for i, f := range factors {
		ids[i] = f.ID
	}
	return ids
}

func TestHandler_Execute(t *testing.T) {
	h, _ := setupHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		Profile: profilestest.JSON(t, profilestest.LowResourceWriter()),
		IdeaID:  "niche-newsletter",
	})
	require.NoError(t, err)

	want := []string{
		"time-fit-simple",
		"capital-bootstrap",
		"risk-safe",
		"skills-no-code-needed",
		"skills-writing",
		"preferences-solo",
		"skills-marketing-low",
	}
	if diff := cmp.Diff(want, factorIDs(output.Factors)); diff != "" {
		t.Errorf("factor order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Niche Newsletter Business", output.Title)
	assert.Equal(t, 100, output.TotalScore)
	assert.Equal(t, 130, output.RawScore)
}

func TestHandler_Execute_StoredProfile(t *testing.T) {
	h, redisMock := setupHandler(t)
	redisMock.ExpectGet("profile:user-7").SetVal(string(profilestest.JSON(t, profilestest.LowResourceWriter())))

	output, err := h.Execute(context.Background(), &Input{UserID: "user-7", IdeaID: "micro-saas"})
	require.NoError(t, err)
	assert.Equal(t, "micro-saas", output.IdeaID)
	assert.Equal(t, matching.Breakdown(profilestest.LowResourceWriter(), mustIdea(t, "micro-saas")).Factors, output.Factors)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "missing idea id",
			input:   Input{UserID: "user-1"},
			wantErr: ErrInputValidation,
		},
		{
			name:    "unknown idea",
			input:   Input{UserID: "user-1", IdeaID: "crypto-exchange"},
			wantErr: ErrIdeaNotFound,
		},
		{
			name:    "no profile source",
			input:   Input{IdeaID: "micro-saas"},
			wantErr: profiles.ErrInputValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, redisMock := setupHandler(t)

			_, err := h.Execute(context.Background(), &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, redisMock.ExpectationsWereMet(), "idea is checked before the profile is loaded")
		})
	}
}

func mustIdea(t *testing.T, id string) models.IdeaTemplate {
	t.Helper()
	idea, ok := matching.DefaultCatalog().Lookup(id)
	require.True(t, ok, id)
	return idea
}
