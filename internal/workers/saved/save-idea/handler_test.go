// internal/workers/saved/save-idea/handler_test.go
package saveidea

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idea-match-workers/internal/common/database/estest"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/matching"
	"idea-match-workers/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

const testID = "0b9f8a1e-5c3d-4e2f-9a7b-1c2d3e4f5a6b"

var fixedNow = time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

func indexed(req estest.Request) (int, string) {
	return http.StatusCreated, `{"_index":"saved_ideas","_id":"` + testID + `","result":"created"}`
}

func setupHandler(t *testing.T, respond estest.Responder) (*Handler, sqlmock.Sqlmock, *estest.Server) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	es, srv := estest.NewClient(t, respond)
	h := NewHandler(LoadConfig(nil), db, es, matching.DefaultCatalog(), logger.NewTestLogger(t))
	h.now = func() time.Time { return fixedNow }
	h.newID = func() string { return testID }
	return h, dbMock, srv
}

func expectUpsert(dbMock sqlmock.Sqlmock, note, collection string, returnedID string, returnedAt time.Time) {
	dbMock.ExpectQuery(regexp.QuoteMeta(upsertSavedIdea)).
		WithArgs(testID, "user-1", "niche-newsletter", note, collection, fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"id", "saved_at"}).AddRow(returnedID, returnedAt))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_IndexesDocument(t *testing.T) {
	h, dbMock, srv := setupHandler(t, indexed)
	expectUpsert(dbMock, "Start with B2B SaaS founders", "shortlist", testID, fixedNow)

	output, err := h.Execute(context.Background(), &Input{
		UserID:     "user-1",
		IdeaID:     "niche-newsletter",
		Note:       "Start with B2B SaaS founders",
		Collection: "  shortlist ",
	})
	require.NoError(t, err)
	assert.Equal(t, testID, output.SavedIdeaID)
	assert.Equal(t, "2026-04-02T09:30:00Z", output.SavedAt)
	assert.NoError(t, dbMock.ExpectationsWereMet())

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, "/saved_ideas/_doc/"+testID, reqs[0].Path)

	newsletter, _ := matching.DefaultCatalog().Lookup("niche-newsletter")
	var doc models.SavedIdea
	require.NoError(t, json.Unmarshal([]byte(reqs[0].Body), &doc))
	assert.Equal(t, models.SavedIdea{
		ID:         testID,
		UserID:     "user-1",
		IdeaID:     "niche-newsletter",
		Title:      "Niche Newsletter Business",
		Tagline:    newsletter.Tagline,
		Category:   models.CategoryContent,
		Note:       "Start with B2B SaaS founders",
		Collection: "shortlist",
		SavedAt:    "2026-04-02T09:30:00Z",
	}, doc)
}

func TestHandler_Execute_ResaveKeepsOriginalID(t *testing.T) {
	const originalID = "11111111-2222-4333-8444-555555555555"
	firstSaved := fixedNow.Add(-48 * time.Hour)

	h, dbMock, srv := setupHandler(t, indexed)
	expectUpsert(dbMock, "", "", originalID, firstSaved)

	output, err := h.Execute(context.Background(), &Input{UserID: "user-1", IdeaID: "niche-newsletter"})
	require.NoError(t, err)
	assert.Equal(t, originalID, output.SavedIdeaID)
	assert.Equal(t, "2026-03-31T09:30:00Z", output.SavedAt)
	assert.True(t, strings.HasSuffix(srv.Requests()[0].Path, originalID))
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_Errors(t *testing.T) {
	t.Run("missing idea", func(t *testing.T) {
		h, _, srv := setupHandler(t, indexed)
		_, err := h.Execute(context.Background(), &Input{UserID: "user-1"})
		assert.ErrorIs(t, err, ErrInputValidation)
		assert.Empty(t, srv.Requests())
	})

	t.Run("note too long", func(t *testing.T) {
		h, _, _ := setupHandler(t, indexed)
		_, err := h.Execute(context.Background(), &Input{
			UserID: "user-1",
			IdeaID: "niche-newsletter",
			Note:   strings.Repeat("x", maxNoteLength+1),
		})
		assert.ErrorIs(t, err, ErrInputValidation)
	})

	t.Run("unknown idea", func(t *testing.T) {
		h, _, _ := setupHandler(t, indexed)
		_, err := h.Execute(context.Background(), &Input{UserID: "user-1", IdeaID: "vending-machines"})
		assert.ErrorIs(t, err, ErrIdeaNotFound)
	})

	t.Run("database write fails", func(t *testing.T) {
		h, dbMock, srv := setupHandler(t, indexed)
		dbMock.ExpectQuery(regexp.QuoteMeta(upsertSavedIdea)).WillReturnError(errors.New("connection refused"))

		_, err := h.Execute(context.Background(), &Input{UserID: "user-1", IdeaID: "niche-newsletter"})
		assert.ErrorIs(t, err, ErrDatabaseWrite)
		assert.Empty(t, srv.Requests(), "nothing is indexed when the row was not written")
	})

	t.Run("index rejects document", func(t *testing.T) {
		h, dbMock, _ := setupHandler(t, func(estest.Request) (int, string) {
			return http.StatusServiceUnavailable, `{"error":{"type":"unavailable_shards_exception"}}`
		})
		expectUpsert(dbMock, "", "", testID, fixedNow)

		_, err := h.Execute(context.Background(), &Input{UserID: "user-1", IdeaID: "niche-newsletter"})
		assert.ErrorIs(t, err, ErrSearchIndexFailed)
	})
}
