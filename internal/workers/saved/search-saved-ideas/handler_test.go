// internal/workers/saved/search-saved-ideas/handler_test.go
package searchsavedideas

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idea-match-workers/internal/common/database/estest"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

const twoHits = `{
  "took": 3,
  "hits": {
    "total": {"value": 2, "relation": "eq"},
    "hits": [
      {"_id": "s-1", "_source": {"savedIdeaId": "s-1", "userId": "user-1", "ideaId": "niche-newsletter", "title": "Niche Newsletter Business", "category": "Content", "collection": "shortlist", "savedAt": "2026-04-02T09:30:00Z"}},
      {"_id": "s-2", "_source": {"savedIdeaId": "s-2", "userId": "user-1", "ideaId": "template-shop", "title": "Template Shop", "category": "Digital Product", "note": "Notion first", "savedAt": "2026-04-01T08:00:00Z"}}
    ]
  }
}`

func setupHandler(t *testing.T, respond estest.Responder) (*Handler, *estest.Server) {
	t.Helper()
	es, srv := estest.NewClient(t, respond)
	return NewHandler(LoadConfig(nil), es, logger.NewTestLogger(t)), srv
}

func decodeBody(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	return m
}

// ==========================
// Query Builder Tests
// ==========================

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name        string
		input       Input
		wantFilters int
		wantMust    bool
		wantSort    bool
	}{
		{name: "user only", input: Input{UserID: "user-1"}, wantFilters: 1, wantSort: true},
		{name: "collection filter", input: Input{UserID: "user-1", Collection: "shortlist"}, wantFilters: 2, wantSort: true},
		{name: "free text", input: Input{UserID: "user-1", Query: "newsletter"}, wantFilters: 1, wantMust: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := buildQuery(&tt.input)
			boolQuery := q["query"].(map[string]interface{})["bool"].(map[string]interface{})

			assert.Len(t, boolQuery["filter"], tt.wantFilters)
			_, hasMust := boolQuery["must"]
			assert.Equal(t, tt.wantMust, hasMust)
			_, hasSort := q["sort"]
			assert.Equal(t, tt.wantSort, hasSort)
		})
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	h, srv := setupHandler(t, func(estest.Request) (int, string) {
		return http.StatusOK, twoHits
	})

	output, err := h.Execute(context.Background(), &Input{UserID: "user-1", Query: "newsletter"})
	require.NoError(t, err)
	assert.Equal(t, 2, output.Total)
	require.Len(t, output.Results, 2)
	assert.Equal(t, models.SavedIdea{
		ID:         "s-1",
		UserID:     "user-1",
		IdeaID:     "niche-newsletter",
		Title:      "Niche Newsletter Business",
		Category:   "Content",
		Collection: "shortlist",
		SavedAt:    "2026-04-02T09:30:00Z",
	}, output.Results[0])
	assert.Equal(t, "Notion first", output.Results[1].Note)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/saved_ideas/_search", reqs[0].Path)
	assert.Equal(t, "10", reqs[0].Query.Get("size"))

	body := decodeBody(t, reqs[0].Body)
	filters := body["query"].(map[string]interface{})["bool"].(map[string]interface{})["filter"].([]interface{})
	assert.Equal(t, map[string]interface{}{"term": map[string]interface{}{"userId": "user-1"}}, filters[0])
}

func TestHandler_Execute_NoHits(t *testing.T) {
	h, _ := setupHandler(t, func(estest.Request) (int, string) {
		return http.StatusOK, `{"hits":{"total":{"value":0},"hits":[]}}`
	})

	output, err := h.Execute(context.Background(), &Input{UserID: "user-1"})
	require.NoError(t, err)
	assert.Zero(t, output.Total)
	assert.NotNil(t, output.Results)
	assert.Empty(t, output.Results)
}

func TestHandler_Execute_SizeIsCapped(t *testing.T) {
	h, srv := setupHandler(t, func(estest.Request) (int, string) {
		return http.StatusOK, `{"hits":{"total":{"value":0},"hits":[]}}`
	})

	_, err := h.Execute(context.Background(), &Input{UserID: "user-1", Size: 500, From: 20})
	require.NoError(t, err)
	assert.Equal(t, "50", srv.Requests()[0].Query.Get("size"))
	assert.Equal(t, "20", srv.Requests()[0].Query.Get("from"))
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_Errors(t *testing.T) {
	ok := func(estest.Request) (int, string) { return http.StatusOK, `{"hits":{"total":{"value":0},"hits":[]}}` }

	tests := []struct {
		name    string
		input   Input
		respond estest.Responder
		wantErr error
	}{
		{name: "missing user", input: Input{Query: "saas"}, respond: ok, wantErr: ErrInputValidation},
		{name: "negative size", input: Input{UserID: "user-1", Size: -1}, respond: ok, wantErr: ErrInputValidation},
		{
			name:  "index missing",
			input: Input{UserID: "user-1"},
			respond: func(estest.Request) (int, string) {
				return http.StatusNotFound, `{"error":{"type":"index_not_found_exception"},"status":404}`
			},
			wantErr: ErrSearchQueryFailed,
		},
		{
			name:  "malformed response",
			input: Input{UserID: "user-1"},
			respond: func(estest.Request) (int, string) {
				return http.StatusOK, `{"hits": [`
			},
			wantErr: ErrSearchQueryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupHandler(t, tt.respond)
			_, err := h.Execute(context.Background(), &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
