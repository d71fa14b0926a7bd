// internal/workers/saved/save-idea/handler.go
package saveidea

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"

	"idea-match-workers/internal/common/database"
	apperrors "idea-match-workers/internal/common/errors"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/matching"
	"idea-match-workers/internal/models"
)

const (
	TaskType = "save-idea"

	maxNoteLength = 2000
)

var (
	ErrParse             = errors.New("PARSE_ERROR")
	ErrInputValidation   = errors.New("INPUT_VALIDATION_FAILED")
	ErrIdeaNotFound      = errors.New("IDEA_NOT_FOUND")
	ErrDatabaseWrite     = errors.New("DATABASE_WRITE_FAILED")
	ErrSearchIndexFailed = errors.New("SEARCH_INDEX_FAILED")
)

// Saving the same idea again updates the note and collection in place and
// keeps the original id.
const upsertSavedIdea = `
	INSERT INTO saved_ideas (id, user_id, idea_id, note, collection, saved_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (user_id, idea_id) DO UPDATE
	SET note = EXCLUDED.note, collection = EXCLUDED.collection
	RETURNING id, saved_at`

type Handler struct {
	config       *Config
	db           *sql.DB
	es           *database.ElasticsearchClient
	catalog      *matching.Catalog
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
	now          func() time.Time
	newID        func() string
}

func NewHandler(config *Config, db *sql.DB, es *database.ElasticsearchClient, catalog *matching.Catalog, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		db:           db,
		es:           es,
		catalog:      catalog,
		errorHandler: apperrors.NewErrorHandler(log),
		logger:       log,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":             job.Key,
		"processInstanceKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		err = fmt.Errorf("%w: %v", ErrParse, err)
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return err
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return err
	}

	return h.completeJob(ctx, client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.UserID == "" || input.IdeaID == "" {
		return nil, fmt.Errorf("%w: userId and ideaId are required", ErrInputValidation)
	}
	if len(input.Note) > maxNoteLength {
		return nil, fmt.Errorf("%w: note exceeds %d characters", ErrInputValidation, maxNoteLength)
	}
	idea, ok := h.catalog.Lookup(input.IdeaID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIdeaNotFound, input.IdeaID)
	}

	var (
		id      string
		savedAt time.Time
	)
	err := h.db.QueryRowContext(ctx, upsertSavedIdea,
		h.newID(), input.UserID, idea.ID, input.Note, strings.TrimSpace(input.Collection), h.now().UTC(),
	).Scan(&id, &savedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: saved idea: %v", ErrDatabaseWrite, err)
	}

	doc := models.SavedIdea{
		ID:         id,
		UserID:     input.UserID,
		IdeaID:     idea.ID,
		Title:      idea.Title,
		Tagline:    idea.Tagline,
		Category:   idea.Category,
		Note:       input.Note,
		Collection: strings.TrimSpace(input.Collection),
		SavedAt:    savedAt.UTC().Format(time.RFC3339),
	}
	if err := h.index(ctx, doc); err != nil {
		return nil, err
	}

	h.logger.Info("idea saved", map[string]interface{}{
		"userId":      input.UserID,
		"ideaId":      idea.ID,
		"savedIdeaId": id,
		"collection":  doc.Collection,
	})

	return &Output{SavedIdeaID: id, SavedAt: doc.SavedAt}, nil
}

// index writes doc under its saved-idea id, so re-saving overwrites it.
func (h *Handler) index(ctx context.Context, doc models.SavedIdea) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: marshal document: %v", ErrSearchIndexFailed, err)
	}

	req := esapi.IndexRequest{
		Index:      h.config.Index,
		DocumentID: doc.ID,
		Body:       bytes.NewReader(body),
		Refresh:    h.config.Refresh,
	}
	res, err := req.Do(ctx, h.es.Client)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSearchIndexFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrSearchIndexFailed, res.String())
	}
	return nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
