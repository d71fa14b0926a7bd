// internal/workers/decision/set-decision-mode/handler.go
package setdecisionmode

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"idea-match-workers/internal/common/aws"
	apperrors "idea-match-workers/internal/common/errors"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/matching"
	"idea-match-workers/internal/models"
)

const (
	TaskType = "set-decision-mode"
)

var (
	ErrParse              = errors.New("PARSE_ERROR")
	ErrInputValidation    = errors.New("INPUT_VALIDATION_FAILED")
	ErrIdeaNotFound       = errors.New("IDEA_NOT_FOUND")
	ErrDatabaseWrite      = errors.New("DATABASE_WRITE_FAILED")
	ErrEventPublishFailed = errors.New("EVENT_PUBLISH_FAILED")
)

// One decision row per user; switching modes overwrites it.
const upsertDecision = `
	INSERT INTO founder_decisions (id, user_id, idea_id, mode, committed_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (user_id) DO UPDATE
	SET idea_id = EXCLUDED.idea_id,
	    mode = EXCLUDED.mode,
	    committed_at = EXCLUDED.committed_at,
	    updated_at = EXCLUDED.updated_at
	RETURNING id`

// DecisionPublisher announces commitments. A nil publisher disables events.
type DecisionPublisher interface {
	PublishDecision(ctx context.Context, evt aws.DecisionEvent) (string, error)
}

type Handler struct {
	config       *Config
	db           *sql.DB
	publisher    DecisionPublisher
	catalog      *matching.Catalog
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
	now          func() time.Time
	newID        func() string
}

func NewHandler(config *Config, db *sql.DB, publisher DecisionPublisher, catalog *matching.Catalog, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		db:           db,
		publisher:    publisher,
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
	decision, idea, err := h.decide(input)
	if err != nil {
		return nil, err
	}

	var (
		ideaID      sql.NullString
		committedAt sql.NullTime
	)
	if decision.IdeaID != "" {
		ideaID = sql.NullString{String: decision.IdeaID, Valid: true}
	}
	now := h.now().UTC()
	if decision.Mode == models.DecisionCommitted {
		committedAt = sql.NullTime{Time: now, Valid: true}
		decision.CommittedAt = now.Format(time.RFC3339)
	}
	decision.UpdatedAt = now.Format(time.RFC3339)

	if err := h.db.QueryRowContext(ctx, upsertDecision,
		h.newID(), decision.UserID, ideaID, string(decision.Mode), committedAt, now,
	).Scan(&decision.ID); err != nil {
		return nil, fmt.Errorf("%w: decision: %v", ErrDatabaseWrite, err)
	}

	output := &Output{
		DecisionID:  decision.ID,
		Mode:        decision.Mode,
		IdeaID:      decision.IdeaID,
		CommittedAt: decision.CommittedAt,
	}

	if decision.Mode == models.DecisionCommitted && h.publisher != nil {
		eventID, err := h.publisher.PublishDecision(ctx, aws.DecisionEvent{
			DecisionID:  decision.ID,
			UserID:      decision.UserID,
			IdeaID:      idea.ID,
			IdeaTitle:   idea.Title,
			CommittedAt: now,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEventPublishFailed, err)
		}
		output.EventID = eventID
	}

	h.logger.Info("decision mode set", map[string]interface{}{
		"userId":     decision.UserID,
		"mode":       decision.Mode,
		"ideaId":     decision.IdeaID,
		"decisionId": decision.ID,
	})

	return output, nil
}

// decide validates input. Committing needs a catalog idea; exploring may name
// the idea the founder is leaning towards.
func (h *Handler) decide(input *Input) (models.Decision, models.IdeaTemplate, error) {
	var idea models.IdeaTemplate
	if input.UserID == "" {
		return models.Decision{}, idea, fmt.Errorf("%w: userId is required", ErrInputValidation)
	}

	switch input.Mode {
	case models.DecisionExploring:
	case models.DecisionCommitted:
		if input.IdeaID == "" {
			return models.Decision{}, idea, fmt.Errorf("%w: committing requires an ideaId", ErrInputValidation)
		}
	default:
		return models.Decision{}, idea, fmt.Errorf("%w: unknown mode %q", ErrInputValidation, input.Mode)
	}

	if input.IdeaID != "" {
		var ok bool
		if idea, ok = h.catalog.Lookup(input.IdeaID); !ok {
			return models.Decision{}, idea, fmt.Errorf("%w: %s", ErrIdeaNotFound, input.IdeaID)
		}
	}

	return models.Decision{UserID: input.UserID, IdeaID: input.IdeaID, Mode: input.Mode}, idea, nil
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
