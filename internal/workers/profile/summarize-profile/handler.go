// internal/workers/profile/summarize-profile/handler.go
package summarizeprofile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	apperrors "idea-match-workers/internal/common/errors"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/common/profiles"
	"idea-match-workers/internal/matching"
)

const (
	TaskType = "summarize-profile"
)

var (
	ErrParse         = errors.New("PARSE_ERROR")
	ErrDatabaseWrite = errors.New("DATABASE_WRITE_FAILED")
)

const upsertSummary = `
	INSERT INTO founder_summaries (user_id, summary, generated_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id) DO UPDATE
	SET summary = EXCLUDED.summary, generated_at = EXCLUDED.generated_at`

type Handler struct {
	config       *Config
	db           *sql.DB
	profiles     *profiles.Repository
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
	now          func() time.Time
}

func NewHandler(config *Config, db *sql.DB, repo *profiles.Repository, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		db:           db,
		profiles:     repo,
		errorHandler: apperrors.NewErrorHandler(log),
		logger:       log,
		now:          time.Now,
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
	profile, err := h.profiles.Resolve(ctx, input.UserID, input.Profile)
	if err != nil {
		return nil, err
	}

	summary := matching.Summarize(profile)

	// Summaries are keyed by user, so only stored when we know who asked.
	if input.UserID != "" {
		data, err := json.Marshal(summary)
		if err != nil {
			return nil, fmt.Errorf("marshal summary: %w", err)
		}
		if _, err := h.db.ExecContext(ctx, upsertSummary, input.UserID, data, h.now().UTC()); err != nil {
			return nil, fmt.Errorf("%w: founder summary: %v", ErrDatabaseWrite, err)
		}
	}

	h.logger.Info("profile summarized", map[string]interface{}{
		"userId":        input.UserID,
		"founderType":   summary.FounderType,
		"capacityScore": summary.WeeklyCapacityScore,
	})

	return &Output{Summary: summary}, nil
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
