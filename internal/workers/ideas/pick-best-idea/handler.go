// internal/workers/ideas/pick-best-idea/handler.go
package pickbestidea

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

	apperrors "idea-match-workers/internal/common/errors"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/common/metrics"
	"idea-match-workers/internal/common/profiles"
	"idea-match-workers/internal/matching"
)

const (
	TaskType = "pick-best-idea"
)

var (
	ErrParse         = errors.New("PARSE_ERROR")
	ErrDatabaseWrite = errors.New("DATABASE_WRITE_FAILED")
)

const insertGeneratedIdea = `
	INSERT INTO generated_ideas (id, user_id, idea_id, match_score, why_you, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

type Handler struct {
	config       *Config
	db           *sql.DB
	profiles     *profiles.Repository
	matcher      *matching.Matcher
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
	now          func() time.Time
	newID        func() string
}

func NewHandler(config *Config, db *sql.DB, repo *profiles.Repository, matcher *matching.Matcher, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		db:           db,
		profiles:     repo,
		matcher:      matcher,
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
	profile, err := h.profiles.Resolve(ctx, input.UserID, input.Profile)
	if err != nil {
		return nil, err
	}

	var dismissed []string
	if input.UserID != "" {
		if dismissed, err = h.profiles.Dismissed(ctx, input.UserID); err != nil {
			return nil, err
		}
	}
	excluded := matching.ExcludeSet(input.ExcludedIDs, dismissed)

	summary := matching.Summarize(profile)
	if input.Summary != nil {
		summary = *input.Summary
	}

	idea, ok := h.matcher.PickBestIdea(profile, summary, excluded)
	if !ok {
		metrics.IdeaCatalogExhausted.Inc()
		h.logger.Info("every idea excluded", map[string]interface{}{
			"userId":   input.UserID,
			"excluded": len(excluded),
		})
		return &Output{Exhausted: true}, nil
	}
	metrics.IdeaMatchScore.WithLabelValues(idea.ID).Observe(float64(idea.MatchScore))

	output := &Output{
		Idea:      &idea,
		Remaining: h.matcher.Catalog().Remaining(excluded) - 1,
	}

	if input.UserID != "" {
		output.GeneratedIdeaID = h.newID()
		if _, err := h.db.ExecContext(ctx, insertGeneratedIdea,
			output.GeneratedIdeaID, input.UserID, idea.ID, idea.MatchScore, idea.WhyYou, h.now().UTC(),
		); err != nil {
			return nil, fmt.Errorf("%w: generated idea: %v", ErrDatabaseWrite, err)
		}
	}

	h.logger.Info("idea picked", map[string]interface{}{
		"userId":     input.UserID,
		"ideaId":     idea.ID,
		"matchScore": idea.MatchScore,
		"remaining":  output.Remaining,
	})

	return output, nil
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
