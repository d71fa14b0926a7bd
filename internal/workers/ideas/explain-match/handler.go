// internal/workers/ideas/explain-match/handler.go
package explainmatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	apperrors "idea-match-workers/internal/common/errors"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/common/profiles"
	"idea-match-workers/internal/matching"
)

const (
	TaskType = "explain-match"
)

var (
	ErrParse           = errors.New("PARSE_ERROR")
	ErrInputValidation = errors.New("INPUT_VALIDATION_FAILED")
	ErrIdeaNotFound    = errors.New("IDEA_NOT_FOUND")
)

type Handler struct {
	config       *Config
	profiles     *profiles.Repository
	catalog      *matching.Catalog
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, repo *profiles.Repository, catalog *matching.Catalog, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		profiles:     repo,
		catalog:      catalog,
		errorHandler: apperrors.NewErrorHandler(log),
		logger:       log,
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
	if input.IdeaID == "" {
		return nil, fmt.Errorf("%w: ideaId is required", ErrInputValidation)
	}
	idea, ok := h.catalog.Lookup(input.IdeaID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIdeaNotFound, input.IdeaID)
	}

	profile, err := h.profiles.Resolve(ctx, input.UserID, input.Profile)
	if err != nil {
		return nil, err
	}

	b := matching.Breakdown(profile, idea)

	h.logger.Debug("match explained", map[string]interface{}{
		"userId":     input.UserID,
		"ideaId":     idea.ID,
		"factors":    len(b.Factors),
		"totalScore": b.TotalScore,
	})

	return &Output{
		IdeaID:     idea.ID,
		Title:      idea.Title,
		Factors:    b.Factors,
		TotalScore: b.TotalScore,
		RawScore:   b.RawScore,
	}, nil
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
