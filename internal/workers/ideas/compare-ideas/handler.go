// internal/workers/ideas/compare-ideas/handler.go
package compareideas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"golang.org/x/sync/errgroup"

	apperrors "idea-match-workers/internal/common/errors"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/common/profiles"
	"idea-match-workers/internal/matching"
	"idea-match-workers/internal/models"
)

const (
	TaskType = "compare-ideas"
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
	ideas, err := h.lookupIdeas(input.IdeaIDs)
	if err != nil {
		return nil, err
	}

	profile, err := h.profiles.Resolve(ctx, input.UserID, input.Profile)
	if err != nil {
		return nil, err
	}

	comparisons := make([]Comparison, len(ideas))
	g, gctx := errgroup.WithContext(ctx)
	for i, idea := range ideas {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b := matching.Breakdown(profile, idea)
			comparisons[i] = Comparison{
				IdeaID:     idea.ID,
				Title:      idea.Title,
				TotalScore: b.TotalScore,
				RawScore:   b.RawScore,
				Factors:    b.Factors,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compare ideas: %w", err)
	}

	output := &Output{Comparisons: comparisons, BestIdeaID: best(comparisons)}

	h.logger.Info("ideas compared", map[string]interface{}{
		"userId":     input.UserID,
		"ideas":      len(comparisons),
		"bestIdeaId": output.BestIdeaID,
	})

	return output, nil
}

func (h *Handler) lookupIdeas(ids []string) ([]models.IdeaTemplate, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: ideaIds is required", ErrInputValidation)
	}
	if len(ids) > h.config.MaxIdeas {
		return nil, fmt.Errorf("%w: at most %d ideas can be compared, got %d", ErrInputValidation, h.config.MaxIdeas, len(ids))
	}

	seen := make(map[string]bool, len(ids))
	ideas := make([]models.IdeaTemplate, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, fmt.Errorf("%w: idea %s listed twice", ErrInputValidation, id)
		}
		seen[id] = true

		idea, ok := h.catalog.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrIdeaNotFound, id)
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}

// best picks the highest raw score; the earliest requested idea wins ties.
func best(comparisons []Comparison) string {
	var top *Comparison
	for i := range comparisons {
		if top == nil || comparisons[i].RawScore > top.RawScore {
			top = &comparisons[i]
		}
	}
	if top == nil {
		return ""
	}
	return top.IdeaID
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
