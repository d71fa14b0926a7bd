// internal/workers/saved/search-saved-ideas/handler.go
package searchsavedideas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"idea-match-workers/internal/common/database"
	apperrors "idea-match-workers/internal/common/errors"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/models"
)

const (
	TaskType = "search-saved-ideas"
)

var (
	ErrParse             = errors.New("PARSE_ERROR")
	ErrInputValidation   = errors.New("INPUT_VALIDATION_FAILED")
	ErrSearchQueryFailed = errors.New("SEARCH_QUERY_FAILED")
)

type Handler struct {
	config       *Config
	es           *database.ElasticsearchClient
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, es *database.ElasticsearchClient, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		es:           es,
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
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInputValidation)
	}
	if input.Size < 0 || input.From < 0 {
		return nil, fmt.Errorf("%w: size and from must not be negative", ErrInputValidation)
	}
	size := input.Size
	if size == 0 {
		size = h.config.DefaultSize
	}
	size = min(size, h.config.MaxSize)
	from := input.From

	body, err := json.Marshal(buildQuery(input))
	if err != nil {
		return nil, fmt.Errorf("%w: build query: %v", ErrSearchQueryFailed, err)
	}

	req := esapi.SearchRequest{
		Index: []string{h.config.Index},
		Body:  bytes.NewReader(body),
		Size:  &size,
		From:  &from,
	}
	res, err := req.Do(ctx, h.es.Client)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchQueryFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrSearchQueryFailed, res.String())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrSearchQueryFailed, err)
	}

	results := make([]models.SavedIdea, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		results = append(results, hit.Source)
	}

	h.logger.Debug("saved ideas searched", map[string]interface{}{
		"userId":  input.UserID,
		"query":   input.Query,
		"results": len(results),
		"total":   parsed.Hits.Total.Value,
	})

	return &Output{Results: results, Total: parsed.Hits.Total.Value}, nil
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
