// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"idea-match-workers/internal/common/config"
	apperrors "idea-match-workers/internal/common/errors"
	"idea-match-workers/internal/common/metrics"
)

// JobHandler is implemented by every worker. Handlers report the job outcome
// to the engine themselves; the returned error is only for instrumentation.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job) error
}

// JobRecorder receives one span and one observation per handled job.
type JobRecorder interface {
	StartJobSpan(ctx context.Context, taskType string, jobKey int64) (context.Context, trace.Span)
	RecordJobProcessed(ctx context.Context, taskType, status string)
	RecordJobDuration(ctx context.Context, taskType string, d time.Duration, status string)
}

type CamundaWorker struct {
	worker   worker.JobWorker
	logger   *zap.Logger
	taskType string
}

// NewWorker opens a job worker for taskType using the per-task settings.
func NewWorker(
	client zbc.Client,
	taskType string,
	wcfg config.WorkerConfig,
	handler JobHandler,
	recorder JobRecorder,
	logger *zap.Logger,
) *CamundaWorker {
	jobWorker := client.NewJobWorker().
		JobType(taskType).
		Handler(Instrument(taskType, handler, recorder, logger)).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(config.GetDuration(wcfg.Timeout)).
		Name(taskType).
		Open()

	logger.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", wcfg.MaxJobsActive),
	)

	return &CamundaWorker{
		worker:   jobWorker,
		logger:   logger,
		taskType: taskType,
	}
}

// Instrument adapts a JobHandler to the zeebe handler signature and records
// job metrics around it.
func Instrument(taskType string, handler JobHandler, recorder JobRecorder, logger *zap.Logger) worker.JobHandler {
	return func(client worker.JobClient, job entities.Job) {
		start := time.Now()
		defer metrics.TrackJob(taskType)()

		ctx := context.Background()
		span := trace.SpanFromContext(ctx)
		if recorder != nil {
			ctx, span = recorder.StartJobSpan(ctx, taskType, job.Key)
		}
		defer span.End()

		status, errorCode := "completed", ""
		if err := handler.Handle(client, job); err != nil {
			code := apperrors.FromError(err).Code
			status, errorCode = "failed", string(code)
			span.RecordError(err)
			span.SetStatus(codes.Error, string(code))
			logger.Warn("handler returned error",
				zap.String("taskType", taskType),
				zap.Int64("jobKey", job.Key),
				zap.String("errorCode", string(code)),
				zap.String("traceId", span.SpanContext().TraceID().String()),
				zap.Error(err),
			)
		}

		elapsed := time.Since(start)
		metrics.ObserveJob(taskType, errorCode, elapsed)
		if recorder != nil {
			recorder.RecordJobProcessed(ctx, taskType, status)
			recorder.RecordJobDuration(ctx, taskType, elapsed, status)
		}
	}
}

func (w *CamundaWorker) TaskType() string {
	return w.taskType
}

// Stop closes the job worker and waits for in-flight jobs.
func (w *CamundaWorker) Stop() {
	w.logger.Info("stopping worker", zap.String("taskType", w.taskType))
	w.worker.Close()
	w.worker.AwaitClose()
}
