package camunda

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"idea-match-workers/internal/common/config"
	"idea-match-workers/internal/common/metrics"
)

type stubHandler struct {
	err error
}

func (s stubHandler) Handle(worker.JobClient, entities.Job) error {
	return s.err
}

type recordedJob struct {
	taskType string
	status   string
}

type fakeRecorder struct {
	mu        sync.Mutex
	spans     []int64
	processed []recordedJob
	durations int
}

func (f *fakeRecorder) StartJobSpan(ctx context.Context, _ string, jobKey int64) (context.Context, trace.Span) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spans = append(f.spans, jobKey)
	return ctx, trace.SpanFromContext(ctx)
}

func (f *fakeRecorder) RecordJobProcessed(_ context.Context, taskType, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.processed = append(f.processed, recordedJob{taskType, status})
}

func (f *fakeRecorder) RecordJobDuration(context.Context, string, time.Duration, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.durations++
}

func testJob() entities.Job {
	return entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 42, Type: "instrument-test", Retries: 3}}
}

func TestInstrument_Completed(t *testing.T) {
	const taskType = "instrument-completed"
	rec := &fakeRecorder{}
	before := testutil.ToFloat64(metrics.WorkerJobsCompleted.WithLabelValues(taskType))

	Instrument(taskType, stubHandler{}, rec, zaptest.NewLogger(t))(nil, testJob())

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.WorkerJobsCompleted.WithLabelValues(taskType)))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.WorkerJobsActive.WithLabelValues(taskType)))
	assert.Equal(t, []recordedJob{{taskType, "completed"}}, rec.processed)
	assert.Equal(t, []int64{42}, rec.spans)
	assert.Equal(t, 1, rec.durations)
}

func TestInstrument_FailedUsesErrorCode(t *testing.T) {
	const taskType = "instrument-failed"
	errIdeaNotFound := errors.New("IDEA_NOT_FOUND")
	rec := &fakeRecorder{}

	handler := stubHandler{err: fmt.Errorf("%w: ghost", errIdeaNotFound)}
	Instrument(taskType, handler, rec, zaptest.NewLogger(t))(nil, testJob())

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.WorkerJobsFailed.WithLabelValues(taskType, "IDEA_NOT_FOUND")))
	assert.Equal(t, []recordedJob{{taskType, "failed"}}, rec.processed)
}

func TestInstrument_NilRecorder(t *testing.T) {
	assert.NotPanics(t, func() {
		Instrument("instrument-nil", stubHandler{}, nil, zaptest.NewLogger(t))(nil, testJob())
	})
}

func TestRetry(t *testing.T) {
	rc := &RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

	tests := []struct {
		name      string
		failures  []error
		wantCalls int
		wantErr   bool
	}{
		{name: "first try", wantCalls: 1},
		{name: "transient then success", failures: []error{errors.New("rpc error: Unavailable")}, wantCalls: 2},
		{
			name:      "gives up after max retries",
			failures:  []error{errors.New("deadline exceeded"), errors.New("deadline exceeded"), errors.New("deadline exceeded")},
			wantCalls: 3,
			wantErr:   true,
		},
		{name: "permanent error", failures: []error{errors.New("NOT_FOUND: process")}, wantCalls: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			result, err := Retry(context.Background(), rc, "publish", func(context.Context) (string, error) {
				calls++
				if calls <= len(tt.failures) {
					return "", tt.failures[calls-1]
				}
				return "ok", nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "ok", result)
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rc := &RetryConfig{MaxRetries: 5, BaseDelay: time.Second, MaxDelay: time.Second}

	_, err := Retry(ctx, rc, "topology", func(context.Context) (int, error) {
		return 0, errors.New("connection refused")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "grpc unavailable", err: status.Error(codes.Unavailable, "gateway restarting"), want: true},
		{name: "grpc resource exhausted", err: status.Error(codes.ResourceExhausted, "backpressure"), want: true},
		{name: "grpc not found", err: status.Error(codes.NotFound, "no such job"), want: false},
		{name: "context deadline", err: fmt.Errorf("send: %w", context.DeadlineExceeded), want: true},
		{name: "plain reset", err: errors.New("read: connection reset by peer"), want: true},
		{name: "plain validation", err: errors.New("INVALID_INPUT"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransient(tt.err))
		})
	}
}

func TestConfigFrom(t *testing.T) {
	cc := ConfigFrom(config.CamundaConfig{BrokerAddress: "zeebe:26500", Timeout: 2000, RequestTimeout: 500})
	assert.Equal(t, "zeebe:26500", cc.GatewayAddress)
	assert.Equal(t, 2*time.Second, cc.ConnectionTimeout)
	assert.Equal(t, 500*time.Millisecond, cc.RequestTimeout)

	cc = ConfigFrom(config.CamundaConfig{BrokerAddress: "zeebe:26500"})
	assert.Equal(t, defaultConnectTimeout, cc.ConnectionTimeout)
}

func TestNewClientWithConfig_RequiresAddress(t *testing.T) {
	_, err := NewClientWithConfig(&ClientConfig{})
	assert.Error(t, err)
}
