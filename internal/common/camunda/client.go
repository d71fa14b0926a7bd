// internal/common/camunda/client.go
package camunda

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"idea-match-workers/internal/common/config"
)

const defaultConnectTimeout = 10 * time.Second

// Client owns the gateway connection shared by all idea-match job workers.
type Client struct {
	zb     zbc.Client
	config *ClientConfig
}

type ClientConfig struct {
	GatewayAddress         string
	UsePlaintextConnection bool
	ConnectionTimeout      time.Duration
	RequestTimeout         time.Duration
	RetryConfig            *RetryConfig
}

// RetryConfig bounds exponential backoff for gateway commands.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

func (rc *RetryConfig) delay(attempt int) time.Duration {
	return min(rc.BaseDelay*time.Duration(1<<attempt), rc.MaxDelay)
}

var DefaultRetryConfig = &RetryConfig{
	MaxRetries: 3,
	BaseDelay:  500 * time.Millisecond,
	MaxDelay:   5 * time.Second,
}

// Topology is the subset of the gateway topology the manager logs.
type Topology struct {
	GatewayVersion string
	Brokers        int
	Partitions     int
}

// ConfigFrom maps the camunda config section onto client settings.
func ConfigFrom(cfg config.CamundaConfig) *ClientConfig {
	connect := config.GetDuration(cfg.Timeout)
	if connect <= 0 {
		connect = defaultConnectTimeout
	}
	return &ClientConfig{
		GatewayAddress:         cfg.BrokerAddress,
		UsePlaintextConnection: true,
		ConnectionTimeout:      connect,
		RequestTimeout:         config.GetDuration(cfg.RequestTimeout),
		RetryConfig:            DefaultRetryConfig,
	}
}

// NewClientWithConfig dials the gateway and fails fast if the topology
// request does not answer within ConnectionTimeout.
func NewClientWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg.GatewayAddress == "" {
		return nil, errors.New("zeebe gateway address is required")
	}
	if cfg.RetryConfig == nil {
		cfg.RetryConfig = DefaultRetryConfig
	}
	if cfg.ConnectionTimeout <= 0 {
		cfg.ConnectionTimeout = defaultConnectTimeout
	}

	zb, err := zbc.NewClient(&zbc.ClientConfig{
		GatewayAddress:         cfg.GatewayAddress,
		UsePlaintextConnection: cfg.UsePlaintextConnection,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Zeebe client: %w", err)
	}

	c := &Client{zb: zb, config: cfg}
	if err := c.HealthCheck(context.Background()); err != nil {
		zb.Close()
		return nil, fmt.Errorf("gateway %s unreachable: %w", cfg.GatewayAddress, err)
	}
	return c, nil
}

// GetClient returns the raw Zeebe client for opening job workers.
func (c *Client) GetClient() zbc.Client {
	return c.zb
}

func (c *Client) Close() error {
	return c.zb.Close()
}

// Topology fetches the cluster layout, retrying transient gateway errors.
func (c *Client) Topology(ctx context.Context) (Topology, error) {
	return Retry(ctx, c.config.RetryConfig, "topology", func(ctx context.Context) (Topology, error) {
		resp, err := c.zb.NewTopologyCommand().Send(ctx)
		if err != nil {
			return Topology{}, err
		}
		return Topology{
			GatewayVersion: resp.GatewayVersion,
			Brokers:        len(resp.Brokers),
			Partitions:     int(resp.PartitionsCount),
		}, nil
	})
}

// HealthCheck asks the gateway for the cluster topology once.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.ConnectionTimeout)
	defer cancel()

	if _, err := c.zb.NewTopologyCommand().Send(ctx); err != nil {
		return fmt.Errorf("zeebe health check failed: %w", err)
	}
	return nil
}

// Retry runs fn until it succeeds, returns a permanent error, or exhausts
// rc.MaxRetries. Backoff doubles from BaseDelay up to MaxDelay.
func Retry[T any](ctx context.Context, rc *RetryConfig, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if !isTransient(err) || attempt >= rc.MaxRetries {
			return zero, fmt.Errorf("zeebe %s failed after %d attempts: %w", op, attempt+1, err)
		}

		select {
		case <-time.After(rc.delay(attempt)):
		case <-ctx.Done():
			return zero, fmt.Errorf("zeebe %s cancelled after %d attempts: %w", op, attempt+1, ctx.Err())
		}
	}
}

var transientPhrases = []string{
	"connection refused",
	"connection reset",
	"deadline exceeded",
	"unavailable",
	"broken pipe",
	"timeout",
}

// isTransient prefers the gRPC status code and falls back to the message
// for errors that were wrapped without one.
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		switch st.Code() {
		case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
			return true
		default:
			return false
		}
	}

	msg := strings.ToLower(err.Error())
	for _, phrase := range transientPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}
