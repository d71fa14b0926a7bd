// internal/workers/ideas/dismiss-idea/config.go
package dismissidea

import (
	"time"

	"idea-match-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{Timeout: 10 * time.Second}
	if cfg == nil {
		return c
	}
	if ms := config.GetWorkerConfig(cfg, TaskType).Timeout; ms > 0 {
		c.Timeout = config.GetDuration(ms)
	}
	return c
}
