// internal/workers/ideas/compare-ideas/config.go
package compareideas

import (
	"time"

	"idea-match-workers/internal/common/config"
)

type Config struct {
	Timeout  time.Duration
	MaxIdeas int
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{Timeout: 10 * time.Second, MaxIdeas: 5}
	if cfg == nil {
		return c
	}
	if ms := config.GetWorkerConfig(cfg, TaskType).Timeout; ms > 0 {
		c.Timeout = config.GetDuration(ms)
	}
	if cfg.Matching.CompareMaxIdeas > 0 {
		c.MaxIdeas = cfg.Matching.CompareMaxIdeas
	}
	return c
}
