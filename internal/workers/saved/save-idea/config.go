// internal/workers/saved/save-idea/config.go
package saveidea

import (
	"time"

	"idea-match-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
	Index   string
	// Refresh is passed to the index call; "wait_for" makes a saved idea
	// searchable before the job completes.
	Refresh string
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{
		Timeout: 15 * time.Second,
		Index:   "saved_ideas",
		Refresh: "wait_for",
	}
	if cfg == nil {
		return c
	}
	if ms := config.GetWorkerConfig(cfg, TaskType).Timeout; ms > 0 {
		c.Timeout = config.GetDuration(ms)
	}
	if cfg.Search.SavedIdeasIndex != "" {
		c.Index = cfg.Search.SavedIdeasIndex
	}
	return c
}
