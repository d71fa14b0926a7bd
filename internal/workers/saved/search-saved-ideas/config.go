// internal/workers/saved/search-saved-ideas/config.go
package searchsavedideas

import (
	"time"

	"idea-match-workers/internal/common/config"
)

type Config struct {
	Timeout     time.Duration
	Index       string
	DefaultSize int
	MaxSize     int
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{
		Timeout:     10 * time.Second,
		Index:       "saved_ideas",
		DefaultSize: 10,
		MaxSize:     50,
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
