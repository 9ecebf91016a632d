// internal/workers/matchmaker/score-vendors/config.go
package scorevendors

import (
	"time"

	"everaftr-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
	// MaxMatches caps the ranked list; 0 keeps every match.
	MaxMatches int
}

func DefaultConfig() *Config {
	return &Config{Timeout: 10 * time.Second}
}

func NewConfig(wc config.WorkerConfig) *Config {
	cfg := DefaultConfig()
	if wc.Timeout > 0 {
		cfg.Timeout = config.GetDuration(wc.Timeout)
	}
	return cfg
}
