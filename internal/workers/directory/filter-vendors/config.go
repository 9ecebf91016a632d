// internal/workers/directory/filter-vendors/config.go
package filtervendors

import (
	"time"

	"everaftr-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func DefaultConfig() *Config {
	return &Config{Timeout: 10 * time.Second}
}

// NewConfig reads the per-worker timeout, keeping the default when unset.
func NewConfig(wc config.WorkerConfig) *Config {
	cfg := DefaultConfig()
	if wc.Timeout > 0 {
		cfg.Timeout = config.GetDuration(wc.Timeout)
	}
	return cfg
}
