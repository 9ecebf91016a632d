// internal/workers/savethedate/render-card/config.go
package rendercard

import (
	"time"

	"everaftr-workers/internal/common/config"
	"everaftr-workers/internal/savethedate"
)

type Config struct {
	Timeout time.Duration
	// RenderTimeout bounds the rasterization alone.
	RenderTimeout time.Duration
	Scale         float64
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:       30 * time.Second,
		RenderTimeout: 20 * time.Second,
		Scale:         savethedate.DefaultScale,
	}
}

// NewConfig combines the worker entry with the shared render section.
func NewConfig(wc config.WorkerConfig, rc config.RenderConfig) *Config {
	cfg := DefaultConfig()
	if wc.Timeout > 0 {
		cfg.Timeout = config.GetDuration(wc.Timeout)
	}
	if rc.Timeout > 0 {
		cfg.RenderTimeout = config.GetDuration(rc.Timeout)
	}
	if rc.Scale > 0 {
		cfg.Scale = rc.Scale
	}
	return cfg
}
