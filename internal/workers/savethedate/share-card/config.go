// internal/workers/savethedate/share-card/config.go
package sharecard

import (
	"time"

	"everaftr-workers/internal/common/config"
	"everaftr-workers/internal/savethedate"
)

type Config struct {
	Timeout       time.Duration
	RenderTimeout time.Duration
	// ShareTimeout bounds each channel separately.
	ShareTimeout time.Duration
	Scale        float64
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:       60 * time.Second,
		RenderTimeout: 20 * time.Second,
		ShareTimeout:  15 * time.Second,
		Scale:         savethedate.DefaultScale,
	}
}

func NewConfig(wc config.WorkerConfig, rc config.RenderConfig, sc config.ShareConfig) *Config {
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
	if sc.Timeout > 0 {
		cfg.ShareTimeout = config.GetDuration(sc.Timeout)
	}
	return cfg
}
