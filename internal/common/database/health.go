package database

import (
	"context"
	"time"
)

// Pinger is a collaborator that can report its reachability.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// CheckAll pings every collaborator with a per-check timeout and returns the
// failures keyed by name. An empty map means everything is reachable.
func CheckAll(ctx context.Context, timeout time.Duration, pingers ...Pinger) map[string]string {
	failures := make(map[string]string)
	for _, p := range pingers {
		if p == nil {
			continue
		}
		checkCtx, cancel := context.WithTimeout(ctx, timeout)
		if err := p.Ping(checkCtx); err != nil {
			failures[p.Name()] = err.Error()
		}
		cancel()
	}
	return failures
}
