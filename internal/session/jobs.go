// internal/session/jobs.go
package session

import (
	"context"
	stderrors "errors"

	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/metrics"
)

// The helpers below are the job-facing side of a Store: they report failures
// as StandardErrors and keep the sessions_active gauge current.

// Start opens a session holding v and returns its id.
func Start(ctx context.Context, s Store, kind string, v interface{}) (string, error) {
	id, err := Open(ctx, s, kind, v)
	if err != nil {
		return "", errors.NewSessionStoreFailedError(err).WithMetadata("kind", kind)
	}
	metrics.SessionsActive.WithLabelValues(kind).Inc()
	return id, nil
}

// Get loads the session id into v.
func Get(ctx context.Context, s Store, kind, id string, v interface{}) error {
	if id == "" {
		return errors.NewInputValidationFailedError(kind, "sessionId is required")
	}
	if err := s.Load(ctx, kind, id, v); err != nil {
		return mapStoreError(err, kind, id)
	}
	return nil
}

// Put writes v back under id, refreshing its TTL.
func Put(ctx context.Context, s Store, kind, id string, v interface{}) error {
	if err := s.Save(ctx, kind, id, v); err != nil {
		return mapStoreError(err, kind, id)
	}
	return nil
}

// Close discards the session. Closing an unknown id is not an error.
func Close(ctx context.Context, s Store, kind, id string) error {
	if id == "" {
		return errors.NewInputValidationFailedError(kind, "sessionId is required")
	}
	if err := s.Discard(ctx, kind, id); err != nil {
		return mapStoreError(err, kind, id)
	}
	metrics.SessionsActive.WithLabelValues(kind).Dec()
	return nil
}

func mapStoreError(err error, kind, id string) error {
	if stderrors.Is(err, ErrNotFound) {
		return errors.NewSessionNotFoundError(id).WithMetadata("kind", kind)
	}
	return errors.NewSessionStoreFailedError(err).WithMetadata("kind", kind)
}
