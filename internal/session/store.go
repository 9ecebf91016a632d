// internal/session/store.go
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Kinds of ephemeral state.
const (
	KindQuiz      = "quiz"
	KindWorkspace = "workspace"
)

// ErrNotFound is returned by Load for missing, expired or discarded sessions.
var ErrNotFound = errors.New("session not found")

// Store holds ephemeral JSON session state under (kind, id) with a TTL.
// Save refreshes the TTL.
type Store interface {
	Save(ctx context.Context, kind, id string, v interface{}) error
	Load(ctx context.Context, kind, id string, v interface{}) error
	Discard(ctx context.Context, kind, id string) error
}

// Open stores v under a fresh random id and returns the id.
func Open(ctx context.Context, s Store, kind string, v interface{}) (string, error) {
	id := uuid.NewString()
	if err := s.Save(ctx, kind, id, v); err != nil {
		return "", err
	}
	return id, nil
}

func key(kind, id string) string {
	return fmt.Sprintf("%s:%s", kind, id)
}
