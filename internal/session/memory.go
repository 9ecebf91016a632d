// internal/session/memory.go
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type entry struct {
	data    []byte
	expires time.Time
}

// MemoryStore keeps sessions in process. Values are stored encoded so callers
// never share memory with the store.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		items: make(map[string]entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemoryStore) Save(ctx context.Context, kind, id string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key(kind, id)] = entry{data: data, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, kind, id string, v interface{}) error {
	k := key(kind, id)
	s.mu.RLock()
	e, ok := s.items[k]
	s.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if !s.now().Before(e.expires) {
		s.mu.Lock()
		if cur, ok := s.items[k]; ok && !s.now().Before(cur.expires) {
			delete(s.items, k)
		}
		s.mu.Unlock()
		return ErrNotFound
	}
	return json.Unmarshal(e.data, v)
}

func (s *MemoryStore) Discard(ctx context.Context, kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key(kind, id))
	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for k, e := range s.items {
		if !now.Before(e.expires) {
			delete(s.items, k)
			removed++
		}
	}
	return removed
}

// Len counts live entries of kind.
func (s *MemoryStore) Len(kind string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.now()
	prefix := kind + ":"
	n := 0
	for k, e := range s.items {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix && now.Before(e.expires) {
			n++
		}
	}
	return n
}
