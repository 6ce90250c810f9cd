package builder

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps sessions in process memory. Used in dev when no Redis
// URL is configured, and by tests. Sessions round-trip through JSON so the
// memory store exercises the same encoding as the Redis one.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, resumeID string) (*Session, error) {
	s.mu.RLock()
	data, ok := s.items[resumeID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNoSession
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (s *MemoryStore) Put(_ context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	s.mu.Lock()
	s.items[session.ResumeID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, resumeID string) error {
	s.mu.Lock()
	delete(s.items, resumeID)
	s.mu.Unlock()
	return nil
}
