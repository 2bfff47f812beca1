package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStore keeps sessions in-process. It exists for tests and
// single-node development; multi-instance deployments must use the
// Redis store. Expired entries are dropped lazily on access.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

func (m *MemoryStore) Create(ctx context.Context, s Session) error {
	if s.SessionID == "" || s.UserID == 0 {
		return fmt.Errorf("session: missing session_id or user_id")
	}

	if !s.ExpiresAt.After(time.Now()) {
		return fmt.Errorf("session: expires_at must be in the future")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SessionID] = s
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()

	if !ok {
		return nil, nil // not found
	}

	if time.Now().After(s.ExpiresAt) {
		m.mu.Lock()
		delete(m.sessions, sessionID)
		m.mu.Unlock()
		return nil, nil
	}

	return &s, nil
}

func (m *MemoryStore) Update(ctx context.Context, s Session) error {
	if s.SessionID == "" {
		return fmt.Errorf("session: missing session_id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !s.ExpiresAt.After(time.Now()) {
		delete(m.sessions, s.SessionID)
		return nil
	}

	m.sessions[s.SessionID] = s
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
