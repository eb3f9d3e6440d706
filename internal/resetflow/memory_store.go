package resetflow

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used by tests and single-node setups
// without Redis. Sessions are copied on the way in and out.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	inFlight map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		inFlight: make(map[string]bool),
	}
}

func (s *MemoryStore) Get(_ context.Context, email string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := session
	return &copied, nil
}

func (s *MemoryStore) Save(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Email] = *session
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, email)
	return nil
}

func (s *MemoryStore) TryBegin(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[email] {
		return false, nil
	}
	s.inFlight[email] = true
	return true, nil
}

func (s *MemoryStore) End(_ context.Context, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, email)
}
