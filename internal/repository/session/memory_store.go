package session

import (
	"context"
	"sync"
	"time"

	"job-portal-backend/internal/domain"
)

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemoryStore is the in-memory fallback used when Redis is not
// configured. Sessions do not survive a restart; fine for development,
// logged as a warning at startup.
func NewMemoryStore() domain.SessionStore {
	store := &memoryStore{sessions: make(map[string]*domain.Session)}
	go store.sweep()
	return store
}

func (s *memoryStore) Create(_ context.Context, sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.sessions[sess.ID] = &copied
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(sess.ExpiresAt) {
		return nil, domain.ErrNotFound
	}
	copied := *sess
	return &copied, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// sweep evicts expired sessions so the map does not grow unbounded.
func (s *memoryStore) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for id, sess := range s.sessions {
			if now.After(sess.ExpiresAt) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}
