package session

import (
	"context"
	"sync"

	"github.com/imogenclam/visualmath/internal/model"
)

// MemoryStore is an in-process session store used in tests and when no
// Redis is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]model.UserProfile
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]model.UserProfile)}
}

func (s *MemoryStore) GetUser(_ context.Context, token string) (model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[token]
	if !ok {
		return model.UserProfile{}, ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) SetUser(_ context.Context, token string, user model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[token] = user
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, token)
	return nil
}
