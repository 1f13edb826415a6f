package dashboard

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/imogenclam/visualmath/internal/backend"
	"github.com/imogenclam/visualmath/internal/session"
)

// Manager hands out one controller per session token, so a page's
// events keep hitting the same live state across requests.
type Manager struct {
	mu          sync.Mutex
	guard       *session.Guard
	client      *backend.Client
	log         zerolog.Logger
	controllers map[string]*Controller
}

// NewManager creates the per-session controller registry.
func NewManager(guard *session.Guard, client *backend.Client, log zerolog.Logger) *Manager {
	return &Manager{
		guard:       guard,
		client:      client,
		log:         log,
		controllers: make(map[string]*Controller),
	}
}

// Controller returns the live controller for a token, creating one on
// first sight. session.ErrNoSession passes through untouched.
func (m *Manager) Controller(ctx context.Context, token string) (*Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.controllers[token]; ok {
		return c, nil
	}

	c, err := New(ctx, m.guard, m.client, m.log, token)
	if err != nil {
		return nil, err
	}
	m.controllers[token] = c
	return c, nil
}

// Drop forgets a session's controller, typically after logout.
func (m *Manager) Drop(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.controllers, token)
}
