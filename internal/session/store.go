package session

import (
	"context"
	"errors"

	"github.com/imogenclam/visualmath/internal/model"
)

// ErrNotFound is returned by a Store when no profile is cached for a token.
var ErrNotFound = errors.New("session: not found")

// Store is the persistent key-value session store: the durable home of
// the cached user profile, keyed by the bearer token. It is read at
// session startup and written only on a successful profile refresh or
// on logout.
type Store interface {
	// GetUser returns the cached profile for a token, or ErrNotFound.
	GetUser(ctx context.Context, token string) (model.UserProfile, error)
	// SetUser replaces the cached profile for a token.
	SetUser(ctx context.Context, token string, user model.UserProfile) error
	// Clear removes everything persisted for a token.
	Clear(ctx context.Context, token string) error
}
