// Package session owns the persisted {token, user} pair representing the
// logged-in identity on-device. Screens read and write it only through the
// Store interface, so tests can substitute an in-memory implementation.
package session

import (
	"context"
	"sync"

	"github.com/eventlane/eventlane/internal/client/models"
)

// Storage keys for the on-device key-value table.
const (
	keyToken = "auth_token"
	keyUser  = "auth_user"
)

// Store is the session contract. A missing token reads as "", a missing
// user as nil; neither is an error.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	User(ctx context.Context) (*models.User, error)
	SetUser(ctx context.Context, user *models.User) error

	// ClearAuth removes both token and user with no observable
	// partial-clear state.
	ClearAuth(ctx context.Context) error
}

// MemoryStore is a non-durable Store for tests.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Token(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryStore) SetToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) User(ctx context.Context) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil, nil
	}
	u := *m.user
	return &u, nil
}

func (m *MemoryStore) SetUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user == nil {
		m.user = nil
		return nil
	}
	u := *user
	m.user = &u
	return nil
}

func (m *MemoryStore) ClearAuth(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	return nil
}
