package userstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vanshika/oraculo/internal/domain"
)

// MemoryStore keeps users in process memory. Ids start at 1.
type MemoryStore struct {
	mu         sync.RWMutex
	users      map[int64]domain.User
	byUsername map[string]int64
	nextID     int64
	nowFn      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[int64]domain.User),
		byUsername: make(map[string]int64),
		nextID:     1,
		nowFn:      time.Now,
	}
}

func (m *MemoryStore) Create(_ context.Context, username, passwordHash string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byUsername[username]; taken {
		return domain.User{}, fmt.Errorf("create user %q: %w", username, ErrConflict)
	}

	user := domain.User{
		ID:           m.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    m.nowFn().UTC(),
	}
	m.nextID++
	m.users[user.ID] = user
	m.byUsername[username] = user.ID
	return user, nil
}

func (m *MemoryStore) Get(_ context.Context, id int64) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return domain.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return user, nil
}

func (m *MemoryStore) GetByUsername(_ context.Context, username string) (domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byUsername[username]
	if !ok {
		return domain.User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return m.users[id], nil
}

func (m *MemoryStore) Close() error { return nil }
