// Package userstore keeps registered accounts, in memory or in a SQL database.
package userstore

import (
	"context"
	"errors"
	"strings"

	"github.com/vanshika/oraculo/internal/domain"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrConflict is returned when the username is already taken.
	ErrConflict = errors.New("username already exists")
)

// Store is the persistence contract for registered users.
type Store interface {
	Create(ctx context.Context, username, passwordHash string) (domain.User, error)
	Get(ctx context.Context, id int64) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Close() error
}

// Open returns the store for driver: "memory" or any driver DialectFor knows.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	if strings.EqualFold(strings.TrimSpace(driver), "memory") {
		return NewMemoryStore(), nil
	}
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}
	return OpenSQL(ctx, dialect, dsn)
}
