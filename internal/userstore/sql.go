package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vanshika/oraculo/internal/domain"
)

// SQLStore keeps users in a relational database through a Dialect.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	nowFn   func() time.Time
}

// OpenSQL opens the database, applies connection settings and creates the
// users table when missing.
func OpenSQL(ctx context.Context, dialect Dialect, dsn string) (*SQLStore, error) {
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := dialect.ConfigureConnection(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}
	if _, err := db.ExecContext(ctx, dialect.CreateUsersTableQuery()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create users table: %w", err)
	}
	return &SQLStore{db: db, dialect: dialect, nowFn: time.Now}, nil
}

func (s *SQLStore) Create(ctx context.Context, username, passwordHash string) (domain.User, error) {
	createdAt := s.nowFn().UTC()
	id, err := s.execReturningID(ctx,
		"INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)",
		username, passwordHash, createdAt.UnixMilli(),
	)
	if err != nil {
		if s.dialect.IsUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("create user %q: %w", username, ErrConflict)
		}
		return domain.User{}, fmt.Errorf("create user %q: %w", username, err)
	}
	return domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.UnixMilli(createdAt.UnixMilli()).UTC(),
	}, nil
}

func (s *SQLStore) Get(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.queryUser(ctx, "SELECT id, username, password_hash, created_at FROM users WHERE id = ?", id)
	if err != nil {
		return domain.User{}, fmt.Errorf("user %d: %w", id, err)
	}
	return user, nil
}

func (s *SQLStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	user, err := s.queryUser(ctx, "SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username)
	if err != nil {
		return domain.User{}, fmt.Errorf("user %q: %w", username, err)
	}
	return user, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) queryUser(ctx context.Context, query string, arg any) (domain.User, error) {
	var (
		user      domain.User
		createdAt int64
	)
	row := s.db.QueryRowContext(ctx, s.dialect.RewriteQuery(query), arg)
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	user.CreatedAt = time.UnixMilli(createdAt).UTC()
	return user, nil
}

// execReturningID runs an INSERT and returns the new row id, falling back to
// RETURNING id where LastInsertId is unsupported.
func (s *SQLStore) execReturningID(ctx context.Context, query string, args ...any) (int64, error) {
	query = s.dialect.RewriteQuery(query)

	if s.dialect.SupportsLastInsertId() {
		result, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	}

	query = strings.TrimSuffix(strings.TrimSpace(query), ";") + " RETURNING id"
	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
