package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/vanshika/oraculo/internal/domain"
	"github.com/vanshika/oraculo/internal/metrics"
	"github.com/vanshika/oraculo/internal/userstore"
)

// UserService manages the registry of users. Passwords are stored as bcrypt
// hashes and never leave this package in clear text.
type UserService struct {
	store   userstore.Store
	metrics *metrics.Metrics
	logger  *slog.Logger
	cost    int
}

func NewUserService(store userstore.Store, logger *slog.Logger, m *metrics.Metrics) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{store: store, metrics: m, logger: logger, cost: bcrypt.DefaultCost}
}

// WithHashCost sets the bcrypt cost; tests use bcrypt.MinCost.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.cost = cost
	return s
}

// Register creates a user. Usernames are case-insensitive and unique.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	username = normalizeUsername(username)
	if err := requireMinLength("username", username, 3, msgUsernameTooShort); err != nil {
		return domain.User{}, err
	}
	if err := requireMinLength("password", password, 8, msgPasswordTooShort); err != nil {
		return domain.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return domain.User{}, invalid("password", msgPasswordTooLong)
		}
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.Create(ctx, username, string(hashed))
	if err != nil {
		return domain.User{}, err
	}
	s.metrics.IncrementUsersCreated()
	s.logger.InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID), slog.String("username", user.Username))
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	return s.store.Get(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.store.GetByUsername(ctx, normalizeUsername(username))
}

// Authenticate returns the user when the password matches its stored hash.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.store.GetByUsername(ctx, normalizeUsername(username))
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("verify password: %w", err)
	}
	return user, nil
}
