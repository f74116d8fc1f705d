// ABOUTME: Authentication service orchestrating registration and login
// ABOUTME: Uniqueness pre-checks, password hashing, and token issuance

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skoehler/tasktrack/internal/store"
)

// ErrInvalidCredentials is returned for every login failure. Unknown
// username and wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialStore is the subset of the store the auth service needs.
type CredentialStore interface {
	CreateUser(ctx context.Context, user *store.User) error
	GetUserByUsername(ctx context.Context, username string) (*store.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// Service handles user registration and login.
type Service struct {
	users  CredentialStore
	issuer *TokenIssuer
	logger *slog.Logger
}

// NewService creates an authentication service.
func NewService(users CredentialStore, issuer *TokenIssuer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:  users,
		issuer: issuer,
		logger: logger.With("component", "auth"),
	}
}

// Register creates a new user with the default USER role and issues a token.
//
// Username uniqueness is checked before email uniqueness so the error is
// deterministic when both collide. The checks are only a fast path: two
// concurrent registrations with the same key race past them, and the
// store's UNIQUE constraints arbitrate - CreateUser returns the same
// ErrUsernameTaken/ErrEmailTaken either way.
func (s *Service) Register(ctx context.Context, username, email, password string) (*store.User, string, error) {
	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("checking username: %w", err)
	}
	if taken {
		return nil, "", store.ErrUsernameTaken
	}

	taken, err = s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("checking email: %w", err)
	}
	if taken {
		return nil, "", store.ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := &store.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         store.RoleUser,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issuer.Issue(user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("user registered", "username", username)
	return user, token, nil
}

// Login verifies credentials and issues a fresh token. Both unknown
// username and wrong password yield ErrInvalidCredentials; a dummy hash
// comparison keeps the two paths close in timing.
func (s *Service) Login(ctx context.Context, username, password string) (*store.User, string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			compareDummy(password)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("loading user: %w", err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("user logged in", "username", username)
	return user, token, nil
}
