// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"bloglist/internal/domain"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized indicates a mutating request without a resolved user.
	ErrUnauthorized = errors.New("token missing or invalid")
	// ErrNotOwner indicates an authenticated user acting on another user's post.
	ErrNotOwner = errors.New("unauthorized to delete the blog")
)

// ValidationError reports invalid registration or post input. Its message is
// safe to return to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthService handles registration, login and bearer-token resolution.
type AuthService struct {
	users  domain.UserRepository
	tokens *TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login authenticates a user and issues a signed token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register validates and creates a new user. Username and password must both
// be present and at least 3 characters; the username must be unique.
func (s *AuthService) Register(ctx context.Context, username, name, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, &ValidationError{Message: "password and username must be given"}
	}
	if len(username) < 3 || len(password) < 3 {
		return nil, &ValidationError{Message: "password or username must be at least 3 characters long"}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           id,
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		Posts:        []string{},
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, &ValidationError{Message: "expected `username` to be unique"}
		}
		return nil, err
	}
	return user, nil
}

// ResolveToken resolves a bearer token into a stored user. An invalid token
// and a valid token whose user no longer exists both resolve to no user
// rather than an error; callers decide whether anonymous access is acceptable.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, claims.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// LoginWithUser issues a token for an externally authenticated user (e.g. via
// SSO), provisioning the account with a random unusable password on first
// login.
func (s *AuthService) LoginWithUser(ctx context.Context, username, name string) (string, *domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		user, err = s.provision(ctx, username, name)
	}
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) provision(ctx context.Context, username, name string) (*domain.User, error) {
	hash, err := HashPassword(randomPassword())
	if err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           id,
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		Posts:        []string{},
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			// Lost a provisioning race; the earlier writer's row wins.
			return s.users.GetByUsername(ctx, username)
		}
		return nil, err
	}
	return user, nil
}

func randomPassword() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
