// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates that the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername indicates that the username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")
)

// User represents a registered account able to authenticate and own posts.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Posts        []string // ids of owned posts, in creation order
	CreatedAt    time.Time
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) error
	AppendPost(ctx context.Context, userID, postID string) error
	List(ctx context.Context) ([]User, error)
}
