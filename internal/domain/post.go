package domain

import (
	"context"
	"time"
)

// Post is an authored record with a title, url and like count, owned by the
// user that created it. The owner reference never changes after creation.
type Post struct {
	ID        string
	Title     string
	Author    string
	URL       string
	Likes     int
	UserID    string
	CreatedAt time.Time
}

// PostRepository defines the port for post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id string) error
}
