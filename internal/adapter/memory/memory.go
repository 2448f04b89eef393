// Package memory implements the repositories in memory for development and
// testing.
package memory

import (
	"context"
	"sync"

	"bloglist/internal/domain"
)

// DB holds all in-memory state. Repositories created from one DB share it.
type DB struct {
	mu    sync.Mutex
	users []domain.User
	posts []domain.Post
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*UserRepo)(nil)
var _ domain.PostRepository = (*PostRepo)(nil)

// --- UserRepository ---

// UserRepo implements user persistence on DB.
type UserRepo struct {
	db *DB
}

// NewUserRepo wraps a DB as a UserRepository.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByUsername retrieves a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.users {
		if r.db.users[i].Username == username {
			u := copyUser(r.db.users[i])
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByID retrieves a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.users {
		if r.db.users[i].ID == id {
			u := copyUser(r.db.users[i])
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create stores a new user.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.users {
		if r.db.users[i].Username == u.Username {
			return domain.ErrDuplicateUsername
		}
	}
	r.db.users = append(r.db.users, copyUser(*u))
	return nil
}

// AppendPost appends a post id to the user's owned set.
func (r *UserRepo) AppendPost(ctx context.Context, userID, postID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.users {
		if r.db.users[i].ID == userID {
			r.db.users[i].Posts = append(r.db.users[i].Posts, postID)
			return nil
		}
	}
	return domain.ErrNotFound
}

// List returns all users in insertion order.
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.User, 0, len(r.db.users))
	for i := range r.db.users {
		out = append(out, copyUser(r.db.users[i]))
	}
	return out, nil
}

func copyUser(u domain.User) domain.User {
	u.Posts = append([]string(nil), u.Posts...)
	return u
}

// --- PostRepository ---

// PostRepo implements post persistence on DB.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

// Create stores a new post.
func (r *PostRepo) Create(ctx context.Context, p *domain.Post) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.posts = append(r.db.posts, *p)
	return nil
}

// GetByID retrieves a post by id.
func (r *PostRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.posts {
		if r.db.posts[i].ID == id {
			p := r.db.posts[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all posts in insertion order.
func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Post, len(r.db.posts))
	copy(out, r.db.posts)
	return out, nil
}

// Update replaces a stored post.
func (r *PostRepo) Update(ctx context.Context, p *domain.Post) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.posts {
		if r.db.posts[i].ID == p.ID {
			r.db.posts[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete removes a post by id.
func (r *PostRepo) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.posts {
		if r.db.posts[i].ID == id {
			r.db.posts = append(r.db.posts[:i], r.db.posts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
