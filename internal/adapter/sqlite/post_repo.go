package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bloglist/internal/domain"
)

// PostRepo implements domain.PostRepository on SQLite.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

var _ domain.PostRepository = (*PostRepo)(nil)

// Create stores a new post.
func (r *PostRepo) Create(ctx context.Context, p *domain.Post) error {
	r.db.writeMu.Lock()
	defer r.db.writeMu.Unlock()

	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO posts (id, title, author, url, likes, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.Title, p.Author, p.URL, p.Likes, p.UserID, p.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetByID retrieves a post by id.
func (r *PostRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var (
		p       domain.Post
		created int64
	)
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT id, title, author, url, likes, user_id, created_at FROM posts WHERE id = ?", id,
	).Scan(&p.ID, &p.Title, &p.Author, &p.URL, &p.Likes, &p.UserID, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.CreatedAt = time.Unix(created, 0).UTC()
	return &p, nil
}

// List returns all posts ordered by id (ULIDs: creation order).
func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, title, author, url, likes, user_id, created_at FROM posts ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var (
			p       domain.Post
			created int64
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Author, &p.URL, &p.Likes, &p.UserID, &created); err != nil {
			return nil, err
		}
		p.CreatedAt = time.Unix(created, 0).UTC()
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Update replaces the mutable fields of a post. The owner column is left
// untouched.
func (r *PostRepo) Update(ctx context.Context, p *domain.Post) error {
	r.db.writeMu.Lock()
	defer r.db.writeMu.Unlock()

	res, err := r.db.sql.ExecContext(ctx,
		"UPDATE posts SET title = ?, author = ?, url = ?, likes = ? WHERE id = ?",
		p.Title, p.Author, p.URL, p.Likes, p.ID,
	)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// Delete removes a post by id.
func (r *PostRepo) Delete(ctx context.Context, id string) error {
	r.db.writeMu.Lock()
	defer r.db.writeMu.Unlock()

	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
