package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bloglist/internal/domain"
)

// PostRepo implements domain.PostRepository on PostgreSQL.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

var _ domain.PostRepository = (*PostRepo)(nil)

const postColumns = "id, title, author, url, likes, user_id, created_at"

// Create stores a new post.
func (r *PostRepo) Create(ctx context.Context, p *domain.Post) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO posts (id, title, author, url, likes, user_id, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		p.ID, p.Title, p.Author, p.URL, p.Likes, p.UserID, p.CreatedAt,
	)
	return err
}

// GetByID retrieves a post by id.
func (r *PostRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var p domain.Post
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE id = $1", id,
	).Scan(&p.ID, &p.Title, &p.Author, &p.URL, &p.Likes, &p.UserID, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all posts ordered by id (ULIDs: creation order).
func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.sql.QueryContext(ctx, "SELECT "+postColumns+" FROM posts ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Author, &p.URL, &p.Likes, &p.UserID, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Update replaces the mutable fields of a post. The owner column is left
// untouched.
func (r *PostRepo) Update(ctx context.Context, p *domain.Post) error {
	res, err := r.db.sql.ExecContext(ctx,
		"UPDATE posts SET title = $2, author = $3, url = $4, likes = $5 WHERE id = $1",
		p.ID, p.Title, p.Author, p.URL, p.Likes,
	)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// Delete removes a post by id.
func (r *PostRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
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
