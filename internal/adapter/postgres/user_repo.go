package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"bloglist/internal/domain"
)

// UserRepo implements domain.UserRepository on PostgreSQL. The owned-post ids
// live in a TEXT[] column mirroring the document layout of the original
// system.
type UserRepo struct {
	db *DB
}

// NewUserRepo wraps a DB as a UserRepository.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

var _ domain.UserRepository = (*UserRepo)(nil)

const userColumns = "id, username, name, password_hash, post_ids, created_at"

// GetByUsername retrieves a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanOne(r.db.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1", username))
}

// GetByID retrieves a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.scanOne(r.db.sql.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
}

// Create stores a new user.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO users (id, username, name, password_hash, post_ids, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		u.ID, u.Username, u.Name, u.PasswordHash, pq.Array(u.Posts), u.CreatedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicateUsername
	}
	return err
}

// AppendPost appends a post id to the user's owned set. The append itself is
// a single statement, but it is still a separate write from the post insert.
func (r *UserRepo) AppendPost(ctx context.Context, userID, postID string) error {
	res, err := r.db.sql.ExecContext(ctx,
		"UPDATE users SET post_ids = array_append(post_ids, $2) WHERE id = $1",
		userID, postID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all users ordered by id (ULIDs: creation order).
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.sql.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, pq.Array(&u.Posts), &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) scanOne(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, pq.Array(&u.Posts), &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
