package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"bloglist/internal/domain"
)

// UserRepo implements domain.UserRepository on SQLite. The owned-post ids are
// stored as a JSON-encoded text column; SQLite has no array type.
type UserRepo struct {
	db *DB
}

// NewUserRepo wraps a DB as a UserRepository.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

var _ domain.UserRepository = (*UserRepo)(nil)

// GetByUsername retrieves a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUser(r.db.sql.QueryRowContext(ctx,
		"SELECT id, username, name, password_hash, post_ids, created_at FROM users WHERE username = ?",
		username))
}

// GetByID retrieves a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.db.sql.QueryRowContext(ctx,
		"SELECT id, username, name, password_hash, post_ids, created_at FROM users WHERE id = ?",
		id))
}

// Create stores a new user.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	r.db.writeMu.Lock()
	defer r.db.writeMu.Unlock()

	postIDs, err := json.Marshal(u.Posts)
	if err != nil {
		return err
	}

	_, err = r.db.sql.ExecContext(ctx,
		"INSERT INTO users (id, username, name, password_hash, post_ids, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		u.ID, u.Username, u.Name, u.PasswordHash, string(postIDs), u.CreatedAt.Unix(),
	)
	if err != nil {
		var liteErr *sqlite.Error
		if errors.As(err, &liteErr) {
			switch liteErr.Code() {
			case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
				return domain.ErrDuplicateUsername
			}
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// AppendPost appends a post id to the user's owned set. Read-modify-write on
// the JSON column, serialized by the write lock within this process.
func (r *UserRepo) AppendPost(ctx context.Context, userID, postID string) error {
	r.db.writeMu.Lock()
	defer r.db.writeMu.Unlock()

	var raw string
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT post_ids FROM users WHERE id = ?", userID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return fmt.Errorf("decode post_ids: %w", err)
	}
	ids = append(ids, postID)

	updated, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	_, err = r.db.sql.ExecContext(ctx,
		"UPDATE users SET post_ids = ? WHERE id = ?", string(updated), userID)
	return err
}

// List returns all users ordered by id (ULIDs: creation order).
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, username, name, password_hash, post_ids, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUserRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func scanUser(row *sql.Row) (*domain.User, error) {
	u, err := scanUserRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return u, err
}

func scanUserRow(scan func(...any) error) (*domain.User, error) {
	var (
		u       domain.User
		raw     string
		created int64
	)
	if err := scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &raw, &created); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(raw), &u.Posts); err != nil {
		return nil, fmt.Errorf("decode post_ids: %w", err)
	}
	u.CreatedAt = time.Unix(created, 0).UTC()
	return &u, nil
}
