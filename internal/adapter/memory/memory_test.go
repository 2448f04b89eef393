package memory

import (
	"context"
	"errors"
	"testing"

	"bloglist/internal/domain"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepo(New())

	u := &domain.User{ID: "u1", Username: "ssss", Name: "kkkkk", PasswordHash: "hash", Posts: []string{}}
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	byName, err := users.GetByUsername(ctx, "ssss")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if byName.ID != "u1" {
		t.Errorf("expected u1, got %q", byName.ID)
	}

	byID, err := users.GetByID(ctx, "u1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if byID.Username != "ssss" {
		t.Errorf("expected ssss, got %q", byID.Username)
	}
}

func TestUserRepo_GetMissing(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepo(New())

	if _, err := users.GetByUsername(ctx, "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := users.GetByID(ctx, "nobody"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepo_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepo(New())

	if err := users.Create(ctx, &domain.User{ID: "u1", Username: "root"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	err := users.Create(ctx, &domain.User{ID: "u2", Username: "root"})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUserRepo_AppendPost(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepo(New())

	if err := users.Create(ctx, &domain.User{ID: "u1", Username: "ssss", Posts: []string{}}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := users.AppendPost(ctx, "u1", "p1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := users.AppendPost(ctx, "u1", "p2"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	u, err := users.GetByID(ctx, "u1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(u.Posts) != 2 || u.Posts[0] != "p1" || u.Posts[1] != "p2" {
		t.Errorf("expected [p1 p2], got %v", u.Posts)
	}

	if err := users.AppendPost(ctx, "missing", "p1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepo(New())

	if err := users.Create(ctx, &domain.User{ID: "u1", Username: "ssss", Posts: []string{"p1"}}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	u, _ := users.GetByID(ctx, "u1")
	u.Posts[0] = "mutated"
	u.Username = "mutated"

	again, _ := users.GetByID(ctx, "u1")
	if again.Posts[0] != "p1" || again.Username != "ssss" {
		t.Error("stored user should be unaffected by caller mutation")
	}
}

func TestPostRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	posts := NewPostRepo(New())

	p := &domain.Post{ID: "p1", Title: "Type wars", Author: "Robert C. Martin", URL: "http://x", Likes: 2, UserID: "u1"}
	if err := posts.Create(ctx, p); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := posts.GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Title != "Type wars" {
		t.Errorf("expected title, got %q", got.Title)
	}

	got.Likes = 2000000
	if err := posts.Update(ctx, got); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	updated, _ := posts.GetByID(ctx, "p1")
	if updated.Likes != 2000000 {
		t.Errorf("expected 2000000 likes, got %d", updated.Likes)
	}

	if err := posts.Delete(ctx, "p1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := posts.GetByID(ctx, "p1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := posts.Delete(ctx, "p1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestPostRepo_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	posts := NewPostRepo(New())

	for _, id := range []string{"p1", "p2", "p3"} {
		if err := posts.Create(ctx, &domain.Post{ID: id, Title: id, URL: "u", UserID: "u1"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	listed, err := posts.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(listed) != 3 || listed[0].ID != "p1" || listed[2].ID != "p3" {
		t.Errorf("expected insertion order, got %v", listed)
	}

	if err := posts.Update(ctx, &domain.Post{ID: "missing"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
