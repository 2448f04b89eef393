package app

import (
	"context"

	"bloglist/internal/domain"
)

type mockUserRepo struct {
	getByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	getByIDFn       func(ctx context.Context, id string) (*domain.User, error)
	createFn        func(ctx context.Context, u *domain.User) error
	appendPostFn    func(ctx context.Context, userID, postID string) error
	listFn          func(ctx context.Context) ([]domain.User, error)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) AppendPost(ctx context.Context, userID, postID string) error {
	if m.appendPostFn != nil {
		return m.appendPostFn(ctx, userID, postID)
	}
	return nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockPostRepo struct {
	createFn  func(ctx context.Context, p *domain.Post) error
	getByIDFn func(ctx context.Context, id string) (*domain.Post, error)
	listFn    func(ctx context.Context) ([]domain.Post, error)
	updateFn  func(ctx context.Context, p *domain.Post) error
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockPostRepo) Create(ctx context.Context, p *domain.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockPostRepo) List(ctx context.Context) ([]domain.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockPostRepo) Update(ctx context.Context, p *domain.Post) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, p)
	}
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
