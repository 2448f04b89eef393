package app

import (
	"context"
	"errors"

	"bloglist/internal/domain"
)

// UserWithPosts pairs a user with the posts its owned set resolves to.
type UserWithPosts struct {
	User  domain.User
	Posts []domain.Post
}

// UserService exposes the user listing with owned posts populated.
type UserService struct {
	users domain.UserRepository
	posts domain.PostRepository
}

// NewUserService creates a UserService over the given repositories.
func NewUserService(users domain.UserRepository, posts domain.PostRepository) *UserService {
	return &UserService{users: users, posts: posts}
}

// List returns every user with owned posts populated from the stored id set.
// Ids that no longer resolve to a stored post are skipped: deletion does not
// prune owned sets, so dangling ids are expected.
func (s *UserService) List(ctx context.Context) ([]UserWithPosts, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UserWithPosts, 0, len(users))
	for _, u := range users {
		posts := make([]domain.Post, 0, len(u.Posts))
		for _, id := range u.Posts {
			post, err := s.posts.GetByID(ctx, id)
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			posts = append(posts, *post)
		}
		out = append(out, UserWithPosts{User: u, Posts: posts})
	}
	return out, nil
}
