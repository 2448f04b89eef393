package app

import (
	"context"
	"errors"
	"time"

	"bloglist/internal/domain"
)

// PostInput carries the caller-editable fields of a post.
type PostInput struct {
	Title  string
	Author string
	URL    string
	Likes  int
}

// Owner is the minimal projection of a user embedded in post listings. It
// never includes the password hash.
type Owner struct {
	ID       string
	Username string
	Name     string
}

// PostWithOwner pairs a post with its owner projection. Owner is nil when the
// owning user no longer resolves.
type PostWithOwner struct {
	Post  domain.Post
	Owner *Owner
}

// PostService maintains the post collection and the user/post ownership links.
type PostService struct {
	posts domain.PostRepository
	users domain.UserRepository
}

// NewPostService creates a PostService over the given repositories.
func NewPostService(posts domain.PostRepository, users domain.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create stores a new post owned by caller and appends its id to the caller's
// owned set. The authentication check runs first and short-circuits; field
// validation is only reached by authenticated callers. The post write and the
// owned-set append are two separate writes: a failure between them leaves a
// post the owner's set omits.
func (s *PostService) Create(ctx context.Context, caller *domain.User, in PostInput) (*domain.Post, error) {
	if caller == nil {
		return nil, ErrUnauthorized
	}
	if in.Title == "" || in.URL == "" {
		return nil, &ValidationError{Message: "title and url must be given"}
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:        id,
		Title:     in.Title,
		Author:    in.Author,
		URL:       in.URL,
		Likes:     normalizeLikes(in.Likes),
		UserID:    caller.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	if err := s.users.AppendPost(ctx, caller.ID, post.ID); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post after checking that caller owns it. A missing post is
// ErrNotFound; a post deleted concurrently between the load and the delete
// surfaces the same way.
func (s *PostService) Delete(ctx context.Context, caller *domain.User, id string) error {
	if caller == nil {
		return ErrUnauthorized
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != caller.ID {
		return ErrNotOwner
	}
	return s.posts.Delete(ctx, id)
}

// Update replaces title, author, url and likes wholesale. By contract it is
// not ownership-gated: any caller may update any post.
func (s *PostService) Update(ctx context.Context, id string, in PostInput) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Author = in.Author
	post.URL = in.URL
	post.Likes = normalizeLikes(in.Likes)
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Get returns the post with the given id.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// List returns every post, each enriched with a projection of its owner.
func (s *PostService) List(ctx context.Context) ([]PostWithOwner, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*Owner)
	out := make([]PostWithOwner, 0, len(posts))
	for _, p := range posts {
		owner, seen := owners[p.UserID]
		if !seen {
			user, err := s.users.GetByID(ctx, p.UserID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			if user != nil {
				owner = &Owner{ID: user.ID, Username: user.Username, Name: user.Name}
			}
			owners[p.UserID] = owner
		}
		out = append(out, PostWithOwner{Post: p, Owner: owner})
	}
	return out, nil
}

// normalizeLikes maps absent, zero and negative like counts to 0.
func normalizeLikes(likes int) int {
	if likes < 0 {
		return 0
	}
	return likes
}
