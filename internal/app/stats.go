package app

import "bloglist/internal/domain"

// Aggregate statistics over the post collection.

// AuthorStat pairs an author display string with an aggregate count.
type AuthorStat struct {
	Author string
	Count  int
}

// TotalLikes sums the like counts of all posts.
func TotalLikes(posts []domain.Post) int {
	total := 0
	for _, p := range posts {
		total += p.Likes
	}
	return total
}

// FavoritePost returns the post with the most likes, or nil for an empty
// slice. Ties go to the earliest post.
func FavoritePost(posts []domain.Post) *domain.Post {
	var favorite *domain.Post
	for i := range posts {
		if favorite == nil || posts[i].Likes > favorite.Likes {
			favorite = &posts[i]
		}
	}
	return favorite
}

// MostPosts returns the author with the most posts and how many they wrote.
// The second return is false for an empty slice.
func MostPosts(posts []domain.Post) (AuthorStat, bool) {
	return topAuthor(posts, func(domain.Post) int { return 1 })
}

// MostLikes returns the author whose posts accumulate the most likes.
// The second return is false for an empty slice.
func MostLikes(posts []domain.Post) (AuthorStat, bool) {
	return topAuthor(posts, func(p domain.Post) int { return p.Likes })
}

func topAuthor(posts []domain.Post, weight func(domain.Post) int) (AuthorStat, bool) {
	if len(posts) == 0 {
		return AuthorStat{}, false
	}

	counts := make(map[string]int)
	best := AuthorStat{Author: posts[0].Author}
	for _, p := range posts {
		counts[p.Author] += weight(p)
		if counts[p.Author] > best.Count {
			best = AuthorStat{Author: p.Author, Count: counts[p.Author]}
		}
	}
	return best, true
}
