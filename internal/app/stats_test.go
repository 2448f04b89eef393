package app

import (
	"testing"

	"bloglist/internal/domain"
)

var statsPosts = []domain.Post{
	{ID: "1", Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{ID: "2", Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
	{ID: "3", Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
	{ID: "4", Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.html", Likes: 10},
	{ID: "5", Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
	{ID: "6", Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
}

func TestTotalLikes(t *testing.T) {
	if got := TotalLikes(nil); got != 0 {
		t.Errorf("empty list: expected 0, got %d", got)
	}
	if got := TotalLikes(statsPosts[:1]); got != 7 {
		t.Errorf("single post: expected 7, got %d", got)
	}
	if got := TotalLikes(statsPosts); got != 36 {
		t.Errorf("expected 36, got %d", got)
	}
}

func TestFavoritePost(t *testing.T) {
	if got := FavoritePost(nil); got != nil {
		t.Errorf("empty list: expected nil, got %+v", got)
	}

	favorite := FavoritePost(statsPosts)
	if favorite == nil {
		t.Fatal("expected a favorite post")
	}
	if favorite.Title != "Canonical string reduction" || favorite.Likes != 12 {
		t.Errorf("expected Canonical string reduction with 12 likes, got %q with %d", favorite.Title, favorite.Likes)
	}
}

func TestMostPosts(t *testing.T) {
	if _, ok := MostPosts(nil); ok {
		t.Error("empty list: expected ok=false")
	}

	most, ok := MostPosts(statsPosts)
	if !ok {
		t.Fatal("expected a result")
	}
	if most.Author != "Robert C. Martin" || most.Count != 3 {
		t.Errorf("expected Robert C. Martin with 3 posts, got %q with %d", most.Author, most.Count)
	}
}

func TestMostLikes(t *testing.T) {
	if _, ok := MostLikes(nil); ok {
		t.Error("empty list: expected ok=false")
	}

	most, ok := MostLikes(statsPosts)
	if !ok {
		t.Fatal("expected a result")
	}
	if most.Author != "Edsger W. Dijkstra" || most.Count != 17 {
		t.Errorf("expected Edsger W. Dijkstra with 17 likes, got %q with %d", most.Author, most.Count)
	}
}
