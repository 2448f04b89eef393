// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"bloglist/internal/app"
	"bloglist/internal/domain"
)

type postRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

func (in postRequest) input() app.PostInput {
	return app.PostInput{Title: in.Title, Author: in.Author, URL: in.URL, Likes: in.Likes}
}

// postBody renders a post the way the original API did: the user field holds
// the bare owner id unless a projection is supplied.
func postBody(p *domain.Post) map[string]any {
	return map[string]any{
		"id":     p.ID,
		"title":  p.Title,
		"author": p.Author,
		"url":    p.URL,
		"likes":  p.Likes,
		"user":   p.UserID,
	}
}

func ownerBody(o *app.Owner) map[string]any {
	return map[string]any{"id": o.ID, "username": o.Username, "name": o.Name}
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(posts))
	for _, pw := range posts {
		body := postBody(&pw.Post)
		if pw.Owner != nil {
			body["user"] = ownerBody(pw.Owner)
		}
		items = append(items, body)
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.posts.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, postBody(post))
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var body postRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	post, err := s.posts.Create(r.Context(), userFrom(r), body.input())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, postBody(post))
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var body postRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	post, err := s.posts.Update(r.Context(), r.PathValue("id"), body.input())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, postBody(post))
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.posts.Delete(r.Context(), userFrom(r), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePostStats(w http.ResponseWriter, r *http.Request) {
	listed, err := s.posts.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	posts := make([]domain.Post, 0, len(listed))
	for _, pw := range listed {
		posts = append(posts, pw.Post)
	}

	body := map[string]any{
		"totalLikes": app.TotalLikes(posts),
		"favorite":   nil,
		"mostBlogs":  nil,
		"mostLikes":  nil,
	}
	if favorite := app.FavoritePost(posts); favorite != nil {
		body["favorite"] = postBody(favorite)
	}
	if most, ok := app.MostPosts(posts); ok {
		body["mostBlogs"] = map[string]any{"author": most.Author, "blogs": most.Count}
	}
	if most, ok := app.MostLikes(posts); ok {
		body["mostLikes"] = map[string]any{"author": most.Author, "likes": most.Count}
	}
	writeJSON(w, http.StatusOK, body)
}
