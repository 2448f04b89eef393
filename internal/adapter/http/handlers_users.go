package adapthttp

import "net/http"

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(users))
	for _, uw := range users {
		blogs := make([]map[string]any, 0, len(uw.Posts))
		for i := range uw.Posts {
			blogs = append(blogs, postBody(&uw.Posts[i]))
		}
		items = append(items, map[string]any{
			"id":       uw.User.ID,
			"username": uw.User.Username,
			"name":     uw.User.Name,
			"blogs":    blogs,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := s.auth.Register(r.Context(), body.Username, body.Name, body.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":       user.ID,
		"username": user.Username,
		"name":     user.Name,
		"blogs":    []any{},
	})
}
