package adapthttp

import (
	"errors"
	"net/http"

	"bloglist/internal/app"
	"bloglist/internal/domain"
)

// writeServiceError maps application errors onto the HTTP surface. An
// ownership mismatch answers 401 rather than 403, matching the original API.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *app.ValidationError
	switch {
	case errors.Is(err, app.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "token missing or invalid"})
	case errors.Is(err, app.ErrNotOwner):
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized to delete the blog"})
	case errors.Is(err, app.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "invalid username or password"})
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": vErr.Message})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
	}
}
