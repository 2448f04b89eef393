package adapthttp

import (
	"log/slog"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/oauth2"

	"bloglist/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	posts *app.PostService
	users *app.UserService
	auth  *app.AuthService
	oidc  OIDCConfig
	log   *slog.Logger
}

// OIDCConfig holds the optional SSO login configuration. When Enabled is
// false the SSO routes answer 404.
type OIDCConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config *oauth2.Config
}

// New creates a Server wired to the given application services.
func New(posts *app.PostService, users *app.UserService, auth *app.AuthService, oidcCfg OIDCConfig, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{posts: posts, users: users, auth: auth, oidc: oidcCfg, log: log}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("GET /blogs", s.handleListPosts)
	api.HandleFunc("GET /blogs/stats", s.handlePostStats)
	api.HandleFunc("GET /blogs/{id}", s.handleGetPost)
	api.HandleFunc("POST /blogs", s.handleCreatePost)
	api.HandleFunc("PUT /blogs/{id}", s.handleUpdatePost)
	api.HandleFunc("DELETE /blogs/{id}", s.handleDeletePost)

	api.HandleFunc("GET /users", s.handleListUsers)
	api.HandleFunc("POST /users", s.handleCreateUser)

	api.HandleFunc("POST /login", s.handleLogin)
	api.HandleFunc("GET /login/sso", s.handleSSOLogin)
	api.HandleFunc("GET /login/sso/callback", s.handleSSOCallback)

	api.HandleFunc("/", unknownEndpoint)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("GET /metrics", promhttp.Handler())
	root.HandleFunc("/", unknownEndpoint)

	var h http.Handler = root
	h = s.userExtractor(h)
	h = metricsMiddleware(h)
	h = corsMiddleware(h)
	h = s.loggingMiddleware(h)
	h = s.recoverMiddleware(h)
	return h
}

func unknownEndpoint(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{"error": "unknown endpoint"})
}
