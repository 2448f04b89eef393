package adapthttp

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	token, user, err := s.auth.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":    token,
		"username": user.Username,
		"name":     user.Name,
	})
}

func (s *Server) handleSSOLogin(w http.ResponseWriter, r *http.Request) {
	if !s.oidc.Enabled {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "sso disabled"})
		return
	}

	state := generateState()
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode, // Lax required for cross-site redirect returns
		MaxAge:   300,
	})
	http.Redirect(w, r, s.oidc.OAuth2Config.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) handleSSOCallback(w http.ResponseWriter, r *http.Request) {
	if !s.oidc.Enabled {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "sso disabled"})
		return
	}

	state, err := r.Cookie("oauth_state")
	if err != nil || r.URL.Query().Get("state") != state.Value {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid state"})
		return
	}
	http.SetCookie(w, &http.Cookie{Name: "oauth_state", MaxAge: -1, Path: "/"})

	oauthToken, err := s.oidc.OAuth2Config.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to exchange token"})
		return
	}

	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "no id_token"})
		return
	}

	idToken, err := s.oidc.Provider.Verifier(&oidc.Config{ClientID: s.oidc.OAuth2Config.ClientID}).Verify(r.Context(), rawIDToken)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to verify token"})
		return
	}

	var claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Sub   string `json:"sub"`
	}
	if err = idToken.Claims(&claims); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to parse claims"})
		return
	}

	username := claims.Email
	if username == "" {
		username = claims.Sub
	}

	token, user, err := s.auth.LoginWithUser(r.Context(), username, claims.Name)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "login failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":    token,
		"username": user.Username,
		"name":     user.Name,
	})
}

func generateState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
