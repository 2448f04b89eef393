package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	adapthttp "bloglist/internal/adapter/http"
	"bloglist/internal/adapter/postgres"
	"bloglist/internal/adapter/sqlite"
	"bloglist/internal/app"
	"bloglist/internal/domain"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	addr := env("ADDR", ":8080")
	secret := os.Getenv("SECRET")
	if secret == "" {
		log.Error("SECRET is required")
		os.Exit(1)
	}

	var (
		users domain.UserRepository
		posts domain.PostRepository
	)
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Error("db open", "error", err)
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()
		users = postgres.NewUserRepo(db)
		posts = postgres.NewPostRepo(db)
	} else {
		path := env("DATABASE_PATH", "bloglist.db")
		db, err := sqlite.Open(path)
		if err != nil {
			log.Error("db open", "path", path, "error", err)
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()
		users = sqlite.NewUserRepo(db)
		posts = sqlite.NewPostRepo(db)
	}

	tokens := app.NewTokenService([]byte(secret))
	authSvc := app.NewAuthService(users, tokens)
	postSvc := app.NewPostService(posts, users)
	userSvc := app.NewUserService(users, posts)

	oidcCfg := loadOIDC(context.Background(), log)

	h := adapthttp.New(postSvc, userSvc, authSvc, oidcCfg, log).Handler()
	log.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server", "error", err)
		os.Exit(1)
	}
}

// loadOIDC reads the optional SSO configuration. SSO stays disabled unless
// OIDC_ISSUER is set.
func loadOIDC(ctx context.Context, log *slog.Logger) adapthttp.OIDCConfig {
	issuer := os.Getenv("OIDC_ISSUER")
	if issuer == "" {
		return adapthttp.OIDCConfig{}
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		log.Error("oidc provider", "issuer", issuer, "error", err)
		os.Exit(1)
	}

	return adapthttp.OIDCConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
