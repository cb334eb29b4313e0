package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crucial707/portfolio-api/internal/auth"
	"github.com/crucial707/portfolio-api/internal/config"
	"github.com/crucial707/portfolio-api/internal/handlers"
	"github.com/crucial707/portfolio-api/internal/middleware"
	"github.com/crucial707/portfolio-api/internal/portfolio"
)

// newRouter builds the full API router. Tests use it to stand up the
// complete middleware chain against an in-memory store.
func newRouter(gateway *auth.Gateway, data *portfolio.Data, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.Prometheus)
	r.Use(middleware.MaxBytes(cfg.MaxBodyBytes))

	authHandler := &handlers.AuthHandler{
		Gateway:        gateway,
		AllowInitAdmin: !cfg.IsProd(),
	}
	portfolioHandler := &handlers.PortfolioHandler{Data: data}

	r.Get("/", handlers.Root)
	r.Get("/api/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/init-admin", authHandler.InitAdmin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(gateway))
		r.Get("/api/auth/me", authHandler.Me)
		r.Post("/api/auth/verify", authHandler.Verify)
	})

	r.Get("/api/portfolio", portfolioHandler.All)
	r.Get("/api/portfolio/profile", portfolioHandler.Profile)
	r.Get("/api/portfolio/skills", portfolioHandler.Skills)
	r.Get("/api/portfolio/projects", portfolioHandler.Projects)
	r.Get("/api/portfolio/projects/{id}", portfolioHandler.ProjectByID)
	r.Get("/api/portfolio/social", portfolioHandler.Social)
	r.Get("/api/preferences", portfolioHandler.Preferences)

	return r
}
