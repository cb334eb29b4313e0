package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/crucial707/portfolio-api/internal/auth"
	"github.com/crucial707/portfolio-api/internal/config"
	"github.com/crucial707/portfolio-api/internal/portfolio"
	"github.com/crucial707/portfolio-api/internal/store"
)

func main() {

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogger(cfg.LogFormat)

	if cfg.JWTSecret == config.DefaultJWTSecret {
		slog.Warn("running with the default JWT secret; set JWT_SECRET before exposing this service")
	}

	// The store lives for the life of the process. Nothing is persisted:
	// restarting the server drops every registered user.
	userStore := store.NewUserStore()
	gateway := auth.NewGateway(userStore, []byte(cfg.JWTSecret), time.Duration(cfg.JWTExpireHours)*time.Hour)

	r := newRouter(gateway, portfolio.Default(), cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server LAST
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		slog.Info("starting server with TLS", "port", cfg.Port)
		err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
	} else {
		slog.Info("starting server", "port", cfg.Port)
		err = srv.ListenAndServe()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func setupLogger(format string) {
	if format == "json" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}
}
