package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_SECRET", "JWT_EXPIRE_HOURS", "ENV", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "3001" {
		t.Errorf("Port: got %q, want 3001", cfg.Port)
	}
	if cfg.JWTExpireHours != 168 {
		t.Errorf("JWTExpireHours: got %d, want 168", cfg.JWTExpireHours)
	}
	if cfg.JWTSecret != DefaultJWTSecret {
		t.Errorf("JWTSecret: got %q", cfg.JWTSecret)
	}
	if cfg.IsProd() {
		t.Error("default Env should not be prod")
	}
}

func TestLoad_ProdRefusesDefaultSecret(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("Load with ENV=prod and default secret: want error")
	}

	t.Setenv("JWT_SECRET", "an-actual-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.IsProd() {
		t.Error("IsProd: want true")
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, http://localhost:3000 ,")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"https://app.example.com", "http://localhost:3000"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("origins: got %v, want %v", cfg.CORSAllowedOrigins, want)
	}
	for i := range want {
		if cfg.CORSAllowedOrigins[i] != want[i] {
			t.Errorf("origin %d: got %q, want %q", i, cfg.CORSAllowedOrigins[i], want[i])
		}
	}
}
