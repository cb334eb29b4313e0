package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultAPIURL = "http://localhost:3001"

// APIURL returns the base URL for the Portfolio API.
// It can be overridden with the PORTFOLIO_API_URL environment variable.
func APIURL() string {
	if v := os.Getenv("PORTFOLIO_API_URL"); v != "" {
		return v
	}
	return defaultAPIURL
}

func tokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "portfolio-api", "token"), nil
}

// SaveToken stores the JWT for subsequent CLI commands. The file is
// user-readable only; the token grants full access until it expires.
func SaveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

// LoadToken returns the stored JWT, or an error when none is saved.
func LoadToken() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("not logged in; run 'pfa auth login' first")
		}
		return "", err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("not logged in; run 'pfa auth login' first")
	}
	return token, nil
}

// ClearToken removes the stored JWT. Missing file is not an error.
func ClearToken() error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
