package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/crucial707/portfolio-api/internal/auth"
	"github.com/crucial707/portfolio-api/internal/metrics"
	"github.com/crucial707/portfolio-api/internal/middleware"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Gateway *auth.Gateway

	// AllowInitAdmin enables the one-time admin bootstrap endpoint. Off in prod:
	// the endpoint echoes plaintext credentials and exists for dev setups only.
	AllowInitAdmin bool
}

// ==========================
// Register
// ==========================
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusBadRequest)
		return
	}

	token, user, err := h.Gateway.Register(input.Email, input.Password, input.Name)
	if err != nil {
		metrics.IncRegistrations(registerOutcome(err))
		writeGatewayError(w, "Register", err)
		return
	}

	metrics.IncRegistrations("success")
	JSON(w, map[string]interface{}{
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	}, http.StatusCreated)
}

// ==========================
// Login
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusBadRequest)
		return
	}

	token, user, err := h.Gateway.Login(input.Email, input.Password)
	if err != nil {
		metrics.IncLogins(loginOutcome(err))
		writeGatewayError(w, "Login", err)
		return
	}

	metrics.IncLogins("success")
	JSON(w, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	}, http.StatusOK)
}

// ==========================
// Me (current user)
// ==========================
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		// Route is registered behind RequireAuth; reaching here without
		// claims is a wiring bug.
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	user, err := h.Gateway.WhoAmI(claims)
	if err != nil {
		writeGatewayError(w, "Me", err)
		return
	}

	JSON(w, user, http.StatusOK)
}

// ==========================
// Verify token
// ==========================
// Verify echoes the decoded claims; the gate already proved them valid.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSON(w, map[string]interface{}{
		"valid": true,
		"user":  claims,
	}, http.StatusOK)
}

// ==========================
// Init Admin (one-time bootstrap)
// ==========================
func (h *AuthHandler) InitAdmin(w http.ResponseWriter, r *http.Request) {
	if !h.AllowInitAdmin {
		JSONError(w, "Admin initialization is disabled", http.StatusForbidden)
		return
	}

	// All fields are optional; an empty body means all defaults.
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		JSONError(w, "invalid json", http.StatusBadRequest)
		return
	}

	token, user, creds, err := h.Gateway.BootstrapAdmin(input.Email, input.Password, input.Name)
	if err != nil {
		writeGatewayError(w, "InitAdmin", err)
		return
	}

	JSON(w, map[string]interface{}{
		"message":     "Admin user initialized successfully",
		"token":       token,
		"user":        user,
		"credentials": creds,
	}, http.StatusCreated)
}

// writeGatewayError maps a gateway error to its HTTP response. Internal
// causes are logged but never sent to the client.
func writeGatewayError(w http.ResponseWriter, op string, err error) {
	status := auth.StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.Error("auth operation failed", "op", op, "error", err, "cause", errors.Unwrap(err))
		JSONError(w, ErrMessageInternal, status)
		return
	}
	JSONError(w, err.Error(), status)
}

func registerOutcome(err error) string {
	var conflictErr *auth.ConflictError
	var validationErr *auth.ValidationError
	switch {
	case errors.As(err, &conflictErr):
		return "conflict"
	case errors.As(err, &validationErr):
		return "invalid_input"
	default:
		return "error"
	}
}

func loginOutcome(err error) string {
	var authErr *auth.AuthenticationError
	var validationErr *auth.ValidationError
	switch {
	case errors.As(err, &authErr):
		return "invalid_credentials"
	case errors.As(err, &validationErr):
		return "invalid_input"
	default:
		return "error"
	}
}
