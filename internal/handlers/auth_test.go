package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crucial707/portfolio-api/internal/auth"
	"github.com/crucial707/portfolio-api/internal/middleware"
	"github.com/crucial707/portfolio-api/internal/store"
)

func newAuthHandler() *AuthHandler {
	g := auth.NewGateway(store.NewUserStore(), []byte("test-secret"), time.Hour)
	return &AuthHandler{Gateway: g, AllowInitAdmin: true}
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestAuthHandler_Register(t *testing.T) {
	h := newAuthHandler()

	rr := postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"email": "ann@example.com", "password": "pw123", "name": "Ann",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("Register status: got %d, want 201", rr.Code)
	}
	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Message != "User registered successfully" || out.Token == "" {
		t.Errorf("unexpected response: %+v", out)
	}
	if out.User.ID != 1 || out.User.Email != "ann@example.com" || out.User.Name != "Ann" || out.User.Role != "user" {
		t.Errorf("unexpected user: %+v", out.User)
	}
	// The hash must never appear in a response body.
	if bytes.Contains(rr.Body.Bytes(), []byte("password")) {
		t.Errorf("response leaks a password field: %s", rr.Body.String())
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	h := newAuthHandler()

	rr := postJSON(t, h.Register, "/api/auth/register", map[string]string{"email": "ann@example.com"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}
	var out ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Error != "Email, password, and name are required" {
		t.Errorf("unexpected error: %q", out.Error)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := newAuthHandler()
	creds := map[string]string{"email": "ann@example.com", "password": "pw123", "name": "Ann"}

	if rr := postJSON(t, h.Register, "/api/auth/register", creds); rr.Code != http.StatusCreated {
		t.Fatalf("first register: got %d, want 201", rr.Code)
	}
	rr := postJSON(t, h.Register, "/api/auth/register", creds)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("second register: got %d, want 400", rr.Code)
	}
	var out ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Error != "User with this email already exists" {
		t.Errorf("unexpected error: %q", out.Error)
	}
}

func TestAuthHandler_Register_BadJSON(t *testing.T) {
	h := newAuthHandler()

	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte("not json")))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := newAuthHandler()
	postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"email": "ann@example.com", "password": "pw123", "name": "Ann",
	})

	rr := postJSON(t, h.Login, "/api/auth/login", map[string]string{
		"email": "ann@example.com", "password": "pw123",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Login status: got %d, want 200", rr.Code)
	}
	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Message != "Login successful" || out.Token == "" {
		t.Errorf("unexpected response: %+v", out)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := newAuthHandler()
	postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"email": "ann@example.com", "password": "pw123", "name": "Ann",
	})

	// Unknown email and wrong password: same status, same body.
	attempts := []map[string]string{
		{"email": "nobody@example.com", "password": "pw123"},
		{"email": "ann@example.com", "password": "wrong"},
	}
	var bodies []string
	for _, a := range attempts {
		rr := postJSON(t, h.Login, "/api/auth/login", a)
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("login %v: got %d, want 401", a, rr.Code)
		}
		bodies = append(bodies, rr.Body.String())
	}
	if bodies[0] != bodies[1] {
		t.Errorf("credential failures distinguishable: %q vs %q", bodies[0], bodies[1])
	}
	var out ErrorResponse
	if err := json.Unmarshal([]byte(bodies[0]), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Error != "Invalid email or password" {
		t.Errorf("unexpected error: %q", out.Error)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := newAuthHandler()

	rr := postJSON(t, h.Login, "/api/auth/login", map[string]string{"email": "ann@example.com"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}
	var out ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Error != "Email and password are required" {
		t.Errorf("unexpected error: %q", out.Error)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := newAuthHandler()
	rr := postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"email": "ann@example.com", "password": "pw123", "name": "Ann",
	})
	var reg struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&reg); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	protected := middleware.RequireAuth(h.Gateway)(http.HandlerFunc(h.Me))
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+reg.Token)
	mr := httptest.NewRecorder()
	protected.ServeHTTP(mr, req)

	if mr.Code != http.StatusOK {
		t.Fatalf("Me status: got %d, want 200", mr.Code)
	}
	var user struct {
		ID    int    `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	}
	if err := json.NewDecoder(mr.Body).Decode(&user); err != nil {
		t.Fatalf("decode me response: %v", err)
	}
	if user.ID != 1 || user.Email != "ann@example.com" || user.Name != "Ann" || user.Role != "user" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestAuthHandler_Me_UserGone(t *testing.T) {
	h := newAuthHandler()
	rr := postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"email": "ann@example.com", "password": "pw123", "name": "Ann",
	})
	var reg struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&reg); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	// Fresh gateway with the same secret but an empty store: the token
	// still verifies, the lookup 404s.
	fresh := &AuthHandler{Gateway: auth.NewGateway(store.NewUserStore(), []byte("test-secret"), time.Hour)}
	protected := middleware.RequireAuth(fresh.Gateway)(http.HandlerFunc(fresh.Me))
	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+reg.Token)
	mr := httptest.NewRecorder()
	protected.ServeHTTP(mr, req)

	if mr.Code != http.StatusNotFound {
		t.Fatalf("Me status: got %d, want 404", mr.Code)
	}
	var out ErrorResponse
	if err := json.NewDecoder(mr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Error != "User not found" {
		t.Errorf("unexpected error: %q", out.Error)
	}
}

func TestAuthHandler_Verify(t *testing.T) {
	h := newAuthHandler()
	rr := postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"email": "ann@example.com", "password": "pw123", "name": "Ann",
	})
	var reg struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&reg); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	protected := middleware.RequireAuth(h.Gateway)(http.HandlerFunc(h.Verify))
	req := httptest.NewRequest("POST", "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+reg.Token)
	vr := httptest.NewRecorder()
	protected.ServeHTTP(vr, req)

	if vr.Code != http.StatusOK {
		t.Fatalf("Verify status: got %d, want 200", vr.Code)
	}
	var out struct {
		Valid bool `json:"valid"`
		User  struct {
			UserID int    `json:"userId"`
			Email  string `json:"email"`
			Role   string `json:"role"`
			Iat    int64  `json:"iat"`
			Exp    int64  `json:"exp"`
		} `json:"user"`
	}
	if err := json.NewDecoder(vr.Body).Decode(&out); err != nil {
		t.Fatalf("decode verify response: %v", err)
	}
	if !out.Valid {
		t.Error("valid: got false")
	}
	if out.User.UserID != 1 || out.User.Email != "ann@example.com" || out.User.Role != "user" {
		t.Errorf("unexpected claims: %+v", out.User)
	}
	if out.User.Iat == 0 || out.User.Exp == 0 {
		t.Errorf("claims missing iat/exp: %+v", out.User)
	}
}

func TestAuthHandler_InitAdmin(t *testing.T) {
	h := newAuthHandler()

	rr := postJSON(t, h.InitAdmin, "/api/auth/init-admin", map[string]string{})
	if rr.Code != http.StatusCreated {
		t.Fatalf("InitAdmin status: got %d, want 201", rr.Code)
	}
	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			ID   int    `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
		Credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"credentials"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Message != "Admin user initialized successfully" || out.Token == "" {
		t.Errorf("unexpected response: %+v", out)
	}
	if out.User.ID != 1 || out.User.Role != "admin" {
		t.Errorf("unexpected user: %+v", out.User)
	}
	if out.Credentials.Email != auth.DefaultAdminEmail || out.Credentials.Password != auth.DefaultAdminPassword {
		t.Errorf("unexpected credentials: %+v", out.Credentials)
	}

	// Second call conflicts.
	rr = postJSON(t, h.InitAdmin, "/api/auth/init-admin", map[string]string{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("second InitAdmin: got %d, want 400", rr.Code)
	}
	var errOut ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errOut); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if errOut.Error != "Users already exist. Cannot initialize admin." {
		t.Errorf("unexpected error: %q", errOut.Error)
	}
}

func TestAuthHandler_InitAdmin_EmptyBody(t *testing.T) {
	h := newAuthHandler()

	req := httptest.NewRequest("POST", "/api/auth/init-admin", nil)
	rr := httptest.NewRecorder()
	h.InitAdmin(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("InitAdmin with empty body: got %d, want 201", rr.Code)
	}
}

func TestAuthHandler_InitAdmin_Disabled(t *testing.T) {
	h := newAuthHandler()
	h.AllowInitAdmin = false

	rr := postJSON(t, h.InitAdmin, "/api/auth/init-admin", map[string]string{})
	if rr.Code != http.StatusForbidden {
		t.Errorf("disabled InitAdmin: got %d, want 403", rr.Code)
	}
}
