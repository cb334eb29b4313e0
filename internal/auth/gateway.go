package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/crucial707/portfolio-api/internal/models"
	"github.com/crucial707/portfolio-api/internal/store"
)

// Defaults for the one-time admin bootstrap when the request omits fields.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
	DefaultAdminName     = "Admin User"
)

// ==========================
// Gateway
// ==========================
// Gateway owns the identity lifecycle: password hashing, token issuance
// and verification, and the credential checks behind the auth endpoints.
type Gateway struct {
	store    *store.UserStore
	secret   []byte
	tokenTTL time.Duration
}

// Credentials echoes the plaintext bootstrap credentials back to the
// operator. Only BootstrapAdmin ever returns these.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ==========================
// Constructor
// ==========================
func NewGateway(s *store.UserStore, secret []byte, tokenTTL time.Duration) *Gateway {
	return &Gateway{store: s, secret: secret, tokenTTL: tokenTTL}
}

// ==========================
// Register
// ==========================
// Register creates a user with role "user" and returns a fresh token with
// the public view. The exists-check and the insert are separate store
// calls, so two concurrent registrations for the same email can race past
// the check; the store itself stays consistent either way. Documented
// behavior, kept as-is.
func (g *Gateway) Register(email, password, name string) (string, models.PublicUser, error) {
	if email == "" || password == "" || name == "" {
		return "", models.PublicUser{}, &ValidationError{Msg: "Email, password, and name are required"}
	}

	if _, exists := g.store.FindByEmail(email); exists {
		return "", models.PublicUser{}, &ConflictError{Msg: "User with this email already exists"}
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", models.PublicUser{}, &InternalError{Err: err}
	}

	user := g.store.Insert(email, hash, name, models.RoleUser)

	token, err := g.IssueToken(user)
	if err != nil {
		return "", models.PublicUser{}, err
	}
	return token, user.Public(), nil
}

// ==========================
// Login
// ==========================
// Login verifies credentials and issues a new token. Unknown email and
// wrong password return the identical error so responses cannot be used
// to probe which emails are registered.
func (g *Gateway) Login(email, password string) (string, models.PublicUser, error) {
	if email == "" || password == "" {
		return "", models.PublicUser{}, &ValidationError{Msg: "Email and password are required"}
	}

	user, ok := g.store.FindByEmail(email)
	if !ok {
		return "", models.PublicUser{}, &AuthenticationError{Msg: "Invalid email or password"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.PublicUser{}, &AuthenticationError{Msg: "Invalid email or password"}
	}

	token, err := g.IssueToken(user)
	if err != nil {
		return "", models.PublicUser{}, err
	}
	return token, user.Public(), nil
}

// ==========================
// Bootstrap Admin
// ==========================
// BootstrapAdmin seeds the first account with role "admin". It only works
// while the store is empty, so it is usable exactly once per process.
// Empty fields fall back to the default dev credentials, and the plaintext
// credentials are echoed back for the operator.
func (g *Gateway) BootstrapAdmin(email, password, name string) (string, models.PublicUser, Credentials, error) {
	if g.store.Count() > 0 {
		return "", models.PublicUser{}, Credentials{}, &ConflictError{Msg: "Users already exist. Cannot initialize admin."}
	}

	if email == "" {
		email = DefaultAdminEmail
	}
	if password == "" {
		password = DefaultAdminPassword
	}
	if name == "" {
		name = DefaultAdminName
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", models.PublicUser{}, Credentials{}, &InternalError{Err: err}
	}

	// The store is empty here, so the assigned ID is 1.
	user := g.store.Insert(email, hash, name, models.RoleAdmin)

	token, err := g.IssueToken(user)
	if err != nil {
		return "", models.PublicUser{}, Credentials{}, err
	}
	return token, user.Public(), Credentials{Email: email, Password: password}, nil
}

// ==========================
// Who Am I
// ==========================
// WhoAmI resolves token claims back to the stored user. The store can
// have lost the record (process restart) while the token is still valid.
func (g *Gateway) WhoAmI(claims *Claims) (models.PublicUser, error) {
	user, ok := g.store.FindByID(claims.UserID)
	if !ok {
		return models.PublicUser{}, &NotFoundError{Msg: "User not found"}
	}
	return user.Public(), nil
}

// hashPassword hashes with bcrypt at the default cost (10). Each call
// salts independently, so equal passwords produce distinct hashes.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
