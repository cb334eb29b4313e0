package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crucial707/portfolio-api/internal/models"
)

// Claims is the token payload. The custom fields carry the identity the
// middleware exposes to handlers; iat/exp come from RegisteredClaims and
// serialize under their registered names.
type Claims struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for the user. Expiry is issued-at plus
// the configured lifetime; two tokens for the same user differ whenever
// their issue times differ.
func (g *Gateway) IssueToken(u *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", &InternalError{Err: err}
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns the decoded claims.
// It does not consult the store: a token stays valid until it expires even
// if the account changed after issuance.
func (g *Gateway) ParseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, &AuthenticationError{Msg: "Invalid or expired token.", Forbidden: true}
	}
	if !token.Valid {
		return nil, &AuthenticationError{Msg: "Invalid or expired token.", Forbidden: true}
	}
	return claims, nil
}
