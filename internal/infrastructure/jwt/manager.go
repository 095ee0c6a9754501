package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims are the raw claims carried by an issued token.
type CustomClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 bearer tokens. The signing key comes
// from process configuration and must never default.
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

// NewJWTManager creates a manager issuing tokens valid for expiry.
func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), expiry: expiry}
}

// Generate issues a signed token binding the user id and role.
func (m *JWTManager) Generate(userID, role string) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the claims.
func (m *JWTManager) Verify(tokenStr string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
