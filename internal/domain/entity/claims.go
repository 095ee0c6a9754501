package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the verified contents of an access token.
type Claims struct {
	UserID string   `json:"uid"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
