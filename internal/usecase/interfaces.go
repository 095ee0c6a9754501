package usecase

import (
	"github.com/smart-agroconnect/api/internal/domain/entity"
)

// JWTService defines the interface for bearer token operations.
type JWTService interface {
	GenerateToken(userID string, role entity.UserRole) (string, error)
	ParseToken(token string) (*entity.Claims, error)
}
