package jwt

import (
	"github.com/smart-agroconnect/api/internal/domain/entity"
	"github.com/smart-agroconnect/api/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

// GenerateToken issues a bearer token for a user.
func (a *JWTServiceAdapter) GenerateToken(userID string, role entity.UserRole) (string, error) {
	return a.mgr.Generate(userID, string(role))
}

// ParseToken validates a bearer token and returns Claims.
func (a *JWTServiceAdapter) ParseToken(tokenStr string) (*entity.Claims, error) {
	customClaims, err := a.mgr.Verify(tokenStr)
	if err != nil {
		return nil, err
	}
	return &entity.Claims{
		UserID:           customClaims.Subject,
		Role:             entity.UserRole(customClaims.Role),
		RegisteredClaims: customClaims.RegisteredClaims,
	}, nil
}
