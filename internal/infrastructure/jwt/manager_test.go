package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smart-agroconnect/api/internal/domain/entity"
	"github.com/smart-agroconnect/api/internal/infrastructure/jwt"
)

func TestGenerateAndVerify(t *testing.T) {
	mgr := jwt.NewJWTManager("test-secret", time.Hour)

	token, err := mgr.Generate("user-1", "farmer")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "farmer", claims.Role)
}

func TestVerify_Expired(t *testing.T) {
	mgr := jwt.NewJWTManager("test-secret", -time.Minute)

	token, err := mgr.Generate("user-1", "farmer")
	assert.NoError(t, err)

	_, err = mgr.Verify(token)
	assert.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	mgr := jwt.NewJWTManager("test-secret", time.Hour)
	other := jwt.NewJWTManager("other-secret", time.Hour)

	token, err := mgr.Generate("user-1", "farmer")
	assert.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	mgr := jwt.NewJWTManager("test-secret", time.Hour)

	_, err := mgr.Verify("not-a-token")
	assert.Error(t, err)
}

func TestServiceAdapter(t *testing.T) {
	mgr := jwt.NewJWTManager("test-secret", time.Hour)
	svc := jwt.NewJWTService(mgr)

	token, err := svc.GenerateToken("user-1", entity.UserRoleHelper)
	assert.NoError(t, err)

	claims, err := svc.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entity.UserRoleHelper, claims.Role)
}
