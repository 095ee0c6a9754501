package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/smart-agroconnect/api/internal/domain/apperror"
	"github.com/smart-agroconnect/api/internal/domain/entity"
	"github.com/smart-agroconnect/api/internal/handler/http/dto"
	usecasecontract "github.com/smart-agroconnect/api/internal/usecase/contract"
)

// AuthMiddleWare validates the bearer token and confirms the account still
// exists before letting the request through. On success it stores userID and
// userRole in the request context.
func AuthMiddleWare(userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token"})
			return
		}

		user, err := userUsecase.Authenticate(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, apperror.ErrAuth) {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, dto.ErrorResponse{Message: err.Error()})
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", string(user.Role))
		c.Next()
	}
}

// AdminOnly rejects requests whose authenticated role is not admin. It must
// run after AuthMiddleWare.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists || role.(string) != string(entity.UserRoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Not authorized as an admin"})
			return
		}
		c.Next()
	}
}
