package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-agroconnect/api/internal/domain/apperror"
	"github.com/smart-agroconnect/api/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Message: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// RespondError maps a usecase error to its HTTP status and writes it.
func RespondError(c *gin.Context, err error) {
	ErrorHandler(c, statusFromError(err), err.Error())
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrDuplicate):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, apperror.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
