package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/dto"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/middleware"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
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

// BindQuery binds and validates query parameters.
func BindQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// StatusFor maps an application error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes err with its mapped status. Unexpected errors are
// attached to the context for the access log and answered generically.
func HandleError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	ErrorHandler(c, status, apperror.PublicMessage(err))
}

// currentActor writes a 401 and returns false when the request is anonymous.
func currentActor(c *gin.Context) (entity.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
	}
	return actor, ok
}
