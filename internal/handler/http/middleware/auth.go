package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/dto"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
)

const actorKey = "actor"

// AuthMiddleWare resolves the bearer token into an entity.Actor stored on the
// gin context. Requests without a valid token are rejected with 401.
func AuthMiddleWare(userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization header required"})
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization header must be a bearer token"})
			return
		}

		user, err := userUsecase.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			if apperror.IsInternal(err) {
				_ = c.Error(err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: apperror.PublicMessage(err)})
				return
			}
			status := http.StatusUnauthorized
			if errors.Is(err, apperror.ErrForbidden) {
				status = http.StatusForbidden
			}
			c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: apperror.PublicMessage(err)})
			return
		}

		SetActor(c, entity.Actor{
			UserID: user.ID,
			Role:   user.Role,
			Email:  user.Email,
			Name:   user.Name,
		})
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleWare.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
			return
		}
		if !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "admin access required"})
			return
		}
		c.Next()
	}
}

func SetActor(c *gin.Context, actor entity.Actor) {
	c.Set(actorKey, actor)
}

func ActorFromContext(c *gin.Context) (entity.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return entity.Actor{}, false
	}
	actor, ok := v.(entity.Actor)
	return actor, ok
}
