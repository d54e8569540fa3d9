package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medcharfeddine/nutricoach/internal/handler/http/dto"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

// RequestLogger writes one access log line per request and records its
// latency. Errors attached with c.Error are logged with the line.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.ObserveHTTPRequest(c.Request.Method, route, strconv.Itoa(status), latency.Seconds())

		fields := []zap.Field{
			zap.String("request_id", RequestIDFromContext(c)),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if actor, ok := ActorFromContext(c); ok {
			fields = append(fields, zap.String("user_id", actor.UserID))
		}

		switch {
		case len(c.Errors) > 0:
			fields = append(fields, zap.String("errors", c.Errors.String()))
			log.Error("request failed", fields...)
		case status >= 500:
			log.Error("request", fields...)
		case status >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// Recovery turns panics into a logged 500.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic recovered",
			zap.String("request_id", RequestIDFromContext(c)),
			zap.Any("panic", recovered),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	})
}
