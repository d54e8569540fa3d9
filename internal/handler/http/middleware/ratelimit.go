package middleware

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-gonic/gin"
)

// NewLimiter builds a per-client limiter allowing max requests per second.
func NewLimiter(max float64) *limiter.Limiter {
	lmt := tollbooth.NewLimiter(max, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage(`{"error":"Too many requests, please try again later."}`)
	lmt.SetMessageContentType("application/json; charset=utf-8")
	return lmt
}

func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return tollbooth_gin.LimitHandler(lmt)
}
