package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("MONGODB_DB_NAME", "nutricoach_test")
	cfg := NewConfig()

	assert.Equal(t, "nutricoach_test", cfg.MongoDBName)
	assert.Equal(t, 7*24*time.Hour, cfg.GetRefreshTokenExpiry())
	assert.Equal(t, 8*time.Second, cfg.GetNotificationTimeout())
	assert.Equal(t, "ar", cfg.GetTranslationTargetLang())
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("AVAILABILITY_CACHE_TTL_SECONDS", "30")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("EMAIL_PORT", "not-a-number")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := NewConfig()

	assert.Equal(t, 30*time.Second, cfg.GetAvailabilityCacheTTL())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitPerSecond)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.False(t, cfg.MetricsEnabled)
}
