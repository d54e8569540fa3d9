package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	Env      string
	Port     string
	LogLevel string

	AppBaseURL string

	MongoURI     string
	MongoDBName  string
	MongoTimeout time.Duration

	RedisURL string

	JWTSecret          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	GoogleClientID     string
	GoogleClientSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	TranslationURL        string
	TranslationAPIKey     string
	TranslationSourceLang string
	TranslationTargetLang string
	TranslationTimeout    time.Duration

	CORSAllowedOrigins []string
	RateLimitPerSecond float64
	MetricsEnabled     bool

	AvailabilityCacheTTL time.Duration
	ContentCacheTTL      time.Duration
	NotificationTimeout  time.Duration
	ShutdownTimeout      time.Duration
}

// Load reads .env when present and builds the configuration from the environment.
// It reports whether a .env file was loaded.
func Load() (*Config, bool) {
	loaded := godotenv.Load() == nil
	return NewConfig(), loaded
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Env:      getEnv("APP_ENV", "development"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:8080"),

		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName:  getEnv("MONGODB_DB_NAME", "nutricoach"),
		MongoTimeout: time.Second * time.Duration(getEnvAsInt("MONGODB_TIMEOUT_SECONDS", 10)),

		RedisURL: getEnv("REDIS_URL", ""),

		JWTSecret:          getEnv("JWT_SECRET", ""),
		AccessTokenExpiry:  time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 15)),
		RefreshTokenExpiry: time.Hour * time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 168)), // 7 days

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),

		SMTPHost:     getEnv("EMAIL_HOST", ""),
		SMTPPort:     getEnvAsInt("EMAIL_PORT", 587),
		SMTPUsername: getEnv("EMAIL_USERNAME", ""),
		SMTPPassword: getEnv("EMAIL_APP_PASSWORD", ""),
		SMTPFrom:     getEnv("EMAIL_FROM", "no-reply@nutricoach.local"),

		TranslationURL:        getEnv("TRANSLATION_API_URL", ""),
		TranslationAPIKey:     getEnv("TRANSLATION_API_KEY", ""),
		TranslationSourceLang: getEnv("TRANSLATION_SOURCE_LANG", "en"),
		TranslationTargetLang: getEnv("TRANSLATION_TARGET_LANG", "ar"),
		TranslationTimeout:    time.Second * time.Duration(getEnvAsInt("TRANSLATION_TIMEOUT_SECONDS", 5)),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		MetricsEnabled:     getEnvAsBool("METRICS_ENABLED", true),

		AvailabilityCacheTTL: time.Second * time.Duration(getEnvAsInt("AVAILABILITY_CACHE_TTL_SECONDS", 300)),
		ContentCacheTTL:      time.Minute * time.Duration(getEnvAsInt("CONTENT_CACHE_TTL_MINUTES", 60)),
		NotificationTimeout:  time.Second * time.Duration(getEnvAsInt("NOTIFICATION_TIMEOUT_SECONDS", 8)),
		ShutdownTimeout:      time.Second * time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10)),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetRefreshTokenExpiry returns the expiry duration for refresh tokens.
func (c *Config) GetRefreshTokenExpiry() time.Duration {
	return c.RefreshTokenExpiry
}

func (c *Config) GetAvailabilityCacheTTL() time.Duration {
	return c.AvailabilityCacheTTL
}

func (c *Config) GetContentCacheTTL() time.Duration {
	return c.ContentCacheTTL
}

func (c *Config) GetNotificationTimeout() time.Duration {
	return c.NotificationTimeout
}

func (c *Config) GetTranslationSourceLang() string {
	return c.TranslationSourceLang
}

func (c *Config) GetTranslationTargetLang() string {
	return c.TranslationTargetLang
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(name string, fallback bool) bool {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

// comma separated, blanks dropped
func getEnvAsList(name string, fallback []string) []string {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
