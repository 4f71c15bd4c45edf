package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                   string
	Origins                []string
	MongoURL               string
	MongoDatabase          string
	SecretKey              string
	RefreshTokenSecretKey  string
	RefreshTokenCookieName string
	CookieSecure           bool
	AccessTokenExpiry      time.Duration
	RefreshTokenExpiry     time.Duration
	ResetTokenExpiry       time.Duration
	VerifyEmailTokenExpiry time.Duration
	SaltRounds             int
	GoogleProjectID        string
	GooglePubSubTopic      string
	GoogleCredentials      string
	AdminEmail             string
	AdminPassword          string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:                   getEnv("PORT", "8080"),
		Origins:                splitEnv("ORIGINS", "http://localhost:3000"),
		MongoURL:               getEnv("MONGO_URL", "mongodb://127.0.0.1:27017"),
		MongoDatabase:          getEnv("MONGO_DB", "boilerplate"),
		SecretKey:              getEnv("SECRET_KEY", "secretKey"),
		RefreshTokenSecretKey:  getEnv("REFRESH_TOKEN_SECRET_KEY", "refreshSecretKey"),
		RefreshTokenCookieName: getEnv("REFRESH_TOKEN_COOKIE_NAME", "refreshToken"),
		CookieSecure:           getBoolEnv("COOKIE_SECURE", false),
		AccessTokenExpiry:      getDurationEnv("AUTH_TOKEN_EXPIRATION", 15*time.Minute),
		RefreshTokenExpiry:     getDurationEnv("REFRESH_TOKEN_EXPIRATION", 7*24*time.Hour),
		ResetTokenExpiry:       getDurationEnv("FORGOT_PASSWORD_TOKEN_EXPIRATION", time.Hour),
		VerifyEmailTokenExpiry: getDurationEnv("VERIFICATION_EMAIL_EXPIRATION", 24*time.Hour),
		SaltRounds:             getIntEnv("SALT_ROUNDS", 12),
		GoogleProjectID:        getEnv("GOOGLE_PROJECT_ID", ""),
		GooglePubSubTopic:      getEnv("GOOGLE_PUBSUB_TOPIC", "signup-events"),
		GoogleCredentials:      getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		AdminEmail:             getEnv("ADMIN_EMAIL", ""),
		AdminPassword:          getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := ParseExpiry(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// ParseExpiry parses a token lifetime expression. Besides Go duration syntax
// it accepts the "7d", "2w" and "1hr" forms used in the environment files.
func ParseExpiry(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)

	if n, ok := strings.CutSuffix(value, "d"); ok {
		if days, err := strconv.ParseFloat(n, 64); err == nil {
			return time.Duration(days * 24 * float64(time.Hour)), nil
		}
	}
	if n, ok := strings.CutSuffix(value, "w"); ok {
		if weeks, err := strconv.ParseFloat(n, 64); err == nil {
			return time.Duration(weeks * 7 * 24 * float64(time.Hour)), nil
		}
	}
	if n, ok := strings.CutSuffix(value, "hr"); ok {
		if hours, err := strconv.ParseFloat(n, 64); err == nil {
			return time.Duration(hours * float64(time.Hour)), nil
		}
	}

	return time.ParseDuration(value)
}
