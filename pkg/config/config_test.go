package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"10s", 10 * time.Second},
		{"15m", 15 * time.Minute},
		{"1hr", time.Hour},
		{"1d", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"2w", 14 * 24 * time.Hour},
		{"1.5hr", 90 * time.Minute},
	}

	for _, tt := range tests {
		got, err := ParseExpiry(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseExpiryInvalid(t *testing.T) {
	_, err := ParseExpiry("not-a-duration")
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenExpiry)
	assert.Equal(t, "refreshToken", cfg.RefreshTokenCookieName)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 12, cfg.SaltRounds)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AUTH_TOKEN_EXPIRATION", "10s")
	t.Setenv("REFRESH_TOKEN_EXPIRATION", "14d")
	t.Setenv("ORIGINS", "https://a.example, https://b.example")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.AccessTokenExpiry)
	assert.Equal(t, 14*24*time.Hour, cfg.RefreshTokenExpiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins)
	assert.True(t, cfg.CookieSecure)
}
