package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "http://localhost:9090", cfg.BackendURL)
	assert.Equal(t, 15*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "/login", cfg.LoginURL)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.example.edu")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "3")
	t.Setenv("LOGIN_URL", "/auth/login")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.edu, https://staging.example.edu")

	cfg := Load()

	assert.Equal(t, "https://api.example.edu", cfg.BackendURL)
	assert.Equal(t, 3*time.Second, cfg.BackendTimeout)
	assert.Equal(t, "/auth/login", cfg.LoginURL)
	assert.Equal(t, []string{"https://app.example.edu", "https://staging.example.edu"}, cfg.AllowedOrigins)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "forever")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty means allow all", "", nil},
		{"single origin", "https://a.edu", []string{"https://a.edu"}},
		{"trims spaces", " https://a.edu , https://b.edu ", []string{"https://a.edu", "https://b.edu"}},
		{"skips empty entries", "https://a.edu,,https://b.edu", []string{"https://a.edu", "https://b.edu"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOrigins(tt.raw))
		})
	}
}
