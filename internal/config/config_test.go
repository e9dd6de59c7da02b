package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GO_ENV", "development")
	t.Setenv("ACCESS_TOKEN_TTL", "")
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, "token", cfg.Auth.CookieName)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.Auth.CookieSecure)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "pet-house-backend", cfg.Tracing.ServiceName)
	assert.True(t, cfg.Tracing.Insecure)
}

func TestLoadProductionOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("ACCESS_TOKEN_TTL", "90m")
	t.Setenv("MIDTRANS_IS_PRODUCTION", "true")
	t.Setenv("HISTORY_CACHE_TTL", "30s")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Auth.CookieSecure)
	assert.Equal(t, 90*time.Minute, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Payment.MidtransIsProduction)
	assert.Equal(t, 30*time.Second, cfg.Cache.HistoryTTL)
	assert.False(t, cfg.Tracing.Insecure)
}
