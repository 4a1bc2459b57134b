package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("COMPANY_SERVICES", "")
	t.Setenv("BACKEND_URL", "http://api.local:8080/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://api.local:8080", cfg.BackendURL)
	assert.Equal(t, defaultServices, cfg.Company.Services)
	assert.Equal(t, "Chișinău, Moldova", cfg.Company.Address)
	assert.Equal(t, []string{"127.0.0.1", "::1"}, cfg.TrustedProxies)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("COMPANY_SERVICES", "Transport marfă | | Mutări")
	t.Setenv("CORS_ORIGINS", "https://standeal.md, https://www.standeal.md")
	t.Setenv("RATE_LIMIT_INTAKE_THRESHOLD", "3")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"Transport marfă", "Mutări"}, cfg.Company.Services)
	assert.Equal(t, []string{"https://standeal.md", "https://www.standeal.md"}, cfg.CORSOrigins)
	assert.Equal(t, 3, cfg.RateLimitIntakeThreshold)
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxies)
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "soon")
	assert.Equal(t, 60, getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60))
}
