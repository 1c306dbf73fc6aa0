package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"MediCare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validKey = "0123456789abcdef0123456789abcdef"

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFile(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8930", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 15.0, cfg.RateLimitRPS)
	assert.Equal(t, 30, cfg.RateLimitBurst)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.SimulateLatency)
	assert.Len(t, cfg.SymmetricKey, 32, "development gets a generated key")

	deletes, transitions := cfg.Policies()
	assert.Equal(t, models.DeleteDangle, deletes)
	assert.Equal(t, models.TransitionsStrict, transitions)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SYMMETRIC_KEY", validKey)
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("DELETE_POLICY", "cascade")
	t.Setenv("STATUS_TRANSITIONS", "permissive")
	t.Setenv("SIMULATE_LATENCY", "true")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := LoadFile(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, validKey, cfg.SymmetricKey)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.SimulateLatency)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis().URL)

	deletes, transitions := cfg.Policies()
	assert.Equal(t, models.DeleteCascade, deletes)
	assert.Equal(t, models.TransitionsPermissive, transitions)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := strings.Join([]string{
		"PORT=7000",
		"SYMMETRIC_KEY=" + validKey,
		"SMTP_HOST=smtp.example.com",
		"SMTP_PORT=2525",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "smtp.example.com", cfg.SMTP().Host)
	assert.Equal(t, 2525, cfg.SMTP().Port)
}

func TestProductionRequiresKey(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg, err := LoadFile(missingEnvFile(t))
	require.NoError(t, err)
	assert.Empty(t, cfg.SymmetricKey)
	assert.ErrorContains(t, cfg.Validate(), "SYMMETRIC_KEY")
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *AppConfig {
		return &AppConfig{
			Port:              "8930",
			SymmetricKey:      validKey,
			SessionTTL:        time.Hour,
			DeletePolicy:      "dangle",
			StatusTransitions: "strict",
		}
	}
	require.NoError(t, base().Validate())

	cases := map[string]func(*AppConfig){
		"DELETE_POLICY":      func(c *AppConfig) { c.DeletePolicy = "nullify" },
		"STATUS_TRANSITIONS": func(c *AppConfig) { c.StatusTransitions = "loose" },
		"SYMMETRIC_KEY":      func(c *AppConfig) { c.SymmetricKey = "short" },
		"SESSION_TTL":        func(c *AppConfig) { c.SessionTTL = 0 },
		"PASSWORD_COST":      func(c *AppConfig) { c.PasswordCost = 99 },
		"SMTP_PORT":          func(c *AppConfig) { c.SMTPHost = "smtp.example.com" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base()
			mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), name)
		})
	}
}
