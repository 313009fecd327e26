package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "gemini-2.0-flash", cfg.GenAI.Model)
	assert.Equal(t, 20*time.Second, cfg.GenAI.Timeout)
	assert.Equal(t, 7.0, cfg.Plan.AvailableHoursPerDay)
	assert.Equal(t, 2.0, cfg.Plan.OpeningClosingHours)
	assert.Equal(t, 1.0, cfg.Plan.DefaultThemeHours)
	assert.Equal(t, "fr", cfg.Templates.Locale)
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.False(t, cfg.Auth.Enabled())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RISKDESK_ADDR=:9090\nTEMPLATE_LOCALE=en\n"), 0o600))
	t.Setenv("APP_ENV", "development")
	t.Setenv("PLAN_AVAILABLE_HOURS_PER_DAY", "6.5")
	t.Setenv("TEMPLATE_LOCALE", "de")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "de", cfg.Templates.Locale, "process env wins over .env")
	assert.Equal(t, 6.5, cfg.Plan.AvailableHoursPerDay)
}

func TestLoad_RejectsInvalidPlan(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PLAN_AVAILABLE_HOURS_PER_DAY", "0")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "PLAN_AVAILABLE_HOURS_PER_DAY")
}

func TestLoad_RequiresAuthOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "AUTH_JWT_SECRET")
}

func TestLoad_RejectsEmptyPool(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DATABASE_MAX_CONNS", "0")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "DATABASE_MAX_CONNS")
}
