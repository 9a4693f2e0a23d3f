package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/dental-scheduler/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "07:00", cfg.ClinicOpen)
	assert.Equal(t, "19:00", cfg.ClinicClose)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "server_port: \"7000\"\nclinic_open: \"08:30\"\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr())
	assert.Equal(t, "08:30", cfg.ClinicOpen)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_InvalidClinicHours(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("CLINIC_OPEN", "seven")

	_, err := config.Load()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := config.Default()
	assert.Nil(t, cfg.AllowedOrigins())

	cfg.CORSOrigins = "http://localhost:3000, https://debo.example.com ,"
	assert.Equal(t,
		[]string{"http://localhost:3000", "https://debo.example.com"},
		cfg.AllowedOrigins(),
	)
}
