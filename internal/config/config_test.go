package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mca/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, 30*time.Second, cfg.Worker.RefreshUniquePeriod)
	require.Equal(t, "0 13 * * 1-5", cfg.Worker.ReminderCron)
	require.Equal(t, "following", cfg.Schedule.DefaultConvention)
	require.False(t, cfg.Notifier.Enabled)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db.internal")

	cfg, err := config.Load(writeConfig(t, `
database:
  host: localhost
  name: collections
worker:
  maxAttempts: 8
  reminderHorizonDays: 5
schedule:
  defaultConvention: modified_following
notifier:
  enabled: true
  ratePerSecond: 0.5
`))
	require.NoError(t, err)

	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, "collections", cfg.Database.DatabaseName)
	require.Equal(t, 8, cfg.Worker.MaxAttempts)
	require.Equal(t, 5, cfg.Worker.ReminderHorizonDays)
	require.Equal(t, "modified_following", cfg.Schedule.DefaultConvention)
	require.True(t, cfg.Notifier.Enabled)
	require.InEpsilon(t, 0.5, cfg.Notifier.RatePerSecond, 1e-9)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
