package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/StayFinder-BookingService/internal/availability"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	path := writeConfig(t, `
[stay_api]
url = "http://stay-api:8000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, SourceAPI, cfg.Availability.Source)
	assert.Equal(t, availability.PolicySkip, cfg.MalformedRangePolicy())
	assert.Equal(t, 60*time.Second, cfg.Redis.TTL())
	assert.Equal(t, uint32(5), cfg.StayAPI.BreakerMinRequests)

	weekStart, err := cfg.WeekStartDay()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, weekStart)
}

func TestLoad_FullFileAndEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_PASSWORD", "redis-secret")

	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "stay"
password = "from-file"
dbname = "calendar"

[redis]
enabled = true
ttl_seconds = 30

[stay_api]
url = "http://stay-api:8000"

[availability]
source = "postgres"
malformed_ranges = "block"

[picker]
timezone = "Asia/Tokyo"
week_start = "Monday"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "redis-secret", cfg.Redis.Password)
	assert.Equal(t, availability.PolicyBlock, cfg.MalformedRangePolicy())
	assert.Equal(t, "host=db port=5433 user=stay password=from-env dbname=calendar sslmode=disable", cfg.Database.DSN())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())

	weekStart, err := cfg.WeekStartDay()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, weekStart)
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	path := writeConfig(t, `
[stay_api]
url = "http://from-env-path"
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, "http://from-env-path", cfg.StayAPI.URL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing stay api url",
			content: `[server]` + "\nhttp_port = 8080\n",
		},
		{
			name:    "unknown source",
			content: "[stay_api]\nurl = \"http://x\"\n[availability]\nsource = \"mongo\"\n",
		},
		{
			name:    "postgres without host",
			content: "[stay_api]\nurl = \"http://x\"\n[availability]\nsource = \"postgres\"\n",
		},
		{
			name:    "unknown policy",
			content: "[stay_api]\nurl = \"http://x\"\n[availability]\nmalformed_ranges = \"ignore\"\n",
		},
		{
			name:    "unknown timezone",
			content: "[stay_api]\nurl = \"http://x\"\n[picker]\ntimezone = \"Mars/Olympus\"\n",
		},
		{
			name:    "bad week start",
			content: "[stay_api]\nurl = \"http://x\"\n[picker]\nweek_start = \"friday\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}
