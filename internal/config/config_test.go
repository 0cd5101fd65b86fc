package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[room_directory]
url = "http://rooms.local"

[booking_gateway]
url = "http://bookings.local"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 5*time.Second, cfg.RoomDirectory.TimeoutDuration())
	assert.Equal(t, 10*time.Second, cfg.BookingGateway.TimeoutDuration())
	assert.Equal(t, time.Minute, cfg.Cache.TTL())

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoad_FullFile(t *testing.T) {
	content := minimalConfig + `
[server]
http_port = 9090
read_timeout = 5
write_timeout = 20
idle_timeout = 30
shutdown_timeout = 5

[logs]
level = "debug"

[metrics]
enabled = true
path = "/internal/metrics"
service_name = "room_booking_gateway"

[booking]
timezone = "Europe/Moscow"

[cache]
enabled = true
addr = "localhost:6379"
ttl_seconds = 120

[journal]
enabled = true

[database]
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "room_booking"

[rate_limit]
enabled = true
requests_per_minute = 60
burst = 10
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "room_booking_gateway", cfg.Metrics.ServiceName)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL())
	assert.Equal(t, "host=localhost port=5432 user=booking password=secret dbname=room_booking sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ROOM_DIRECTORY_URL", "http://rooms.internal:8081")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "7000")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "http://rooms.internal:8081", cfg.RoomDirectory.URL)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7000, cfg.Server.HTTPPort)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing upstream url",
			content: "[room_directory]\nurl = \"http://rooms.local\"\n",
		},
		{
			name:    "bad log level",
			content: minimalConfig + "\n[logs]\nlevel = \"verbose\"\n",
		},
		{
			name:    "unknown timezone",
			content: minimalConfig + "\n[booking]\ntimezone = \"Mars/Olympus\"\n",
		},
		{
			name:    "journal without database",
			content: minimalConfig + "\n[journal]\nenabled = true\n",
		},
		{
			name:    "cache without addr",
			content: minimalConfig + "\n[cache]\nenabled = true\n",
		},
		{
			name:    "write timeout shorter than submit path",
			content: minimalConfig + "\n[server]\nwrite_timeout = 15\n",
		},
		{
			name:    "broken toml",
			content: "[server\nhttp_port = 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPortEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load(writeConfig(t, minimalConfig))
	assert.Error(t, err)
}
