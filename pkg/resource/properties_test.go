package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProperties = `
app:
  server:
    port: ${TEST_DASHBOARD_PORT:9090}
  weather:
    base-url: ${TEST_DASHBOARD_BASE_URL:http://localhost:1234}
    timeout: 2s
    max-retries: 5
    default-city: Lisbon
  cache:
    enabled: true
`

func TestInitResolvesEnvironmentAndDefaults(t *testing.T) {
	t.Setenv("TEST_DASHBOARD_BASE_URL", "http://provider.test")

	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(testProperties), 0o600))

	Init(path)
	t.Cleanup(func() { Init(filepath.Join(t.TempDir(), "missing.yml")) })

	assert.Equal(t, "9090", GetString("app.server.port"))
	assert.Equal(t, "http://provider.test", GetString("app.weather.base-url"))
	assert.Equal(t, 2*time.Second, GetDuration("app.weather.timeout"))
	assert.Equal(t, 5, GetInt("app.weather.max-retries"))
	assert.Equal(t, "Lisbon", GetString("app.weather.default-city"))
	assert.True(t, GetBool("app.cache.enabled"))

	// keys absent from the file fall back to defaults
	assert.Equal(t, 100*time.Millisecond, GetDuration("app.weather.batch.interval"))
	assert.Equal(t, "https://api.openweathermap.org/geo/1.0", GetString("app.weather.geocoding-url"))
}

func TestInitWithMissingFileKeepsDefaults(t *testing.T) {
	Init(filepath.Join(t.TempDir(), "missing.yml"))

	assert.Equal(t, "8080", GetString("app.server.port"))
	assert.Equal(t, 3, GetInt("app.weather.max-retries"))
	assert.Equal(t, 10*time.Second, GetDuration("app.weather.timeout"))
	assert.Equal(t, []string{"London", "Paris", "Tokyo", "New York"}, GetStringSlice("app.schedule.cities"))
	assert.False(t, GetBool("app.cache.enabled"))
}
