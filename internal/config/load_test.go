// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
site:
  latitude: 42.93
  longitude: -73.86
  altitude: 100
  timezone: America/New_York
mqtt:
  host: mosquitto
  topic: roof/brightness
heartbeat:
  file: /run/brightness/last_publish
health:
  max_age_seconds: 120
`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/last_publish", cfg.Heartbeat.File)
	assert.Equal(t, 180, cfg.Health.MaxAgeSeconds)
	assert.Equal(t, 1883, cfg.MQTT.Port)
	assert.Equal(t, 10_000, cfg.Sample.IntervalMs)
	assert.True(t, cfg.Health.TCP)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 42.93, cfg.Site.Latitude)
	assert.Equal(t, "mosquitto", cfg.MQTT.Host)
	assert.Equal(t, "roof/brightness", cfg.MQTT.Topic)
	assert.Equal(t, 120, cfg.Health.MaxAgeSeconds)

	// untouched keys keep their defaults
	assert.Equal(t, 1883, cfg.MQTT.Port)
	assert.Equal(t, 90.0, cfg.Sample.SurfaceTilt)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("MQTT_HOST", "10.0.0.5")
	t.Setenv("MQTT_PORT", "8883")
	t.Setenv("HEARTBEAT_FILE", "/tmp/hb")
	t.Setenv("HEALTH_MAX_AGE_SECONDS", "30")
	t.Setenv("HEALTHCHECK_TCP", "0")
	t.Setenv("HEALTHCHECK_COMMAND", "mosquitto_sub -t brightness -C 1")

	cfg, err := Load(writeFile(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5", cfg.MQTT.Host)
	assert.Equal(t, 8883, cfg.MQTT.Port)
	assert.Equal(t, "/tmp/hb", cfg.Heartbeat.File)
	assert.Equal(t, 30, cfg.Health.MaxAgeSeconds)
	assert.False(t, cfg.Health.TCP)
	assert.Equal(t, []string{"mosquitto_sub", "-t", "brightness", "-C", "1"}, cfg.Health.Command)

	// file value survives where env is silent
	assert.Equal(t, "roof/brightness", cfg.MQTT.Topic)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("MQTT_PORT", "not-a-port")

	_, err := Load("")
	require.Error(t, err)
}

func TestPath(t *testing.T) {
	t.Setenv(PathEnv, "/etc/brightness.yaml")

	assert.Equal(t, "/cfg.yaml", Path([]string{"brightness", "/cfg.yaml"}))
	assert.Equal(t, "/etc/brightness.yaml", Path([]string{"brightness"}))
}
