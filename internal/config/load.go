// internal/config/load.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// PathEnv names the environment variable consulted when no path argument is given.
const PathEnv = "BRIGHTNESS_CONFIG"

// Default returns the built-in configuration.
// Values mirror what the container image has always shipped with.
func Default() Config {
	return Config{
		Site: SiteConfig{
			Timezone: "UTC",
		},
		Sample: SampleConfig{
			IntervalMs:     10_000,
			SurfaceTilt:    90,
			SurfaceAzimuth: 180,
			Albedo:         0.25,
			LinkeTurbidity: 3.0,
		},
		MQTT: MQTTConfig{
			Port:           1883,
			ClientIDPrefix: "brightness",
			KeepAliveSec:   60,
			TimeoutMs:      5_000,
			Topic:          "brightness",
			QoS:            1,
			Discovery: DiscoveryConfig{
				Enabled:  true,
				Prefix:   "homeassistant",
				Name:     "Solar Irradiance",
				UniqueID: "17c4c005-01ad-4c87-8cc6-a4901ff1ebd0",
			},
		},
		Modbus: ModbusConfig{
			UnitID:    1,
			TimeoutMs: 2_000,
		},
		Heartbeat: HeartbeatConfig{
			File: "/tmp/last_publish",
		},
		Health: HealthConfig{
			Strategy:      StrategyFreshness,
			MaxAgeSeconds: 180,
			TimeoutMs:     5_000,
			TCP:           true,
			TCPTimeoutMs:  2_000,
		},
		Log: LogConfig{
			Level:  "debug",
			Format: "json",
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config: file %s not found", path)
			}
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// Only variables that are actually set override the file.
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	return &cfg, nil
}

// Path resolves the config file location from CLI args or PathEnv.
func Path(args []string) string {
	if len(args) > 1 && args[1] != "" {
		return args[1]
	}
	return os.Getenv(PathEnv)
}
