// internal/config/validate.go
package config

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StrategyFreshness = "freshness"
	StrategyCommand   = "command"
)

// Validate checks configuration correctness for the worker.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// SITE
	// ------------------------------------------------------------

	if cfg.Site.Latitude < -90 || cfg.Site.Latitude > 90 {
		return fmt.Errorf("site: latitude %v out of range [-90, 90]", cfg.Site.Latitude)
	}
	if cfg.Site.Longitude < -180 || cfg.Site.Longitude > 180 {
		return fmt.Errorf("site: longitude %v out of range [-180, 180]", cfg.Site.Longitude)
	}
	if _, err := time.LoadLocation(cfg.Site.Timezone); err != nil {
		return fmt.Errorf("site: timezone %q: %w", cfg.Site.Timezone, err)
	}

	// ------------------------------------------------------------
	// SAMPLING
	// ------------------------------------------------------------

	if cfg.Sample.IntervalMs <= 0 {
		return fmt.Errorf("sample: interval_ms must be > 0")
	}
	if cfg.Sample.SurfaceTilt < 0 || cfg.Sample.SurfaceTilt > 180 {
		return fmt.Errorf("sample: surface_tilt %v out of range [0, 180]", cfg.Sample.SurfaceTilt)
	}
	if cfg.Sample.Albedo < 0 || cfg.Sample.Albedo > 1 {
		return fmt.Errorf("sample: albedo %v out of range [0, 1]", cfg.Sample.Albedo)
	}
	if n := len(cfg.Sample.LinkeTurbidityMonthly); n != 0 && n != 12 {
		return fmt.Errorf("sample: linke_turbidity_monthly needs 12 values, got %d", n)
	}
	if len(cfg.Sample.LinkeTurbidityMonthly) == 0 && cfg.Sample.LinkeTurbidity <= 0 {
		return fmt.Errorf("sample: linke_turbidity must be > 0")
	}
	for i, v := range cfg.Sample.LinkeTurbidityMonthly {
		if v <= 0 {
			return fmt.Errorf("sample: linke_turbidity_monthly[%d] must be > 0", i)
		}
	}

	// ------------------------------------------------------------
	// MQTT
	// ------------------------------------------------------------

	if cfg.MQTT.Host == "" {
		return fmt.Errorf("mqtt: host is required")
	}
	if cfg.MQTT.Port <= 0 || cfg.MQTT.Port > 65535 {
		return fmt.Errorf("mqtt: port %d out of range", cfg.MQTT.Port)
	}
	if cfg.MQTT.Topic == "" {
		return fmt.Errorf("mqtt: topic is required")
	}
	if cfg.MQTT.QoS > 2 {
		return fmt.Errorf("mqtt: qos %d invalid", cfg.MQTT.QoS)
	}
	if cfg.MQTT.TimeoutMs <= 0 {
		return fmt.Errorf("mqtt: timeout_ms must be > 0")
	}
	if cfg.MQTT.Discovery.Enabled {
		if cfg.MQTT.Discovery.Prefix == "" {
			return fmt.Errorf("mqtt: discovery prefix is required when discovery is enabled")
		}
		if _, err := uuid.Parse(cfg.MQTT.Discovery.UniqueID); err != nil {
			return fmt.Errorf("mqtt: discovery unique_id %q: %w", cfg.MQTT.Discovery.UniqueID, err)
		}
	}

	// ------------------------------------------------------------
	// MODBUS TARGET (OPT-IN)
	// ------------------------------------------------------------

	if cfg.Modbus.Endpoint != "" {
		if cfg.Modbus.TimeoutMs <= 0 {
			return fmt.Errorf("modbus: timeout_ms must be > 0")
		}

		// irradiance block is 5 registers
		if int(cfg.Modbus.Address)+5 > 65536 {
			return fmt.Errorf("modbus: address %d leaves no room for the irradiance block", cfg.Modbus.Address)
		}

		// device_name sanity (ASCII only)
		for i := 0; i < len(cfg.Modbus.DeviceName); i++ {
			if cfg.Modbus.DeviceName[i] > 0x7F {
				return fmt.Errorf("modbus: device_name must contain ASCII characters only")
			}
		}

		if cfg.Modbus.StatusAddress != nil {
			start := *cfg.Modbus.StatusAddress
			end := int(start) + 20 - 1
			dataEnd := int(cfg.Modbus.Address) + 5 - 1

			if !(end < int(cfg.Modbus.Address) || int(start) > dataEnd) {
				return fmt.Errorf(
					"modbus: status block %d-%d overlaps irradiance block %d-%d",
					start,
					end,
					cfg.Modbus.Address,
					dataEnd,
				)
			}
		}
	}

	return ValidateProbe(cfg)
}

// ValidateProbe checks only what the health probe needs.
// The probe must run with a partial environment (no site, no broker).
func ValidateProbe(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	if cfg.Heartbeat.File == "" {
		return fmt.Errorf("heartbeat: file is required")
	}

	switch cfg.Health.Strategy {
	case StrategyFreshness:
		if cfg.Health.MaxAgeSeconds <= 0 {
			return fmt.Errorf("health: max_age_seconds must be > 0")
		}
	case StrategyCommand:
		empty := true
		for _, a := range cfg.Health.Command {
			if a != "" {
				empty = false
				break
			}
		}
		if empty {
			return fmt.Errorf("health: strategy %q requires a command", StrategyCommand)
		}
	default:
		return fmt.Errorf("health: unknown strategy %q", cfg.Health.Strategy)
	}

	if cfg.Health.TimeoutMs <= 0 {
		return fmt.Errorf("health: timeout_ms must be > 0")
	}
	if cfg.Health.TCP && cfg.Health.TCPTimeoutMs <= 0 {
		return fmt.Errorf("health: tcp_timeout_ms must be > 0")
	}

	return nil
}
