// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// HEALTHCHECK_COMMAND is split on single spaces; drop the empty
	// fields produced by repeated separators.
	if len(cfg.Health.Command) > 0 {
		args := cfg.Health.Command[:0]
		for _, a := range cfg.Health.Command {
			if a != "" {
				args = append(args, a)
			}
		}
		cfg.Health.Command = args
	}

	// ------------------------------------------------------------
	// DEVICE STATUS BLOCK NORMALIZATION (OPT-IN)
	// ------------------------------------------------------------

	if cfg.Modbus.Endpoint == "" || cfg.Modbus.StatusAddress == nil {
		return
	}

	// Truncate device_name to max 16 characters (ASCII already validated)
	if len(cfg.Modbus.DeviceName) > 16 {
		cfg.Modbus.DeviceName = cfg.Modbus.DeviceName[:16]
	}
}
