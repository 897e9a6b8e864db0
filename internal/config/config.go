// internal/config/config.go
package config

type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Sample    SampleConfig    `yaml:"sample"`
	MQTT      MQTTConfig      `yaml:"mqtt"`
	Modbus    ModbusConfig    `yaml:"modbus"`
	Heartbeat HeartbeatConfig `yaml:"heartbeat"`
	Health    HealthConfig    `yaml:"health"`
	Log       LogConfig       `yaml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ---- SITE ----

type SiteConfig struct {
	Latitude  float64 `yaml:"latitude" env:"LATITUDE"`
	Longitude float64 `yaml:"longitude" env:"LONGITUDE"`
	Altitude  float64 `yaml:"altitude" env:"ALTITUDE"` // meters
	Timezone  string  `yaml:"timezone" env:"TZ"`
}

// ---- SAMPLING GEOMETRY ----

type SampleConfig struct {
	IntervalMs int `yaml:"interval_ms" env:"SAMPLE_INTERVAL_MS"`

	SurfaceTilt    float64 `yaml:"surface_tilt" env:"SURFACE_TILT"`       // degrees from horizontal
	SurfaceAzimuth float64 `yaml:"surface_azimuth" env:"SURFACE_AZIMUTH"` // degrees clockwise from north
	Albedo         float64 `yaml:"albedo" env:"ALBEDO"`

	// LinkeTurbidity is used when LinkeTurbidityMonthly is empty.
	LinkeTurbidity        float64   `yaml:"linke_turbidity" env:"LINKE_TURBIDITY"`
	LinkeTurbidityMonthly []float64 `yaml:"linke_turbidity_monthly" env:"LINKE_TURBIDITY_MONTHLY" envSeparator:","`
}

// ---- MQTT ----

type MQTTConfig struct {
	Host     string `yaml:"host" env:"MQTT_HOST"`
	Port     int    `yaml:"port" env:"MQTT_PORT"`
	Username string `yaml:"username" env:"MQTT_USERNAME"`
	Password string `yaml:"password" env:"MQTT_PASSWORD"`

	ClientIDPrefix string `yaml:"client_id_prefix" env:"MQTT_CLIENT_ID_PREFIX"`
	KeepAliveSec   int    `yaml:"keepalive_sec" env:"MQTT_KEEPALIVE_SEC"`
	TimeoutMs      int    `yaml:"timeout_ms" env:"MQTT_TIMEOUT_MS"`

	Topic string `yaml:"topic" env:"MQTT_TOPIC"`
	QoS   byte   `yaml:"qos" env:"MQTT_QOS"`

	Discovery DiscoveryConfig `yaml:"discovery"`
}

// DiscoveryConfig describes the Home Assistant discovery document.
type DiscoveryConfig struct {
	Enabled  bool   `yaml:"enabled" env:"MQTT_DISCOVERY"`
	Prefix   string `yaml:"prefix" env:"MQTT_DISCOVERY_PREFIX"`
	Name     string `yaml:"name" env:"MQTT_DISCOVERY_NAME"`
	UniqueID string `yaml:"unique_id" env:"MQTT_DISCOVERY_UNIQUE_ID"`
}

// ---- MODBUS TARGET (optional, opt-in) ----

type ModbusConfig struct {
	Endpoint  string `yaml:"endpoint" env:"MODBUS_ENDPOINT"`
	UnitID    uint8  `yaml:"unit_id" env:"MODBUS_UNIT_ID"`
	Address   uint16 `yaml:"address" env:"MODBUS_ADDRESS"`
	TimeoutMs int    `yaml:"timeout_ms" env:"MODBUS_TIMEOUT_MS"`

	// Device status block (optional, opt-in)
	StatusAddress *uint16 `yaml:"status_address"`
	DeviceName    string  `yaml:"device_name" env:"MODBUS_DEVICE_NAME"`
}

// ---- LIVENESS ----

type HeartbeatConfig struct {
	File string `yaml:"file" env:"HEARTBEAT_FILE"`
}

type HealthConfig struct {
	Strategy      string `yaml:"strategy" env:"HEALTHCHECK_STRATEGY"` // freshness | command
	MaxAgeSeconds int    `yaml:"max_age_seconds" env:"HEALTH_MAX_AGE_SECONDS"`
	TimeoutMs     int    `yaml:"timeout_ms" env:"HEALTHCHECK_TIMEOUT_MS"`

	// Command is the external tool run by the "command" strategy.
	Command []string `yaml:"command" env:"HEALTHCHECK_COMMAND" envSeparator:" "`

	// TCP enables a plain broker reachability check (no MQTT session).
	TCP          bool `yaml:"tcp" env:"HEALTHCHECK_TCP"`
	TCPTimeoutMs int  `yaml:"tcp_timeout_ms" env:"HEALTHCHECK_TCP_TIMEOUT_MS"`
}

// ---- AMBIENT ----

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"` // json | console
}

type MetricsConfig struct {
	Listen string `yaml:"listen" env:"METRICS_LISTEN"` // empty disables the HTTP server
}
