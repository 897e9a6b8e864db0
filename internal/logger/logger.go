// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"

	cfg "github.com/watsona4/brightness/internal/config"
)

// Standard field names.
const (
	Component = "component"
	Sink      = "sink"
	Topic     = "topic"
)

// New builds the process logger from configuration.
// Format "console" selects a human-readable writer; anything else is JSON.
func New(c cfg.LogConfig, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}

	var l zerolog.Logger
	if strings.ToLower(c.Format) == "console" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02 15:04:05"})
	} else {
		l = zerolog.New(w)
	}

	return l.With().Timestamp().Logger().Level(parseLevel(c.Level))
}

// parseLevel converts a string log level to zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// ---- MQTT CLIENT LOGGING ----

// pahoLogger adapts zerolog to the paho Logger interface at a fixed level.
type pahoLogger struct {
	l     zerolog.Logger
	level zerolog.Level
}

var _ mqtt.Logger = pahoLogger{}

func (p pahoLogger) Println(v ...interface{}) {
	p.l.WithLevel(p.level).Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (p pahoLogger) Printf(format string, v ...interface{}) {
	p.l.WithLevel(p.level).Msg(fmt.Sprintf(format, v...))
}

// RouteMQTT sends the paho client's internal logs through l.
// Paho's DEBUG stream is very chatty and is only enabled at trace level.
func RouteMQTT(l zerolog.Logger) {
	l = l.With().Str(Component, "paho").Logger()

	mqtt.CRITICAL = pahoLogger{l: l, level: zerolog.ErrorLevel}
	mqtt.ERROR = pahoLogger{l: l, level: zerolog.ErrorLevel}
	mqtt.WARN = pahoLogger{l: l, level: zerolog.WarnLevel}
	if l.GetLevel() <= zerolog.TraceLevel {
		mqtt.DEBUG = pahoLogger{l: l, level: zerolog.TraceLevel}
	}
}
