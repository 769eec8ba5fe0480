// Package config loads and validates service configuration. Values are
// assembled from four layers, each overriding the one before it: built-in
// defaults, base.yaml, the selected profile's YAML, and APP_-prefixed
// environment variables.
package config

import "time"

// Config is the root of all service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig controls structured logging. Level is one of debug, info, warn,
// error; Format is json or text.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig controls tracing and metrics. When Enabled is false the
// service installs no-op providers and the other fields are ignored.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
