package config

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks every section and reports all problems at once, joined
// into a single error.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port: %d is outside 1-65535", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout: must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout: must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	if !oneOf(l.Level, "debug", "info", "warn", "error") {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", l.Level))
	}
	if !oneOf(l.Format, "json", "text") {
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	if !oneOf(t.Exporter, "stdout", "otlp") {
		errs = append(errs, fmt.Errorf("telemetry.exporter: unknown exporter %q", t.Exporter))
	}
	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint: required when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func oneOf(value string, allowed ...string) bool {
	return slices.Contains(allowed, value)
}
