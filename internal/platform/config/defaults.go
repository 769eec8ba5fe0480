package config

// Fallbacks for keys no YAML layer sets.
const (
	defaultServerPort  = 8080
	defaultServiceName = "todo-service"
)

// defaults is the lowest-precedence configuration layer.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": defaultServiceName,
	}
}
