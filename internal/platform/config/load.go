package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option adjusts how Load locates configuration.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir points Load at a different directory for the YAML layers.
// The default is "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load assembles configuration for the named profile from four layers, each
// overriding the one before it:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_-prefixed environment variables
//
// Environment names map onto config keys by matching against the keys the
// earlier layers produced, so APP_SERVER_READ_TIMEOUT overrides
// server.read_timeout and APP_TELEMETRY_SERVICE_NAME overrides
// telemetry.service_name. The loaded config is validated before being
// returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := loadEnv(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// loadEnv overlays APP_-prefixed environment variables onto k. Because "_"
// serves both as the nesting separator and inside key names, each incoming
// variable is first matched against the keys the file layers loaded;
// APP_SERVER_READ_TIMEOUT therefore resolves to server.read_timeout rather
// than server.read.timeout. Unmatched variables fall back to replacing every
// underscore with a dot.
func loadEnv(k *koanf.Koanf) error {
	known := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if dotted, ok := known[key]; ok {
				return dotted, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil)
	if err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// checkProfile rejects profile names that would escape the config directory.
func checkProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) || strings.Contains(profile, "..") {
		return fmt.Errorf("profile %q must be a bare file name", profile)
	}
	return nil
}
