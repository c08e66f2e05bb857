// Package config loads the uvcprops tool configuration from YAML with
// UVCPROPS_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kevmo314/go-uvcprops/pkg/property"
)

type Config struct {
	Device  DeviceConfig  `yaml:"device"`
	Logging LoggingConfig `yaml:"logging"`
	// Presets are applied in order right after the driver is opened.
	Presets []Preset `yaml:"presets"`
}

type DeviceConfig struct {
	// Path is the usbfs node, e.g. /dev/bus/usb/001/004.
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	Output string `yaml:"output"` // stdout, stderr
}

type Preset struct {
	Property string  `yaml:"property"`
	Value    float64 `yaml:"value"`
}

// Load reads path on top of the defaults. An empty path skips the file and
// only applies defaults and environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("UVCPROPS_DEVICE_PATH"); v != "" {
		cfg.Device.Path = v
	}
	if v := os.Getenv("UVCPROPS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("UVCPROPS_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of text, json", c.Logging.Format)
	}
	for i, p := range c.Presets {
		if _, err := property.ParseID(p.Property); err != nil {
			return fmt.Errorf("presets[%d]: %w", i, err)
		}
	}
	return nil
}
