package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the settings for the HTTP server process.
type ServerConfig struct {
	Addr           string `yaml:"addr"`            // Listen address, e.g. ":8080"
	LogLevel       string `yaml:"log_level"`       // debug, info, warn, error
	LogFormat      string `yaml:"log_format"`      // text or json
	MetricsEnabled bool   `yaml:"metrics_enabled"` // Expose /metrics for Prometheus scraping
	MaxRequestSize int64  `yaml:"max_request_size"`
}

// DefaultServerConfig returns the configuration used when no file is given.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:           ":8080",
		LogLevel:       "info",
		LogFormat:      "text",
		MetricsEnabled: true,
		MaxRequestSize: 10 << 20, // 10 MiB
	}
}

// LoadServerConfig reads a YAML configuration file, filling in defaults for
// anything the file leaves unset. An empty path returns the defaults.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.MaxRequestSize <= 0 {
		cfg.MaxRequestSize = 10 << 20
	}
	return cfg, nil
}
