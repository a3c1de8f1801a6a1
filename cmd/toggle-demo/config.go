package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives a demo run.
type Config struct {
	// Toggles is the number of clicks on the switch.
	Toggles int `yaml:"toggles"`

	// NotifyOnMount reports the initial flag to onToggle.
	NotifyOnMount bool `yaml:"notify_on_mount"`

	// Verbose enables debug logs.
	Verbose bool `yaml:"verbose"`
}

func defaultConfig() Config {
	return Config{Toggles: 2}
}

// loadConfig reads a YAML file over the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Toggles < 0 {
		return cfg, fmt.Errorf("invalid config %s: toggles must not be negative", path)
	}

	return cfg, nil
}
