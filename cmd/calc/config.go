package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config for the calculator loop.
type Config struct {
	Prompt    string `yaml:"prompt"`
	Exit      string `yaml:"exit"`
	Echo      bool   `yaml:"echo"`
	History   string `yaml:"history"`
	Precision int    `yaml:"precision"`
	Digits    int    `yaml:"digits"`
	Verbosity int    `yaml:"verbosity"`
	Log       string `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Prompt:    "> ",
		Exit:      "exit",
		Echo:      true,
		Precision: 64,
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig.
//
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Precision != 32 && c.Precision != 64 {
		return fmt.Errorf("precision must be 32 or 64 but got %d", c.Precision)
	}
	if c.Digits < 0 {
		return fmt.Errorf("digits must not be negative but got %d", c.Digits)
	}
	return nil
}
