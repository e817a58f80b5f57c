package config

import (
	"fmt"

	"github.com/hdrones8/ortofix/internal/constants"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the default ortofix configuration
func DefaultConfig() *Config {
	extensions := make([]string, len(constants.DefaultExtensions))
	copy(extensions, constants.DefaultExtensions)

	return &Config{
		Directory:  constants.DefaultDirectory,
		Extensions: extensions,
		Journal:    true,
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
