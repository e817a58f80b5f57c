package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hdrones8/ortofix/internal/logging"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Directory        string        `yaml:"directory"`
	Extensions       []string      `yaml:"extensions"`
	Logging          LoggingConfig `yaml:"logging"`
	Recursive        bool          `yaml:"recursive"`
	NormalizeUnicode bool          `yaml:"normalize_unicode"`
	Journal          bool          `yaml:"journal"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// Load reads the config at path. A missing file yields the defaults; keys
// absent from the file keep their default values.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return LoadFromYAML(data)
}

// LoadFromYAML loads config from YAML bytes layered over the defaults
func LoadFromYAML(data []byte) (*Config, error) {
	config := DefaultConfig()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate performs comprehensive config validation
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Directory) == "" {
		return fmt.Errorf("%w: directory is required", ErrInvalidConfig)
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: at least one extension is required", ErrInvalidConfig)
	}
	for i, ext := range c.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %d %q must start with '.'", ErrInvalidConfig, i+1, ext)
		}
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Logging.MaxSize < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAge < 0 {
		return fmt.Errorf("%w: log rotation values cannot be negative", ErrInvalidConfig)
	}

	return nil
}
