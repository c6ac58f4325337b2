package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound indicates the config file doesn't exist.
var ErrConfigNotFound = errors.New("config not found")

// Config represents the responder configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Responder ResponderConfig `yaml:"responder"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LoggingConfig holds logging and query journal settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console

	// JournalDir enables the query journal when non-empty.
	JournalDir    string `yaml:"journal_dir"`
	RetentionDays int    `yaml:"retention_days"`
}

// ResponderConfig tunes the answers themselves.
type ResponderConfig struct {
	// Name is returned for "what is your name" questions.
	Name string `yaml:"name"`

	// MaxPowerBits bounds the size of exponentiation results.
	MaxPowerBits int `yaml:"max_power_bits"`
}

// envVarPattern matches ${VAR_NAME} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"json": true, "console": true}
)

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 9000,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "json",
			RetentionDays: 30,
		},
		Responder: ResponderConfig{
			Name:         "Team12",
			MaxPowerBits: 1 << 20,
		},
	}
}

// Load reads and parses the config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Substitute environment variables
	data = envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		varName := envVarPattern.FindSubmatch(match)[1]
		return []byte(os.Getenv(string(varName)))
	})

	// Start with defaults
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Validate checks that the config values are usable.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}
	if c.Logging.JournalDir != "" && c.Logging.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be positive when journal_dir is set")
	}
	if c.Responder.MaxPowerBits <= 0 {
		return fmt.Errorf("max_power_bits must be positive")
	}
	return nil
}
