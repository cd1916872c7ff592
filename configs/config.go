package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	// Fingerprinting configuration
	Fingerprint FingerprintConfig `mapstructure:"fingerprint"`

	// Comparison configuration
	Match MatchConfig `mapstructure:"match"`
}

// FingerprintConfig contains fingerprint calculation settings
type FingerprintConfig struct {
	// Algorithm selects the fingerprint preset (0-4).
	Algorithm int `mapstructure:"algorithm"`

	// MaxDuration restricts how many seconds of audio are fingerprinted;
	// zero means the whole file.
	MaxDuration float64 `mapstructure:"max_duration"`

	// Raw outputs fingerprint words as decimal integers instead of the
	// base64 compressed form.
	Raw bool `mapstructure:"raw"`
}

// MatchConfig contains comparison output settings
type MatchConfig struct {
	// MinScore drops matched segments scoring below this value.
	MinScore float64 `mapstructure:"min_score"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Fingerprint.Algorithm < 0 || config.Fingerprint.Algorithm > 4 {
		return fmt.Errorf("fingerprint algorithm must be between 0 and 4")
	}

	if config.Fingerprint.MaxDuration < 0 {
		return fmt.Errorf("fingerprint max duration cannot be negative")
	}

	if config.Match.MinScore < 0 || config.Match.MinScore > 1 {
		return fmt.Errorf("match min score must be between 0 and 1")
	}

	switch config.OutputFormat {
	case "", "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", config.OutputFormat)
	}

	return nil
}
