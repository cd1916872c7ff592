package configs

import (
	"github.com/spf13/viper"
)

// SetDefaults sets default configuration values for all components
func SetDefaults(v *viper.Viper) {
	// Application defaults
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("output_format", "text")

	// Fingerprinting defaults
	v.SetDefault("fingerprint.algorithm", 1)
	v.SetDefault("fingerprint.max_duration", 120.0)
	v.SetDefault("fingerprint.raw", false)

	// Comparison defaults
	v.SetDefault("match.min_score", 0.0)
}
