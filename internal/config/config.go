// Package config loads runtime configuration for the onvoc CLI.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/onvoc/onvoc/internal/vocab"
)

// Config holds all runtime configuration for an onvoc invocation.
// Values are populated from .onvoc.yaml, ONVOC_* env vars, and CLI flags.
type Config struct {
	Prefix   string `mapstructure:"prefix"`
	Strict   bool   `mapstructure:"strict"`
	AuditLog string `mapstructure:"audit_log"`
	Scheme   string `mapstructure:"scheme"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("prefix", string(vocab.DefaultPrefix))
	viper.SetDefault("strict", false)
	viper.SetDefault("audit_log", "")
	viper.SetDefault("scheme", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling configuration: %w", err)
	}
	return cfg, nil
}
