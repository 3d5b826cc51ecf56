// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Tarif struct {
		SimulationURL  string `mapstructure:"simulation_url" yaml:"simulation_url"`
		PersistentURL  string `mapstructure:"persistent_url" yaml:"persistent_url"`
		Licence        string `mapstructure:"licence" yaml:"-"` // never serialize the licence key
		BrokerCode     string `mapstructure:"broker_code" yaml:"broker_code"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"tarif" yaml:"tarif"`

	Output struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"output" yaml:"output"`
}

// Timeout returns the configured HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Tarif.TimeoutSeconds) * time.Second
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.tarificateur")
	v.AddConfigPath(".tarificateur")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("TARIF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The licence key always binds to its unprefixed variable
	if err := v.BindEnv("tarif.licence", "TARIF_LICENCE"); err != nil {
		fmt.Printf("Warning: failed to bind TARIF_LICENCE environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("tarif.simulation_url", "")
	v.SetDefault("tarif.persistent_url", "")
	v.SetDefault("tarif.broker_code", "")
	v.SetDefault("tarif.timeout_seconds", 30)

	v.SetDefault("output.format", "table")
}

// validateConfig checks values that would otherwise fail deep inside a call
func validateConfig(c *Config) error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error", "fatal", "":
	default:
		return fmt.Errorf("unknown log level '%s'", c.Log.Level)
	}

	if c.Tarif.TimeoutSeconds < 0 {
		return fmt.Errorf("tarif.timeout_seconds must not be negative")
	}

	switch c.Output.Format {
	case "table", "json", "csv", "":
	default:
		return fmt.Errorf("unknown output format '%s'", c.Output.Format)
	}

	return nil
}
