// Package config loads tool-level configuration for praxis.
//
// Configuration supplies CLI defaults only. The scaffolding engine itself
// takes explicit options and never reads this package, so embedding callers
// (MCP transport, tests) stay deterministic.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/praxisdev/praxis/errors"
)

// Config holds tool defaults overridable per invocation via CLI flags.
type Config struct {
	// Targets is the default platform selector ("all", or platform ids)
	Targets []string `mapstructure:"targets"`

	// Overwrite controls whether existing scaffolded files are replaced
	Overwrite bool `mapstructure:"overwrite"`

	// JSONLogs switches logger output to structured JSON
	JSONLogs bool `mapstructure:"json_logs"`
}

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the praxis configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Environment variable binding: PRAXIS_TARGETS, PRAXIS_OVERWRITE, ...
	v.SetEnvPrefix("PRAXIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	v.SetConfigName("praxis")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if dir := userConfigDir(); dir != "" {
		v.AddConfigPath(dir)
	}

	// Missing config file is fine; defaults and env cover everything
	_ = v.ReadInConfig()

	viperInstance = v
	return v
}

// SetDefaults applies default values to a Viper instance
func SetDefaults(v *viper.Viper) {
	v.SetDefault("targets", []string{"all"})
	v.SetDefault("overwrite", false)
	v.SetDefault("json_logs", false)
}

// userConfigDir returns the praxis config directory under XDG conventions
func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "praxis")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "praxis")
}
