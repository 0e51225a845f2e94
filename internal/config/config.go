// Package config loads pipsweep settings from an optional yaml file and
// PIPSWEEP_* environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds every tunable of the tool. All fields have working defaults;
// a config file is never required.
type Config struct {
	// PipCommand is the argv prefix used for every pip invocation,
	// e.g. ["pip"] or ["python3", "-m", "pip"].
	PipCommand []string `mapstructure:"pip_command"`
	// BatchSize caps how many packages one uninstall call covers.
	BatchSize int `mapstructure:"batch_size"`
	// Strict makes cleanup fail when any removal batch exits non-zero.
	Strict bool `mapstructure:"strict"`
	// Protect lists extra protected package names on top of the built-ins.
	Protect []string `mapstructure:"protect"`
	// ProtectPrefixes lists name prefixes whose installed matches are
	// protected unconditionally.
	ProtectPrefixes []string `mapstructure:"protect_prefixes"`
	// PolicyFile points at a per-project policy overlay (see policy.File).
	PolicyFile string `mapstructure:"policy_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PipCommand:      []string{"pip"},
		BatchSize:       10,
		ProtectPrefixes: []string{"pyobjc-"},
	}
}

// Load reads the configuration. With an empty cfgFile it searches
// $XDG_CONFIG_HOME/pipsweep (or ~/.config/pipsweep) and the current
// directory; a missing file is not an error. An explicitly given cfgFile
// must exist.
func Load(cfgFile string) (*Config, error) {
	defaults := Default()

	v := viper.New()
	v.SetDefault("pip_command", defaults.PipCommand)
	v.SetDefault("batch_size", defaults.BatchSize)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("protect", defaults.Protect)
	v.SetDefault("protect_prefixes", defaults.ProtectPrefixes)
	v.SetDefault("policy_file", defaults.PolicyFile)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("PIPSWEEP")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if len(cfg.PipCommand) == 0 {
		cfg.PipCommand = defaults.PipCommand
	}
	return cfg, nil
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "pipsweep")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "pipsweep")
}
