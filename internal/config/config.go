// SPDX-License-Identifier: MIT

// Package config provides configuration management for the intmat command
// using Viper for layered loading from defaults, a YAML file, environment
// variables and command-line flags.
//
// Precedence (highest first): flags bound to the Viper instance, INTMAT_*
// environment variables (INTMAT_LOG_LEVEL, INTMAT_WORKERS, ...), the config
// file (.intmat.yaml by default), then the defaults below.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "INTMAT"

// Default values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultWorkers   = 0 // 0 ⇒ GOMAXPROCS
	DefaultBenchSize = 1000
	DefaultBenchSeed = 1
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Log     LogConfig   `mapstructure:"log" yaml:"log"`
	Workers int         `mapstructure:"workers" yaml:"workers"`
	Bench   BenchConfig `mapstructure:"bench" yaml:"bench"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type BenchConfig struct {
	Size int   `mapstructure:"size" yaml:"size"`
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// New returns a Viper instance with defaults and environment binding applied.
// When file is non-empty it is used as the config file, otherwise
// .intmat.yaml is searched for in the working directory.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".intmat")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// SetDefaults registers every default on v. Registering a key also makes it
// visible to AutomaticEnv during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("bench.size", DefaultBenchSize)
	v.SetDefault("bench.seed", DefaultBenchSeed)
}

// ReadFile reads the configured file. A missing default file is not an
// error; a missing explicit file is.
func ReadFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return fmt.Errorf("failed to read config file: %w", err)
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &config, nil
}

// validateConfig validates configuration values
func validateConfig(config *Config) error {
	switch strings.ToLower(config.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", config.Log.Level)
	}
	switch strings.ToLower(config.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q is not one of text, json", config.Log.Format)
	}
	if config.Workers < 0 {
		return fmt.Errorf("workers %d must be >= 0", config.Workers)
	}
	if config.Bench.Size < 1 {
		return fmt.Errorf("bench.size %d must be >= 1", config.Bench.Size)
	}
	// N×N int64 elements must stay addressable.
	if config.Bench.Size > int(math.Sqrt(math.MaxInt32)) {
		return fmt.Errorf("bench.size %d is too large", config.Bench.Size)
	}

	return nil
}
