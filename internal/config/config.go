// Package config loads the runtime configuration for the entropy CLI via
// Viper. The core walk package takes plain value structs and never reads
// configuration files itself; this package only serves the command layer.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. ENTROPY_LOGGER_LEVEL.
const envPrefix = "ENTROPY"

// LoggerConfig controls the global zap logger.
type LoggerConfig struct {
	// Level is a zap level string: debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format selects the console or json encoder.
	Format string `mapstructure:"format"`
	// ServiceName names the root logger.
	ServiceName string `mapstructure:"service_name"`
	// AddSource attaches caller information to each entry.
	AddSource bool `mapstructure:"add_source"`

	// LogFile enables an additional JSON file sink when non-empty.
	// Rotation is handled by lumberjack.
	LogFile    string `mapstructure:"log_file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// WalkConfig holds the default walk parameters used by the CLI when the
// corresponding flags are not set.
type WalkConfig struct {
	Steps            int     `mapstructure:"steps"`
	Walkers          int     `mapstructure:"walkers"`
	Seed             int64   `mapstructure:"seed"`
	MinSpeed         float64 `mapstructure:"min_speed"`
	MaxSpeed         float64 `mapstructure:"max_speed"`
	Pattern          string  `mapstructure:"pattern"`
	RandomStart      bool    `mapstructure:"random_start"`
	StartRangeFactor float64 `mapstructure:"start_range_factor"`
}

// NoiseConfig holds the default noise sampler parameters.
type NoiseConfig struct {
	Seed      int64   `mapstructure:"seed"`
	Frequency float64 `mapstructure:"frequency"`
}

// Config is the full CLI configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
	Walk   WalkConfig   `mapstructure:"walk"`
	Noise  NoiseConfig  `mapstructure:"noise"`
}

// setDefaults registers every key so AutomaticEnv picks them up and a bare
// run works without any config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "entropy")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("walk.steps", 100)
	v.SetDefault("walk.walkers", 3)
	v.SetDefault("walk.seed", 1337)
	v.SetDefault("walk.min_speed", 1.0)
	v.SetDefault("walk.max_speed", 3.0)
	v.SetDefault("walk.pattern", "moore")
	v.SetDefault("walk.random_start", true)
	v.SetDefault("walk.start_range_factor", 1.0)

	v.SetDefault("noise.seed", 42)
	v.SetDefault("noise.frequency", 0.05)
}

// Load reads the configuration from the optional file at path, applies
// environment overrides and returns the resolved Config. A missing file is
// an error only when a path was explicitly given.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	return &cfg, nil
}
