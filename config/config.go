// Package config loads the CLI settings from a YAML file, POLYTEXT_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "POLYTEXT"

// Config holds the settings for rendering the app outside the browser.
type Config struct {
	// MountSelector is the id selector of the mount point in the shell document.
	MountSelector string `mapstructure:"mount_selector" validate:"required,startswith=#"`
	// ShellPath is the HTML document to mount into. Empty uses the built-in shell.
	ShellPath string `mapstructure:"shell_path"`
	// OutputPath is where the rendered document is written. Empty means stdout.
	OutputPath string `mapstructure:"output_path"`
	// Fragment writes only the sanitized app markup instead of the whole document.
	Fragment bool `mapstructure:"fragment"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mount_selector", "#root")
	v.SetDefault("shell_path", "")
	v.SetDefault("output_path", "")
	v.SetDefault("fragment", false)
	v.SetDefault("log_level", "info")
}

// Load reads configuration. When path is empty a polytext.yaml in the
// working directory is used if present. Flags that were set on the command
// line override file and environment values; flag names use dashes in place
// of the underscores in the keys (mount-selector, log-level, ...).
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("polytext")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags != nil {
		for _, key := range []string{"mount_selector", "shell_path", "output_path", "fragment", "log_level"} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level converts LogLevel to a zap level, defaulting to info.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
