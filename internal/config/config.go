// Package config manages application configuration from default values,
// an optional YAML file, and BOT_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config defines the application configuration parameters for all
// components of the bot: LINE transport credentials, catalog API access,
// HTTP server settings, and logging.
type Config struct {
	Line   LineConfig   `mapstructure:"line"`
	RAWG   RAWGConfig   `mapstructure:"rawg"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// LineConfig holds the LINE messaging platform credentials.
type LineConfig struct {
	ChannelToken  string `mapstructure:"channel_token"  validate:"required"`
	ChannelSecret string `mapstructure:"channel_secret" validate:"required"`
}

// RAWGConfig holds access settings for the RAWG game catalog API.
type RAWGConfig struct {
	APIKey  string        `mapstructure:"api_key"  validate:"required"`
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout"  validate:"required,min=1s,max=2m"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// Load loads and validates configuration from:
// 1. Default values
// 2. The config file at path (missing file is allowed)
// 3. BOT_* environment variables
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay, we'll use defaults and env.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// setDefaults sets default values for optional configuration parameters.
// Secrets default to empty strings so the keys are registered with viper
// and can be populated from environment variables alone.
func setDefaults(v *viper.Viper) {
	v.SetDefault("line.channel_token", "")
	v.SetDefault("line.channel_secret", "")

	v.SetDefault("rawg.api_key", "")
	v.SetDefault("rawg.base_url", "https://api.rawg.io/api")
	v.SetDefault("rawg.timeout", 10*time.Second)

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", true)
}
