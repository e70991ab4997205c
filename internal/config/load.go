// Package config loads and validates application configuration from
// environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config.yaml in the working
// directory and from environment variables with the ARMARIO_ prefix
// (e.g. ARMARIO_DATABASE_URL, ARMARIO_AUTH_SUPABASE_KEY). Environment
// variables take precedence over file values.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep a bare environment bootable with just the secrets set.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.provider", "supabase")
	v.SetDefault("auth.provider_timeout_seconds", 5)
	v.SetDefault("auth.default_display_name", "Usuario")

	// Keys without a meaningful default still need to be known to viper,
	// otherwise AutomaticEnv values are not seen by Unmarshal.
	v.SetDefault("database.url", "")
	v.SetDefault("auth.supabase_url", "")
	v.SetDefault("auth.supabase_key", "")
	v.SetDefault("auth.local_secret", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ARMARIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything can come from the env.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
