// Package config loads client configuration from a YAML file and IGDB_*
// environment variables. The igdb package itself never requires it; it is
// the configuration surface for applications embedding the client.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment. With an empty
// configPath the standard locations are searched and a missing file is
// tolerated, so environment-only setups work.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// IGDB_CLIENT_ID, IGDB_CLIENT_SECRET, IGDB_LOGGING_LEVEL, ...
	v.SetEnvPrefix("igdb")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Credentials have no defaults; bind them so env-only values survive
	// Unmarshal.
	v.MustBindEnv("client.id")
	v.MustBindEnv("client.secret")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".igdb"))
		}

		// Check /etc
		v.AddConfigPath("/etc/igdb/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		// No file in the search path; environment alone may suffice.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.base_url", "https://api.igdb.com/v4")
	v.SetDefault("api.token_url", "https://id.twitch.tv/oauth2/token")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Client.ID == "" {
		return fmt.Errorf("client.id is required")
	}

	if cfg.Client.Secret == "" || cfg.Client.Secret == "your-client-secret-here" {
		return fmt.Errorf("client.secret is required")
	}

	switch cfg.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %s", cfg.Logging.Level)
	}

	return nil
}
