package config

// Config represents the complete configuration structure
type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ClientConfig holds the Twitch application credentials
type ClientConfig struct {
	ID     string `mapstructure:"id"`
	Secret string `mapstructure:"secret"`
}

// APIConfig holds endpoint overrides, mainly useful for testing
type APIConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	TokenURL string `mapstructure:"token_url"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
