package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for our application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Provider ProviderConfig `mapstructure:"provider"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	HTTPPort int    `mapstructure:"http_port"`
}

// DatabaseConfig holds storage configuration. The default is a local sqlite
// file; postgres is supported for shared deployments.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	LogSQL bool   `mapstructure:"log_sql"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ProviderConfig holds the AI content provider settings. An empty API key
// disables remote lookups; word details then fall back to placeholders.
type ProviderConfig struct {
	APIKey         string `mapstructure:"api_key"`
	BaseURL        string `mapstructure:"base_url"`
	TextModel      string `mapstructure:"text_model"`
	ImageModel     string `mapstructure:"image_model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Enable reading from environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read configuration file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.http_port", 8080)

	// Database defaults
	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.dsn", "blinkvocab.db")
	viper.SetDefault("database.log_sql", false)

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")

	// Provider defaults
	viper.SetDefault("provider.api_key", "")
	viper.SetDefault("provider.base_url", "https://generativelanguage.googleapis.com")
	viper.SetDefault("provider.text_model", "gemini-2.5-flash")
	viper.SetDefault("provider.image_model", "gemini-2.5-flash-image")
	viper.SetDefault("provider.timeout_seconds", 30)
}

// DatabaseDriver validates and returns the configured driver name.
func (c *Config) DatabaseDriver() (string, error) {
	driver := strings.TrimSpace(strings.ToLower(c.Database.Driver))
	switch driver {
	case "sqlite3", "postgres":
		return driver, nil
	case "":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
}

// DatabaseDSN returns the configured DSN.
func (c *Config) DatabaseDSN() string {
	return c.Database.DSN
}
