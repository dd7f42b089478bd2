package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// CatalogConfig holds the remote catalog API configuration, including the
// basic-auth credential pair and the fixed request parameters every lookup
// carries.
type CatalogConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`

	// Authentication
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// Fixed lookup parameters
	Country    string `mapstructure:"country"`
	LanguageID string `mapstructure:"language_id"`
	ProductID  string `mapstructure:"product_id"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config.yaml file not found in current directory")
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("catalog.base_url", "https://api.royal-canin.ru")
	viper.SetDefault("catalog.timeout", 30)
	viper.SetDefault("catalog.max_requests_per_second", 5)
	viper.SetDefault("catalog.username", "")
	viper.SetDefault("catalog.password", "")
	viper.SetDefault("catalog.country", "ru")
	viper.SetDefault("catalog.language_id", "1")
	viper.SetDefault("catalog.product_id", "0")
}
