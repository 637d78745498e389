package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg is the globally accessible configuration instance.
var Cfg *Config

// LoadConfig reads the config file and populates Cfg.
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("jwt.expire_hours", 24)
	viper.SetDefault("ai.timeout_seconds", 20)

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}
