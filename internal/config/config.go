package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	Port            string `mapstructure:"PORT"`
	BcryptCost      int    `mapstructure:"BCRYPT_COST"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
	SecureCookies   bool   `mapstructure:"SECURE_COOKIES"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("SECURE_COOKIES", false)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
