package configs

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	LogLevel        string
}

var Env *EnvConfig

func init() {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-watchlist"),
		LogLevel:        getStringOrDefault("LOG_LEVEL", "info"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
