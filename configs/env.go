package configs

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName   string
	ContextPath       string
	OpenWeatherAPIKey string
}

var Env *EnvConfig

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Fail to load .env file: %v", err)
	}

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:   getStringOrDefault("APPLICATION_NAME", "weather-dashboard"),
		ContextPath:       getStringOrDefault("CONTEXT_PATH", "/weather-dashboard"),
		OpenWeatherAPIKey: viper.GetString("OPENWEATHER_API_KEY"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
