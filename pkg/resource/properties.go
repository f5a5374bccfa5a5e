package resource

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// defaults applied before the YAML file so every key resolves even without configs/application.yml
var defaults = map[string]any{
	"app.server.port":              "8080",
	"app.server.context-path":      "/weather-dashboard",
	"app.weather.base-url":         "https://api.openweathermap.org/data/2.5",
	"app.weather.geocoding-url":    "https://api.openweathermap.org/geo/1.0",
	"app.weather.timeout":          "10s",
	"app.weather.max-retries":      3,
	"app.weather.backoff-factor":   "1s",
	"app.weather.max-backoff":      "30s",
	"app.weather.batch.interval":   "100ms",
	"app.weather.batch.max-cities": 10,
	"app.weather.default-city":     "London",
	"app.weather.default-units":    "metric",
	"app.weather.search-limit":     10,
	"app.history.backend":          "memory",
	"app.history.size":             10,
	"app.history.key":              "weather::search-history",
	"app.cache.enabled":            false,
	"app.cache.ttl":                "600s",
	"app.redis.host":               "localhost",
	"app.redis.port":               6379,
	"app.redis.password":           "",
	"app.redis.database":           0,
	"app.schedule.enabled":         false,
	"app.schedule.cron":            "@every 10m",
	"app.schedule.cities":          []string{"London", "Paris", "Tokyo", "New York"},
}

// init loads application properties from YAML
func init() {
	var value, ok = os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	Init(value)
}

// Init resets the properties to their defaults and loads filepath on top of them.
// A missing file keeps the defaults; an unreadable one is fatal.
func Init(filepath string) {
	properties = viper.New()
	for key, value := range defaults {
		properties.SetDefault(key, value)
	}

	properties.SetConfigFile(filepath)
	properties.SetConfigType("yml")

	if err := properties.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Properties file %s not found, using defaults", filepath)
			return
		}
		log.Fatalf("Fail to read properties: %v", err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", properties.AllSettings(), resolved)

	for key, value := range resolved {
		properties.Set(key, value)
	}
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolvedValue, ok := resolveEnvVariable(v); ok {
				result[fullKey] = resolvedValue
			}
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		}
	}
}

// resolveEnvVariable expands a ${ENV:default} value. Plain strings are left untouched.
func resolveEnvVariable(value string) (any, bool) {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return nil, false
	}

	envName := matches[1]
	defaultValue := ""
	if len(matches) > 2 {
		defaultValue = matches[2]
	}

	if envValue, exists := os.LookupEnv(envName); exists {
		return envValue, true
	}
	return defaultValue, true
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
