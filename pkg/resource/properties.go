package resource

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"weather-watchlist/configs"
)

var (
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads application properties from YAML. PROPERTIES_FILE_PATH points to an external file,
// otherwise the bundled configs/application.yml is used.
func init() {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		if err := Init(value); err != nil {
			log.Fatalf("Fail to read properties: %v", err)
		}
		return
	}
	if err := Load(configs.Application); err != nil {
		log.Fatalf("Fail to read bundled properties: %v", err)
	}
}

// Init replaces the loaded properties with the YAML file at filepath.
func Init(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("read properties %s: %w", filepath, err)
	}
	return Load(content)
}

// Load replaces the loaded properties with the given YAML document.
func Load(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	for key, value := range resolved {
		v.Set(key, value)
	}

	properties = v
	return nil
}

// Set overrides a single property. Intended for tests and command line flags.
func Set(key string, value any) {
	properties.Set(key, value)
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
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]interface{}:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable expands a ${ENV:default} placeholder. Plain values are returned unchanged.
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
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

func GetInt64(key string) int64 {
	return properties.GetInt64(key)
}

func GetFloat64(key string) float64 {
	return properties.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
