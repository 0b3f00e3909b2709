package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"color-api/core/logger"
	"color-api/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// envAliases lists extra environment variables accepted for a key, after the derived one.
var envAliases = map[string][]string{
	"server.port": {"PORT"},
}

// LoadConfig loads configuration from environment variables and the .env file in path.
func LoadConfig(path string) (*Config, error) {
	// Missing .env is fine (e.g. production)
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Registers every key with its default so AutomaticEnv can resolve it
	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	replacer := strings.NewReplacer(".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	for key, aliases := range envAliases {
		names := append([]string{strings.ToUpper(replacer.Replace(key))}, aliases...)
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers a Viper default for every field
// from its 'mapstructure' and 'default' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Set even when empty to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
