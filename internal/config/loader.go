package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/maxviazov/cricket-roster-service/internal/generator"
)

// Load reads the YAML file at path. Every key can be overridden with APP_<SECTION>_<KEY>;
// the Gemini key is also read from GEMINI_API_KEY.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	return decode(v)
}

// LoadOrDefault is Load for tools that may run without a config file: an empty path or
// a missing file falls back to defaults plus environment.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return decode(newViper())
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return decode(newViper())
	}
	return Load(path)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	_ = v.BindEnv("generator.api_key", "APP_GENERATOR_API_KEY", "GEMINI_API_KEY")
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "cricket-roster-service")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.shutdown_timeout", 10*time.Second)

	v.SetDefault("logger.env", "dev")
	v.SetDefault("logger.level", "info")

	v.SetDefault("roster.default_team_name", "Team 1")
	v.SetDefault("roster.max_team_size", 6)
	v.SetDefault("roster.allowed_team_sizes", []int{5, 6})
	v.SetDefault("roster.initial_pool_size", 30)

	v.SetDefault("generator.provider", ProviderGemini)
	v.SetDefault("generator.api_key", "")
	v.SetDefault("generator.model", generator.DefaultGeminiModel)
	v.SetDefault("generator.base_url", generator.GeminiURL)
	v.SetDefault("generator.timeout", 60*time.Second)
	v.SetDefault("generator.seed", 1)
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if config.Logger.ServiceName == "" {
		config.Logger.ServiceName = config.App.Name
	}
	if config.Logger.ServiceVersion == "" {
		config.Logger.ServiceVersion = config.App.Version
	}
	return &config, nil
}
