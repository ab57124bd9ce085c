package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage drivers selectable at startup. The driver is chosen once in main;
// no call site branches on it afterwards.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Gemini    GeminiConfig
	Storage   StorageConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig configures the language-understanding/generation service.
// An empty APIKey is valid: every component falls back to its deterministic
// local path.
type GeminiConfig struct {
	APIKey string
}

type StorageConfig struct {
	Driver      string
	PostgresDSN string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Storage.PostgresDSN = viper.GetString("storage.postgres_dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Storage.PostgresDSN = dsn
	}
	if err := validateStorage(cfg.Storage); err != nil {
		return nil, err
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.driver", StorageDriverMemory)
	viper.SetDefault("rate_limit.per_min", 120)
}

func validateStorage(cfg StorageConfig) error {
	switch cfg.Driver {
	case StorageDriverMemory:
		return nil
	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return fmt.Errorf("storage.postgres_dsn is required when storage.driver is %q", StorageDriverPostgres)
		}
		return nil
	default:
		return fmt.Errorf("unknown storage.driver %q (expected %q or %q)",
			cfg.Driver, StorageDriverMemory, StorageDriverPostgres)
	}
}
