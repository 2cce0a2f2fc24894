// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 10*time.Second)

	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("storage.data_file", "data.json")

	v.SetDefault("upload.max_file_size", 10*1024*1024)

	v.SetDefault("ratelimit.window", time.Minute)
	v.SetDefault("ratelimit.upload_requests", 5)
	v.SetDefault("ratelimit.manual_requests", 10)

	v.SetDefault("admin.user", "admin")
	v.SetDefault("admin.password", "")
	v.SetDefault("admin.token_ttl", time.Hour)

	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.api_key", "")
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"storage.data_dir",
		"storage.data_file",
		"upload.max_file_size",
		"ratelimit.window",
		"ratelimit.upload_requests",
		"ratelimit.manual_requests",
		"admin.user",
		"admin.password",
		"admin.token_ttl",
		"gemini.model",
		"gemini.api_key",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
