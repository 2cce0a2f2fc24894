package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Upload    UploadConfig    `mapstructure:"upload"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Storage.DataDir == "" || c.Storage.DataFile == "" {
		return errors.New("storage.data_dir and storage.data_file are required")
	}
	if c.Upload.MaxFileSize <= 0 {
		return errors.New("upload.max_file_size must be positive")
	}
	if c.Admin.Password == "" {
		return errors.New("admin.password is required")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// StorageConfig describes the roster document location.
type StorageConfig struct {
	DataDir  string `mapstructure:"data_dir"`
	DataFile string `mapstructure:"data_file"`
}

// DataPath returns the full path of the roster document.
func (s StorageConfig) DataPath() string {
	return filepath.Join(s.DataDir, s.DataFile)
}

// UploadConfig bounds incoming file batches.
type UploadConfig struct {
	MaxFileSize int64 `mapstructure:"max_file_size"`
}

// RateLimitConfig sets fixed-window quotas per client identifier.
type RateLimitConfig struct {
	Window         time.Duration `mapstructure:"window"`
	UploadRequests int           `mapstructure:"upload_requests"`
	ManualRequests int           `mapstructure:"manual_requests"`
}

// AdminConfig carries the pass/fail admin credentials and token lifetime.
type AdminConfig struct {
	User     string        `mapstructure:"user"`
	Password string        `mapstructure:"password"`
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

// GeminiConfig configures the AI analysis collaborator.
type GeminiConfig struct {
	Model  string `mapstructure:"model"`
	APIKey string `mapstructure:"api_key"`
}
