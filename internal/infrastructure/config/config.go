package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Logging     LogConfig
	RateLimit   RateLimitConfig
	Namespace   NamespaceConfig
	Persistence PersistenceConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// NamespaceConfig holds engine behaviour settings.
type NamespaceConfig struct {
	Home        string `envconfig:"VFS_HOME" default:"/home/user"`
	PatternMode string `envconfig:"VFS_PATTERN_MODE" default:"lite"`
}

// Store backends
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreBadger = "badger"
)

// PersistenceConfig selects where and how namespace state is saved.
type PersistenceConfig struct {
	Store       string `envconfig:"VFS_STORE" default:"file"`
	Path        string `envconfig:"VFS_STORE_PATH" default:"/tmp/ai-os-storage/vfs"`
	Key         string `envconfig:"VFS_STATE_KEY" default:"vfs.state"`
	Codec       string `envconfig:"VFS_CODEC" default:"json"`
	Compression string `envconfig:"VFS_COMPRESSION" default:"none"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Namespace: NamespaceConfig{
			Home:        "/home/user",
			PatternMode: "lite",
		},
		Persistence: PersistenceConfig{
			Store:       StoreFile,
			Path:        "/tmp/ai-os-storage/vfs",
			Key:         "vfs.state",
			Codec:       "json",
			Compression: "none",
		},
	}
}

// Validate checks enumerated settings that envconfig cannot.
func (c *Config) Validate() error {
	switch c.Persistence.Store {
	case StoreMemory, StoreFile, StoreBadger:
	default:
		return fmt.Errorf("invalid VFS_STORE %q: want memory, file or badger", c.Persistence.Store)
	}
	if c.Persistence.Store != StoreMemory && c.Persistence.Path == "" {
		return fmt.Errorf("VFS_STORE_PATH is required for the %s store", c.Persistence.Store)
	}
	if c.Namespace.Home == "" || c.Namespace.Home[0] != '/' {
		return fmt.Errorf("invalid VFS_HOME %q: must be absolute", c.Namespace.Home)
	}
	return nil
}
