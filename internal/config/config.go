package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines the application configuration, shared by the CLI and the
// document-store server.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Cache  CacheConfig  `yaml:"cache"`
	Remote RemoteConfig `yaml:"remote"`
	Store  StoreConfig  `yaml:"store"`
	Sync   SyncConfig   `yaml:"sync"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CacheConfig names the local cache database. An empty path means the
// per-user default location.
type CacheConfig struct {
	Path string `yaml:"path"`
}

// RemoteConfig points the client at a document-store server. An empty URL
// runs the app local-only.
type RemoteConfig struct {
	URL string `yaml:"url"`
}

// StoreConfig selects the server's backend: "sqlite" (default) or "postgres".
type StoreConfig struct {
	Driver      string `yaml:"driver"`
	Path        string `yaml:"path"`
	DatabaseURL string `yaml:"database_url"`
}

// SyncConfig tunes the remote write-back quiet period.
type SyncConfig struct {
	SaveDelay time.Duration `yaml:"-"`
}

// UnmarshalYAML accepts save_delay as a duration string ("2s", "500ms").
func (c *SyncConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		SaveDelay string `yaml:"save_delay"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.SaveDelay == "" {
		return nil
	}
	delay, err := time.ParseDuration(raw.SaveDelay)
	if err != nil {
		return fmt.Errorf("invalid save_delay: %w", err)
	}
	c.SaveDelay = delay
	return nil
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8990,
		},
		Store: StoreConfig{
			Driver: "sqlite",
			Path:   "founder-store.db",
		},
		Sync: SyncConfig{
			SaveDelay: 2 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("FOUNDER_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("FOUNDER_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("FOUNDER_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FOUNDER_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if path := os.Getenv("FOUNDER_CACHE_PATH"); path != "" {
		cfg.Cache.Path = path
	}
	if url := os.Getenv("FOUNDER_REMOTE_URL"); url != "" {
		cfg.Remote.URL = url
	}
	if driver := os.Getenv("FOUNDER_STORE_DRIVER"); driver != "" {
		cfg.Store.Driver = driver
	}
	if path := os.Getenv("FOUNDER_STORE_PATH"); path != "" {
		cfg.Store.Path = path
	}
	if dsn := os.Getenv("FOUNDER_DATABASE_URL"); dsn != "" {
		cfg.Store.DatabaseURL = dsn
	}
	if delayStr := os.Getenv("FOUNDER_SAVE_DELAY"); delayStr != "" {
		delay, err := time.ParseDuration(delayStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FOUNDER_SAVE_DELAY: %w", err)
		}
		cfg.Sync.SaveDelay = delay
	}
	if level := os.Getenv("FOUNDER_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
