package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	ListenAddr             string        `mapstructure:"listen_addr"`
	APIBaseURL             string        `mapstructure:"api_base_url"`
	RequestTimeoutSeconds  int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout         time.Duration `mapstructure:"-"`
	ShutdownTimeoutSeconds int64         `mapstructure:"shutdown_timeout_seconds"`
	ShutdownTimeout        time.Duration `mapstructure:"-"`
	CORSOrigins            string        `mapstructure:"cors_allowed_origins"`
	AllowedOrigins         []string      `mapstructure:"-"`
	ActivityLimit          int           `mapstructure:"activity_limit"`
	PublishersFile         string        `mapstructure:"publishers_file"`
	DemoAPIAddr            string        `mapstructure:"demo_api_addr"`

	StorageType            string        `mapstructure:"storage_type"`
	BBoltPath              string        `mapstructure:"bbolt_path"`
	StorageTTLSeconds      int64         `mapstructure:"storage_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	StorageTTL             time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "storefront-console")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("listen_addr", ":8090")
	v.SetDefault("api_base_url", "http://localhost:8080")
	v.SetDefault("request_timeout_seconds", 0) // 0 leaves API calls unbounded
	v.SetDefault("shutdown_timeout_seconds", 15)
	v.SetDefault("cors_allowed_origins", "")
	v.SetDefault("activity_limit", 20)
	v.SetDefault("publishers_file", "")
	v.SetDefault("demo_api_addr", ":8080")
	v.SetDefault("storage_type", "none")
	v.SetDefault("bbolt_path", "./data/activity.db")
	v.SetDefault("storage_ttl_seconds", int64((7*24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64(time.Hour/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return nil, fmt.Errorf("invalid listen_addr (must not be empty)")
	}
	if cfg.RequestTimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be zero or positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	if cfg.ShutdownTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid shutdown_timeout_seconds (must be positive seconds)")
	}
	cfg.ShutdownTimeout = time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second

	if cfg.ActivityLimit <= 0 {
		return nil, fmt.Errorf("invalid activity_limit (must be positive)")
	}
	cfg.AllowedOrigins = splitList(cfg.CORSOrigins)

	if cfg.StorageTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_ttl_seconds (must be positive seconds)")
	}
	if cfg.StorageCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.StorageTTL = time.Duration(cfg.StorageTTLSeconds) * time.Second
	cfg.StorageCleanupInterval = time.Duration(cfg.StorageCleanupSeconds) * time.Second

	return &cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
