package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the tracker.
type Config struct {
	Source SourceConfig
	Output OutputConfig
	Daemon DaemonConfig
	Log    LogConfig
}

// SourceConfig describes the scraped site and how politely to hit it.
type SourceConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	CharLimit int
	RateLimit float64 // requests per second against the source site
}

// OutputConfig names the published artifacts. DestroyerPath and FeedPath
// may be empty to skip the destroyer page or the feed.
type OutputConfig struct {
	Path          string
	DestroyerPath string
	FeedPath      string
}

// DaemonConfig only applies with the -daemon flag.
type DaemonConfig struct {
	Interval time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Load loads configuration from defaults, an optional config file and
// FLEETTRACK_* environment variables, in increasing precedence.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("source.base_url", "http://uscarriers.net")
	v.SetDefault("source.timeout", 20)
	v.SetDefault("source.user_agent", defaultUserAgent)
	v.SetDefault("source.char_limit", 50000)
	v.SetDefault("source.rate_limit", 2.0)
	v.SetDefault("output.path", "index.html")
	v.SetDefault("output.destroyer_path", "destroyers.html")
	v.SetDefault("output.feed_path", "feed.xml")
	v.SetDefault("daemon.interval", 360)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/fleettrack")
	v.AddConfigPath(".")

	if configPath := os.Getenv("FLEETTRACK_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	// A missing config file is fine; defaults + env vars carry the run.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("FLEETTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Source: SourceConfig{
			BaseURL:   v.GetString("source.base_url"),
			Timeout:   time.Duration(v.GetInt("source.timeout")) * time.Second,
			UserAgent: v.GetString("source.user_agent"),
			CharLimit: v.GetInt("source.char_limit"),
			RateLimit: v.GetFloat64("source.rate_limit"),
		},
		Output: OutputConfig{
			Path:          v.GetString("output.path"),
			DestroyerPath: v.GetString("output.destroyer_path"),
			FeedPath:      v.GetString("output.feed_path"),
		},
		Daemon: DaemonConfig{
			Interval: time.Duration(v.GetInt("daemon.interval")) * time.Minute,
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values.
func validate(cfg *Config) error {
	if cfg.Source.BaseURL == "" {
		return fmt.Errorf("source.base_url is required")
	}

	if cfg.Source.Timeout <= 0 {
		return fmt.Errorf("source.timeout must be greater than 0")
	}

	if cfg.Source.CharLimit <= 0 {
		return fmt.Errorf("source.char_limit must be greater than 0")
	}

	// Zero disables pacing; negative would disable it silently.
	if cfg.Source.RateLimit < 0 {
		return fmt.Errorf("source.rate_limit must not be negative")
	}

	if cfg.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}

	if cfg.Daemon.Interval <= 0 {
		return fmt.Errorf("daemon.interval must be greater than 0")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}
