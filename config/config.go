package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the bot process.
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Sources   SourcesConfig   `mapstructure:"sources"`
	Server    ServerConfig    `mapstructure:"server"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	LogLevel       string        `mapstructure:"log_level"`
	DefaultTimeout time.Duration `mapstructure:"default_timeout"`
}

// TelegramConfig contains the bot credential and polling settings.
type TelegramConfig struct {
	Token         string `mapstructure:"token"`
	UpdateTimeout int    `mapstructure:"update_timeout"`
	Debug         bool   `mapstructure:"debug"`
}

func (t TelegramConfig) Validate() error {
	if strings.TrimSpace(t.Token) == "" {
		return fmt.Errorf("telegram.token is required")
	}
	return nil
}

// SourcesConfig contains news source configurations
type SourcesConfig struct {
	NewsAPI NewsAPIConfig `mapstructure:"newsapi"`
}

// NewsAPIConfig contains NewsAPI settings
type NewsAPIConfig struct {
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Language string `mapstructure:"language"`
	SortBy   string `mapstructure:"sort_by"`
	PageSize int    `mapstructure:"page_size"`
}

func (n NewsAPIConfig) Validate() error {
	if strings.TrimSpace(n.APIKey) == "" {
		return fmt.Errorf("sources.newsapi.api_key is required")
	}
	if n.PageSize <= 0 {
		return fmt.Errorf("sources.newsapi.page_size must be > 0")
	}
	return nil
}

// ServerConfig contains the ops HTTP surface settings.
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// TelemetryConfig contains metrics settings.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from an optional JSON file and NEWSPULSE_*
// environment variables. Credentials have no defaults: a missing Telegram
// token or NewsAPI key fails here, before any network call is attempted.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")

	v.SetDefault("general.log_level", "info")
	v.SetDefault("general.default_timeout", "10s")
	v.SetDefault("telegram.update_timeout", 30)
	v.SetDefault("telegram.debug", false)
	v.SetDefault("sources.newsapi.base_url", "https://newsapi.org/v2/everything")
	v.SetDefault("sources.newsapi.language", "en")
	v.SetDefault("sources.newsapi.sort_by", "publishedAt")
	v.SetDefault("sources.newsapi.page_size", 5)
	v.SetDefault("server.address", ":10001")
	v.SetDefault("telemetry.enabled", true)

	if path == "" {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		exe, _ := os.Executable()
		v.AddConfigPath(filepath.Dir(exe))
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("NEWSPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Credentials have no defaults, so viper needs explicit bindings for
	// Unmarshal to see them when they arrive via the environment.
	_ = v.BindEnv("telegram.token")
	_ = v.BindEnv("sources.newsapi.api_key")

	if err := v.ReadInConfig(); err != nil {
		// A config file is optional; the environment can carry everything.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Telegram.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Sources.NewsAPI.Validate(); err != nil {
		return nil, err
	}
	if cfg.General.DefaultTimeout <= 0 {
		cfg.General.DefaultTimeout = 10 * time.Second
	}

	return &cfg, nil
}
