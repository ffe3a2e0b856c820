package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete govlens configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Data      DataConfig      `json:"data" mapstructure:"data"`
	HTTP      HTTPConfig      `json:"http" mapstructure:"http"`
	Analytics AnalyticsConfig `json:"analytics" mapstructure:"analytics"`
	Logging   LoggingConfig   `json:"logging" mapstructure:"logging"`
}

// DataConfig locates the governance tables
type DataConfig struct {
	// BaseURL is the directory URL the table files are served from
	BaseURL string `json:"baseUrl" mapstructure:"baseUrl"`
	// DataVersion is appended to table URLs as a cache buster; the refresh
	// metadata timestamp overrides it when available
	DataVersion string `json:"dataVersion" mapstructure:"dataVersion"`
}

// HTTPConfig contains transfer settings for the table fetcher
type HTTPConfig struct {
	TimeoutMs        int `json:"timeoutMs" mapstructure:"timeoutMs"`
	MaxRetries       int `json:"maxRetries" mapstructure:"maxRetries"`
	RetryBaseDelayMs int `json:"retryBaseDelayMs" mapstructure:"retryBaseDelayMs"`
}

// AnalyticsConfig contains result-size limits for the aggregators
type AnalyticsConfig struct {
	TopFieldLimit      int `json:"topFieldLimit" mapstructure:"topFieldLimit"`
	CrossTabFieldLimit int `json:"crossTabFieldLimit" mapstructure:"crossTabFieldLimit"`
	ImpactRowLimit     int `json:"impactRowLimit" mapstructure:"impactRowLimit"`
	StaleAfterDays     int `json:"staleAfterDays" mapstructure:"staleAfterDays"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Data: DataConfig{
			BaseURL: "https://raw.githubusercontent.com/Johns329/braze-dashboard-cloud/main/data/tables",
		},
		HTTP: HTTPConfig{
			TimeoutMs:        30000,
			MaxRetries:       3,
			RetryBaseDelayMs: 250,
		},
		Analytics: AnalyticsConfig{
			TopFieldLimit:      15,
			CrossTabFieldLimit: 20,
			ImpactRowLimit:     50,
			StaleAfterDays:     90,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .govlens/config.json
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("data.baseUrl", defaults.Data.BaseURL)
	v.SetDefault("http.timeoutMs", defaults.HTTP.TimeoutMs)
	v.SetDefault("http.maxRetries", defaults.HTTP.MaxRetries)
	v.SetDefault("http.retryBaseDelayMs", defaults.HTTP.RetryBaseDelayMs)
	v.SetDefault("analytics.topFieldLimit", defaults.Analytics.TopFieldLimit)
	v.SetDefault("analytics.crossTabFieldLimit", defaults.Analytics.CrossTabFieldLimit)
	v.SetDefault("analytics.impactRowLimit", defaults.Analytics.ImpactRowLimit)
	v.SetDefault("analytics.staleAfterDays", defaults.Analytics.StaleAfterDays)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".govlens"))

	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to .govlens/config.json
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".govlens")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Data.BaseURL == "" {
		return &ConfigError{Field: "data.baseUrl", Message: "data base URL is required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
