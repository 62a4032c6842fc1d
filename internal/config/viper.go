// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/gastos-bot/internal/parsererror"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the application.
const EnvPrefix = "GASTOS"

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CatalogConfig points at optional catalog override files. Empty paths use
// the catalogs embedded in the binary.
type CatalogConfig struct {
	File               string `mapstructure:"file" yaml:"file"`
	PaymentMethodsFile string `mapstructure:"payment_methods_file" yaml:"payment_methods_file"`
}

// RemoteConfig controls the REMOTE_FALLBACK classification tier.
type RemoteConfig struct {
	Enabled        bool `mapstructure:"enabled" yaml:"enabled"`
	TimeoutSeconds int  `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// DatabaseConfig holds the Postgres connection string.
type DatabaseConfig struct {
	URL string `mapstructure:"url" yaml:"-"` // never serialize credentials
}

// PaymentMethodsConfig controls payment catalog caching.
type PaymentMethodsConfig struct {
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
}

// CSVConfig controls batch CSV input and output.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// MetricsConfig controls the Prometheus metrics dump.
type MetricsConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Textfile string `mapstructure:"textfile" yaml:"textfile"`
}

// Config represents the complete application configuration
type Config struct {
	Log            LogConfig            `mapstructure:"log" yaml:"log"`
	Catalog        CatalogConfig        `mapstructure:"catalog" yaml:"catalog"`
	Remote         RemoteConfig         `mapstructure:"remote" yaml:"remote"`
	Database       DatabaseConfig       `mapstructure:"database" yaml:"database"`
	PaymentMethods PaymentMethodsConfig `mapstructure:"payment_methods" yaml:"payment_methods"`
	CSV            CSVConfig            `mapstructure:"csv" yaml:"csv"`
	Metrics        MetricsConfig        `mapstructure:"metrics" yaml:"metrics"`
}

// RemoteTimeout returns the remote lookup timeout.
func (c *Config) RemoteTimeout() time.Duration {
	return time.Duration(c.Remote.TimeoutSeconds) * time.Second
}

// PaymentMethodsCacheTTL returns how long a loaded payment catalog is reused.
func (c *Config) PaymentMethodsCacheTTL() time.Duration {
	return time.Duration(c.PaymentMethods.CacheTTLSeconds) * time.Second
}

// CSVDelimiter returns the CSV delimiter as a rune.
func (c *Config) CSVDelimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}

// InitializeConfigFile loads configuration from defaults, the config file at
// path, and GASTOS_* environment variables, in increasing order of
// precedence. An empty path uses the first config.yaml found in
// $HOME/.gastos, .gastos or the working directory.
func InitializeConfigFile(path string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.gastos")
		v.AddConfigPath(".gastos")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. The connection string also comes from the conventional variable
	if err := v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DATABASE_URL: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.payment_methods_file", "")

	v.SetDefault("remote.enabled", true)
	v.SetDefault("remote.timeout_seconds", 3)

	v.SetDefault("database.url", "")

	v.SetDefault("payment_methods.cache_ttl_seconds", 300)

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.textfile", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(strings.ToLower(config.Log.Level)); err != nil {
		return &parsererror.ValidationError{Key: "log.level", Reason: fmt.Sprintf("unknown level %q", config.Log.Level), Err: err}
	}

	format := strings.ToLower(config.Log.Format)
	if format != "text" && format != "json" {
		return &parsererror.ValidationError{Key: "log.format", Reason: fmt.Sprintf("%q (must be 'text' or 'json')", config.Log.Format)}
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return &parsererror.ValidationError{Key: "csv.delimiter", Reason: fmt.Sprintf("must be a single character, got %q", config.CSV.Delimiter)}
	}

	if config.Remote.TimeoutSeconds < 1 || config.Remote.TimeoutSeconds > 60 {
		return &parsererror.ValidationError{Key: "remote.timeout_seconds", Reason: fmt.Sprintf("must be between 1 and 60, got %d", config.Remote.TimeoutSeconds)}
	}

	if config.PaymentMethods.CacheTTLSeconds < 0 {
		return &parsererror.ValidationError{Key: "payment_methods.cache_ttl_seconds", Reason: fmt.Sprintf("must not be negative, got %d", config.PaymentMethods.CacheTTLSeconds)}
	}

	if config.Metrics.Textfile != "" && !config.Metrics.Enabled {
		return &parsererror.ValidationError{Key: "metrics.textfile", Reason: "requires metrics.enabled"}
	}

	return nil
}

// RemoteAvailable reports whether the REMOTE_FALLBACK tier can be wired.
func (c *Config) RemoteAvailable() bool {
	return c.Remote.Enabled && c.Database.URL != ""
}
