package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/gastos-bot/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory with an empty HOME and no
// GASTOS_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{
		"GASTOS_LOG_LEVEL", "GASTOS_LOG_FORMAT",
		"GASTOS_CATALOG_FILE", "GASTOS_CATALOG_PAYMENT_METHODS_FILE",
		"GASTOS_REMOTE_ENABLED", "GASTOS_REMOTE_TIMEOUT_SECONDS",
		"GASTOS_DATABASE_URL", "DATABASE_URL",
		"GASTOS_PAYMENT_METHODS_CACHE_TTL_SECONDS",
		"GASTOS_CSV_DELIMITER",
		"GASTOS_METRICS_ENABLED", "GASTOS_METRICS_TEXTFILE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func TestInitializeConfig_Defaults(t *testing.T) {
	isolate(t)

	config, err := InitializeConfigFile("")
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Empty(t, config.Catalog.File)
	assert.Empty(t, config.Catalog.PaymentMethodsFile)
	assert.True(t, config.Remote.Enabled)
	assert.Equal(t, 3*time.Second, config.RemoteTimeout())
	assert.Empty(t, config.Database.URL)
	assert.False(t, config.RemoteAvailable())
	assert.Equal(t, 5*time.Minute, config.PaymentMethodsCacheTTL())
	assert.Equal(t, ',', config.CSVDelimiter())
	assert.False(t, config.Metrics.Enabled)
	assert.Empty(t, config.Metrics.Textfile)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)

	for key, value := range map[string]string{
		"GASTOS_LOG_LEVEL":                         "debug",
		"GASTOS_LOG_FORMAT":                        "json",
		"GASTOS_CATALOG_FILE":                      "/etc/gastos/catalog.yaml",
		"GASTOS_REMOTE_TIMEOUT_SECONDS":            "10",
		"GASTOS_PAYMENT_METHODS_CACHE_TTL_SECONDS": "0",
		"GASTOS_CSV_DELIMITER":                     ";",
		"GASTOS_METRICS_ENABLED":                   "true",
		"DATABASE_URL":                             "postgres://localhost/gastos",
	} {
		t.Setenv(key, value)
	}

	config, err := InitializeConfigFile("")
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "/etc/gastos/catalog.yaml", config.Catalog.File)
	assert.Equal(t, 10*time.Second, config.RemoteTimeout())
	assert.Zero(t, config.PaymentMethodsCacheTTL())
	assert.Equal(t, ';', config.CSVDelimiter())
	assert.True(t, config.Metrics.Enabled)
	assert.Equal(t, "postgres://localhost/gastos", config.Database.URL)
	assert.True(t, config.RemoteAvailable())
}

func TestInitializeConfig_PrefixedDatabaseURLWins(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_URL", "postgres://generic/db")
	t.Setenv("GASTOS_DATABASE_URL", "postgres://specific/db")

	config, err := InitializeConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://specific/db", config.Database.URL)
}

const testConfigYAML = `
log:
  level: "warn"
  format: "json"
catalog:
  file: "catalog.yaml"
remote:
  enabled: false
  timeout_seconds: 5
csv:
  delimiter: "|"
`

func TestInitializeConfig_ConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))

	config, err := InitializeConfigFile("")
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "catalog.yaml", config.Catalog.File)
	assert.False(t, config.Remote.Enabled)
	assert.Equal(t, 5*time.Second, config.RemoteTimeout())
	assert.Equal(t, '|', config.CSVDelimiter())
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))

	t.Setenv("GASTOS_LOG_LEVEL", "error")
	t.Setenv("GASTOS_REMOTE_TIMEOUT_SECONDS", "7")

	config, err := InitializeConfigFile("")
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)                      // env var wins
	assert.Equal(t, 7*time.Second, config.RemoteTimeout())          // env var wins
	assert.Equal(t, "json", config.Log.Format)                      // config file value
	assert.Equal(t, "catalog.yaml", config.Catalog.File)            // config file value
	assert.Equal(t, 5*time.Minute, config.PaymentMethodsCacheTTL()) // default
}

func TestInitializeConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o600))

	config, err := InitializeConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", config.Log.Level)

	_, err = InitializeConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestInitializeConfig_InvalidFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed"), 0o600))

	_, err := InitializeConfigFile("")
	assert.Error(t, err)
}

func TestInitializeConfig_InvalidEnv(t *testing.T) {
	isolate(t)
	t.Setenv("GASTOS_LOG_LEVEL", "verbose")

	_, err := InitializeConfigFile("")
	require.Error(t, err)

	var valErr *parsererror.ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "log.level", valErr.Key)
}

func validConfig() *Config {
	return &Config{
		Log:            LogConfig{Level: "info", Format: "text"},
		Remote:         RemoteConfig{Enabled: true, TimeoutSeconds: 3},
		PaymentMethods: PaymentMethodsConfig{CacheTTLSeconds: 300},
		CSV:            CSVConfig{Delimiter: ","},
	}
}

func TestValidateConfig(t *testing.T) {
	require.NoError(t, validateConfig(validConfig()))

	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectedKey  string
	}{
		{"invalid log level", func(c *Config) { c.Log.Level = "invalid" }, "log.level"},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }, "csv.delimiter"},
		{"long delimiter", func(c *Config) { c.CSV.Delimiter = "abc" }, "csv.delimiter"},
		{"zero timeout", func(c *Config) { c.Remote.TimeoutSeconds = 0 }, "remote.timeout_seconds"},
		{"huge timeout", func(c *Config) { c.Remote.TimeoutSeconds = 600 }, "remote.timeout_seconds"},
		{"negative ttl", func(c *Config) { c.PaymentMethods.CacheTTLSeconds = -1 }, "payment_methods.cache_ttl_seconds"},
		{"textfile without metrics", func(c *Config) { c.Metrics.Textfile = "/tmp/x.prom" }, "metrics.textfile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modifyConfig(config)

			err := validateConfig(config)
			require.Error(t, err)

			var valErr *parsererror.ValidationError
			require.True(t, errors.As(err, &valErr))
			assert.Equal(t, tt.expectedKey, valErr.Key)
			assert.Contains(t, err.Error(), "invalid "+tt.expectedKey)
		})
	}
}

func TestValidateConfig_CaseInsensitiveLogging(t *testing.T) {
	config := validConfig()
	config.Log.Level = "DEBUG"
	config.Log.Format = "JSON"
	assert.NoError(t, validateConfig(config))
}

func TestValidateConfig_MultibyteDelimiter(t *testing.T) {
	config := validConfig()
	config.CSV.Delimiter = "¦"
	require.NoError(t, validateConfig(config))
	assert.Equal(t, '¦', config.CSVDelimiter())
}
