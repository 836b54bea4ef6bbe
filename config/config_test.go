package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "test-app",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:            "8080",
			ShutdownTimeout: 30 * time.Second,
		},
		Dataset: DatasetConfig{
			URL:          "https://example.com/main_data.csv",
			FetchTimeout: time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func TestNewConfig(t *testing.T) {
	// Test with default values (without config file)
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "airquality-dashboard", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 30*time.Second, config.Server.ShutdownTimeout)
	assert.Equal(t, DefaultDatasetURL, config.Dataset.URL)
	assert.Equal(t, 60*time.Second, config.Dataset.FetchTimeout)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "Copyright © Zayadi 2024", config.Dashboard.Caption)
	assert.Empty(t, config.Sentry.DSN)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATASET_URL", "file:///tmp/data.csv")
	t.Setenv("DATASET_FETCH_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "2.0.0", config.App.Version)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "file:///tmp/data.csv", config.Dataset.URL)
	assert.Equal(t, 5*time.Second, config.Dataset.FetchTimeout)
	assert.Equal(t, "debug", config.Log.Level)
	assert.True(t, config.IsProduction())
}

func TestConfigFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlData := `
app:
  name: yaml-app
  env: prod
server:
  port: "7070"
dataset:
  url: https://example.com/air.csv
  fetch_timeout: 15s
dashboard:
  title: Beijing
log:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o600))

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)

	assert.Equal(t, "yaml-app", config.App.Name)
	// untouched by the file, so the default survives
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "7070", config.Server.Port)
	assert.Equal(t, "https://example.com/air.csv", config.Dataset.URL)
	assert.Equal(t, 15*time.Second, config.Dataset.FetchTimeout)
	assert.Equal(t, "Beijing", config.Dashboard.Title)
	assert.Equal(t, "warn", config.Log.Level)
}

func TestEnvironmentOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"7070\"\n"), 0o600))
	t.Setenv("SERVER_PORT", "6060")

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)
	assert.Equal(t, "6060", config.Server.Port)
}

func TestConfigBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider("config/config.yaml")

	assert.NoError(t, provider.Validate(validConfig()))

	invalid := validConfig()
	invalid.App.Name = ""
	err := provider.Validate(invalid)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "app.name is required")

	invalid = validConfig()
	invalid.Dataset.URL = " "
	invalid.Log.Level = "loud"
	err = provider.Validate(invalid)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dataset.url is required")
	assert.Contains(t, err.Error(), `log.level "loud" is not a valid level`)

	invalid = validConfig()
	invalid.Dataset.FetchTimeout = 0
	err = provider.Validate(invalid)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dataset.fetch_timeout must be positive")
}

func TestConfigHelperMethods(t *testing.T) {
	config := &Config{App: AppConfig{Env: "development"}}

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())

	config.App.Env = "prod"
	assert.False(t, config.IsDevelopment())
	assert.True(t, config.IsProduction())
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{config: validConfig()}

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "test-app", config.App.Name)

	failing := &MockConfigProvider{err: errors.New("boom")}
	_, err = NewConfigWithProvider(failing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config *Config
	err    error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return nil
}
