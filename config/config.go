package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/config.yaml"

// DefaultDatasetURL is the cleaned Beijing multi-site air quality dataset.
const DefaultDatasetURL = "https://raw.githubusercontent.com/azyd-byte/air_quality_dataset2/main/dashboard/main_data.csv"

type Config struct {
	App       AppConfig       `yaml:"app" envconfig:"APP"`
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Dataset   DatasetConfig   `yaml:"dataset" envconfig:"DATASET"`
	Dashboard DashboardConfig `yaml:"dashboard" envconfig:"DASHBOARD"`
	Log       LogConfig       `yaml:"log" envconfig:"LOG"`
	Sentry    SentryConfig    `yaml:"sentry" envconfig:"SENTRY"`
}

type AppConfig struct {
	Name    string `yaml:"name" split_words:"true"`
	Version string `yaml:"version" split_words:"true"`
	Env     string `yaml:"env" split_words:"true"`
}

type ServerConfig struct {
	Port            string        `yaml:"port" split_words:"true"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`
}

type DatasetConfig struct {
	URL          string        `yaml:"url" split_words:"true"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" split_words:"true"`
}

type DashboardConfig struct {
	Title   string `yaml:"title" split_words:"true"`
	Caption string `yaml:"caption" split_words:"true"`
}

type LogConfig struct {
	Level string `yaml:"level" split_words:"true"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" split_words:"true"`
	Debug bool   `yaml:"debug" split_words:"true"`
}

// ConfigProvider loads and validates the application configuration.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads defaults, then an optional .env file, then an
// optional YAML file and finally environment variables.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(defaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaults()

	// a missing .env is fine, variables may come from the environment
	_ = godotenv.Load()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// Override with environment variables
	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	var problems []string

	if strings.TrimSpace(cnf.App.Name) == "" {
		problems = append(problems, "app.name is required")
	}
	if strings.TrimSpace(cnf.Server.Port) == "" {
		problems = append(problems, "server.port is required")
	}
	if strings.TrimSpace(cnf.Dataset.URL) == "" {
		problems = append(problems, "dataset.url is required")
	}
	if cnf.Dataset.FetchTimeout <= 0 {
		problems = append(problems, "dataset.fetch_timeout must be positive")
	}
	if cnf.Server.ShutdownTimeout <= 0 {
		problems = append(problems, "server.shutdown_timeout must be positive")
	}
	if _, err := zapcore.ParseLevel(cnf.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level %q is not a valid level", cnf.Log.Level))
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod" || c.App.Env == "production"
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "airquality-dashboard",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:            "8080",
			ShutdownTimeout: 30 * time.Second,
		},
		Dataset: DatasetConfig{
			URL:          DefaultDatasetURL,
			FetchTimeout: 60 * time.Second,
		},
		Dashboard: DashboardConfig{
			Title:   "Air Quality Analysis in China",
			Caption: "Copyright © Zayadi 2024",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
