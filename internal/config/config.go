package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is used when neither the config file nor PRINTADMIN_API_URL set one.
const DefaultAPIURL = "http://localhost:8000"

// EnvPrefix is the prefix for environment overrides (PRINTADMIN_API_URL, PRINTADMIN_LOG_LEVEL, ...).
const EnvPrefix = "PRINTADMIN"

// Config represents the effective printadmin configuration.
type Config struct {
	API   APIConfig   `mapstructure:"api"`
	Log   LogConfig   `mapstructure:"log"`
	Store StoreConfig `mapstructure:"store"`
	Actor string      `mapstructure:"actor"` // recorded in the audit log
}

// APIConfig describes the print-shop REST backend.
type APIConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// StoreConfig controls the in-memory collection cache.
type StoreConfig struct {
	MaxAge time.Duration `mapstructure:"max_age"` // older collections are reported as stale
}

// fileConfig is the on-disk shape written by Save. Durations are kept as
// strings so the file stays hand-editable.
type fileConfig struct {
	API struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"api"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Store struct {
		MaxAge string `yaml:"max_age"`
	} `yaml:"store"`
	Actor string `yaml:"actor,omitempty"`
}

// Dir returns the printadmin state directory (~/.printadmin).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".printadmin"), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Config {
	return &Config{
		API:   APIConfig{URL: DefaultAPIURL, Timeout: 15 * time.Second},
		Log:   LogConfig{Level: "warn", Format: "console"},
		Store: StoreConfig{MaxAge: 5 * time.Minute},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.url", DefaultAPIURL)
	v.SetDefault("api.timeout", "15s")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("store.max_age", "5m")
	v.SetDefault("actor", "")
}

// Load reads configuration from defaults, the config file and the environment.
// Priority: environment > config file > defaults.
// An empty path means ~/.printadmin/config.yaml, which may be absent.
// An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.API.URL = strings.TrimRight(cfg.API.URL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that would otherwise fail late at request time.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.URL)
	if err != nil {
		return fmt.Errorf("invalid api.url %q: %w", c.API.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api.url %q: scheme must be http or https", c.API.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api.url %q: missing host", c.API.URL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("invalid api.timeout %s: must be positive", c.API.Timeout)
	}
	if c.Store.MaxAge < 0 {
		return fmt.Errorf("invalid store.max_age %s: must not be negative", c.Store.MaxAge)
	}
	return nil
}

// Save writes cfg as YAML to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	var fc fileConfig
	fc.API.URL = cfg.API.URL
	fc.API.Timeout = cfg.API.Timeout.String()
	fc.Log.Level = cfg.Log.Level
	fc.Log.Format = cfg.Log.Format
	fc.Store.MaxAge = cfg.Store.MaxAge.String()
	fc.Actor = cfg.Actor

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
