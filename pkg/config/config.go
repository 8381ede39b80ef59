// Package config provides configuration management for plugport.
// It loads and validates the YAML settings describing the portal deployment:
// the application root, the remote catalog, the database connection used for
// plugin migrations and the CLI output preferences.
package config

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/glorpus-work/plugport/pkg/fsutil"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Portal deployment
	Portal PortalConfig `yaml:"portal"`

	// Remote plugin catalog
	Catalog CatalogConfig `yaml:"catalog"`

	// Database used for plugin migrations
	Database DatabaseConfig `yaml:"database"`

	// General settings
	Settings Settings `yaml:"settings"`
}

// PortalConfig describes the local portal installation.
type PortalConfig struct {
	// AppRoot is the application root plugin archives are extracted into.
	AppRoot string `yaml:"app_root"`
	// Host is the portal host name reported to the catalog.
	Host string `yaml:"host"`
	// EngineVersion and FrameworkVersion are shown next to plugin requirements.
	EngineVersion    string `yaml:"engine_version"`
	FrameworkVersion string `yaml:"framework_version"`
}

// CatalogConfig describes the remote marketplace.
type CatalogConfig struct {
	URL      string        `yaml:"url"`
	PromoURL string        `yaml:"promo_url"`
	Timeout  time.Duration `yaml:"timeout"`
}

// DatabaseConfig describes the SQL connection and table naming.
type DatabaseConfig struct {
	Driver      string `yaml:"driver"`
	DSN         string `yaml:"dsn,omitempty"`
	TablePrefix string `yaml:"table_prefix"`
}

// Settings represents general application settings.
type Settings struct {
	OutputFormat string `yaml:"output_format"` // table, json
	LogLevel     string `yaml:"log_level"`     // debug, info, warn, error
}

// Default configuration values.
const (
	// DefaultCatalogURL is the public plugin marketplace.
	DefaultCatalogURL = "http://demo.phalapi.net"

	// DefaultPromoURL is linked from the market banner.
	DefaultPromoURL = "http://www.yesx2.com"

	// DefaultCatalogTimeout bounds every catalog request.
	DefaultCatalogTimeout = 10 * time.Second

	// DefaultHost is reported when no host is configured.
	DefaultHost = "localhost"

	// DefaultDriver is the database/sql driver name.
	DefaultDriver = "mysql"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	appRoot, err := os.Getwd()
	if err != nil {
		appRoot = "."
	}

	return &Config{
		Portal: PortalConfig{
			AppRoot:          appRoot,
			Host:             DefaultHost,
			EngineVersion:    "7.4",
			FrameworkVersion: "2.12.2",
		},
		Catalog: CatalogConfig{
			URL:      DefaultCatalogURL,
			PromoURL: DefaultPromoURL,
			Timeout:  DefaultCatalogTimeout,
		},
		Database: DatabaseConfig{
			Driver: DefaultDriver,
		},
		Settings: Settings{
			OutputFormat: "table",
			LogLevel:     "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig saves configuration to a file.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(absPath), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	// the DSN may carry credentials
	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeSecure)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if c.Portal.AppRoot == "" {
		return fmt.Errorf("portal.app_root cannot be empty")
	}
	if err := validateCatalogURL(c.Catalog.URL); err != nil {
		return err
	}
	if c.Catalog.Timeout < 0 {
		return errors.ErrHTTPTimeout
	}
	validFormats := map[string]bool{"table": true, "json": true}
	if !validFormats[c.Settings.OutputFormat] {
		return errors.ErrInvalidOutputWithDetails(c.Settings.OutputFormat)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Settings.LogLevel)] {
		return errors.ErrInvalidLogLevelWithDetails(c.Settings.LogLevel)
	}
	return nil
}

func validateCatalogURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrap(errors.ErrCatalogURLInvalid, err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Wrapf(errors.ErrCatalogURLInvalid, "unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.Wrap(errors.ErrCatalogURLInvalid, "missing host")
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "plugport", "config.yaml"), nil
}

// GetPluginsDir returns the directory holding plugin archives and manifests.
func (c *Config) GetPluginsDir() string {
	return filepath.Join(c.Portal.AppRoot, "plugins")
}

// GetDataDir returns the directory holding plugin migrations.
func (c *Config) GetDataDir() string {
	return filepath.Join(c.Portal.AppRoot, "data")
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Portal.AppRoot == "" {
		c.Portal.AppRoot = defaults.Portal.AppRoot
	}
	if c.Portal.Host == "" {
		c.Portal.Host = defaults.Portal.Host
	}
	if c.Portal.EngineVersion == "" {
		c.Portal.EngineVersion = defaults.Portal.EngineVersion
	}
	if c.Portal.FrameworkVersion == "" {
		c.Portal.FrameworkVersion = defaults.Portal.FrameworkVersion
	}
	if c.Catalog.URL == "" {
		c.Catalog.URL = defaults.Catalog.URL
	}
	if c.Catalog.PromoURL == "" {
		c.Catalog.PromoURL = defaults.Catalog.PromoURL
	}
	if c.Catalog.Timeout == 0 {
		c.Catalog.Timeout = defaults.Catalog.Timeout
	}
	if c.Database.Driver == "" {
		c.Database.Driver = defaults.Database.Driver
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
}
