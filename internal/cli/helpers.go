package cli

import (
	"fmt"
	"io"

	"github.com/glorpus-work/plugport/internal/logger"
	"github.com/glorpus-work/plugport/pkg/archive"
	"github.com/glorpus-work/plugport/pkg/catalog"
	"github.com/glorpus-work/plugport/pkg/config"
	"github.com/glorpus-work/plugport/pkg/database"
	"github.com/glorpus-work/plugport/pkg/download"
	"github.com/glorpus-work/plugport/pkg/hooks"
	pkghttp "github.com/glorpus-work/plugport/pkg/http"
	"github.com/glorpus-work/plugport/pkg/plugin"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	OutputFormat *string
	AppRoot      *string
)

// loadConfig loads the configuration, applies the global flags and
// initializes the logger.
func loadConfig() (*config.Config, error) {
	cfg, err := loadFileConfig()
	if err != nil {
		return nil, err
	}

	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
	}
	if AppRoot != nil && *AppRoot != "" {
		cfg.Portal.AppRoot = *AppRoot
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.InitLogger(cfg.Settings.LogLevel, logger.FormatText)
	return cfg, nil
}

// loadFileConfig loads the configuration file without flag overrides.
func loadFileConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		// An empty path makes LoadConfig return a descriptive error.
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}

// sqlExecutor is the closable executor the install command hands to the installer.
type sqlExecutor interface {
	plugin.SQLExecutor
	io.Closer
}

func loadSQLExecutor(cfg *config.Config, dryRun bool) sqlExecutor {
	switch {
	case dryRun:
		return database.NewNoopExecutor()
	case cfg.Database.DSN == "":
		logger.Warn("no database.dsn configured, migration statements are not executed")
		return database.NewNoopExecutor()
	default:
		return database.NewLazyExecutor(cfg.Database.Driver, cfg.Database.DSN)
	}
}

func loadInstaller(cfg *config.Config, db plugin.SQLExecutor) *plugin.Installer {
	return plugin.NewInstaller(
		plugin.NewLayout(cfg.Portal.AppRoot),
		plugin.Environment{
			EngineVersion:    cfg.Portal.EngineVersion,
			FrameworkVersion: cfg.Portal.FrameworkVersion,
		},
		cfg,
		db,
		archive.NewManager(),
		plugin.Options{
			Hooks:      hooks.NewTengoExecutor(),
			Downloader: loadDownloadManager(),
			CatalogURL: cfg.Catalog.URL,
		},
	)
}

func loadDownloadManager() download.Manager {
	return download.NewManager(DownloadTimeout, UserAgent())
}

func loadCatalog(cfg *config.Config) *catalog.Catalog {
	return catalog.NewCatalog(
		pkghttp.NewHTTPClient(cfg.Catalog.Timeout, UserAgent()),
		cfg.GetPluginsDir(),
		catalog.Options{
			BaseURL:  cfg.Catalog.URL,
			PromoURL: cfg.Catalog.PromoURL,
			Host:     cfg.Portal.Host,
			Version:  cfg.Portal.FrameworkVersion,
			Timeout:  cfg.Catalog.Timeout,
		},
	)
}
