package cli

import (
	"path/filepath"
	"testing"

	"github.com/glorpus-work/plugport/pkg/database"
	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFlags(t *testing.T, configPath, output, appRoot string, verbose bool) {
	t.Helper()
	ConfigPath, OutputFormat, AppRoot, Verbose = &configPath, &output, &appRoot, &verbose
	t.Cleanup(func() {
		ConfigPath, OutputFormat, AppRoot, Verbose = nil, nil, nil, nil
	})
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	dir := t.TempDir()
	withFlags(t, filepath.Join(dir, "missing.yaml"), OutputJSON, dir, true)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Settings.OutputFormat)
	assert.Equal(t, dir, cfg.Portal.AppRoot)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
}

func TestLoadConfig_InvalidOutput(t *testing.T) {
	dir := t.TempDir()
	withFlags(t, filepath.Join(dir, "missing.yaml"), "xml", "", false)

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestLoadSQLExecutor(t *testing.T) {
	dir := t.TempDir()
	withFlags(t, filepath.Join(dir, "missing.yaml"), "", dir, false)
	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.IsType(t, &database.NoopExecutor{}, loadSQLExecutor(cfg, false))

	cfg.Database.DSN = "user:pass@tcp(localhost:3306)/app"
	assert.IsType(t, &database.LazyExecutor{}, loadSQLExecutor(cfg, false))
	assert.IsType(t, &database.NoopExecutor{}, loadSQLExecutor(cfg, true))
}

func TestDownloadError(t *testing.T) {
	err := downloadError("demo", false)
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)
	assert.Contains(t, err.Error(), "demo")

	err = downloadError("demo", true)
	assert.ErrorIs(t, err, errors.ErrInstallFailed)
	assert.NotErrorIs(t, err, errors.ErrDownloadFailed)
}
