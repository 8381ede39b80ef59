//go:build integration

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/glorpus-work/plugport/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall_FromLocalArchive(t *testing.T) {
	tempDir := t.TempDir()
	appRoot := filepath.Join(tempDir, "app")
	cfgPath := testutil.WriteConfig(t, tempDir, appRoot, "http://catalog.invalid")

	buildPluginArchive(t, filepath.Join(appRoot, "plugins"), "shop", "1.0.0", map[string]string{
		"data/shop.sql": "CREATE TABLE shop (id INT);\nCREATE TABLE shop_item (id INT);\n",
	})

	out, err := runCLI(t, "--config", cfgPath, "install", "shop")
	require.NoError(t, err)
	assert.Contains(t, out, "plugin: shop (shop plugin), author: alice, version: 1.0.0, installed")
	assert.Contains(t, out, "requires PHP version: >=7.1, local PHP version: 7.4")
	assert.Contains(t, out, "CREATE TABLE pp_shop (id INT)")
	assert.Contains(t, out, "CREATE TABLE pp_shop_item (id INT)")
	assert.Contains(t, out, "plugin installation complete")
	assert.FileExists(t, filepath.Join(appRoot, "src", "app", "Api", "shop", "Demo.php"))

	out, err = runCLI(t, "--config", cfgPath, "install", "shop")
	assert.ErrorIs(t, err, errors.ErrInstallFailed)
	assert.Contains(t, out, "plugin already installed: plugins/shop.json")

	out, err = runCLI(t, "--config", cfgPath, "--output", "json", "install", "shop", "--reinstall", "--dry-run")
	require.NoError(t, err)
	var result struct {
		Success bool     `json:"success"`
		Report  []string `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	assert.Contains(t, result.Report, "reinstalling shop")
}

func TestInstall_MissingArchive(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath := testutil.WriteConfig(t, tempDir, filepath.Join(tempDir, "app"), "http://catalog.invalid")

	out, err := runCLI(t, "--config", cfgPath, "install", "ghost")
	assert.ErrorIs(t, err, errors.ErrInstallFailed)
	assert.Contains(t, out, "plugin archive not found: plugins/ghost.zip")
}

func TestDownloadAndInstall(t *testing.T) {
	tempDir := t.TempDir()
	appRoot := filepath.Join(tempDir, "app")
	archiveDir := filepath.Join(tempDir, "served")
	buildPluginArchive(t, archiveDir, "blog", "2.0", nil)

	catalog := testutil.NewCatalogServer(t, `{"total":0,"plugins":[]}`, `{"hot":""}`, archiveDir)
	cfgPath := testutil.WriteConfig(t, tempDir, appRoot, catalog.URL)

	out, err := runCLI(t, "--config", cfgPath, "download", "blog", "--install")
	require.NoError(t, err)
	assert.Contains(t, out, "downloaded plugins/blog.zip")
	assert.Contains(t, out, "plugin installation complete")
	assert.FileExists(t, filepath.Join(appRoot, "plugins", "blog.json"))

	_, err = runCLI(t, "--config", cfgPath, "download", "missing")
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)

	require.NoError(t, os.WriteFile(filepath.Join(archiveDir, "broken.zip"), []byte("not a zip"), 0o644))
	out, err = runCLI(t, "--config", cfgPath, "download", "broken", "--install")
	assert.ErrorIs(t, err, errors.ErrInstallFailed)
	assert.NotErrorIs(t, err, errors.ErrDownloadFailed)
	assert.Contains(t, out, "downloaded plugins/broken.zip")
}

func TestPack(t *testing.T) {
	tempDir := t.TempDir()
	appRoot := filepath.Join(tempDir, "app")
	cfgPath := testutil.WriteConfig(t, tempDir, appRoot, "http://catalog.invalid")

	src := createSamplePluginSource(t, "docs", "0.1.0")
	out, err := runCLI(t, "--config", cfgPath, "pack", "docs", src)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(appRoot, "plugins", "docs.zip"))

	_, err = runCLI(t, "--config", cfgPath, "install", "docs")
	require.NoError(t, err)

	out, err = runCLI(t, "hook-template")
	require.NoError(t, err)
	assert.Contains(t, out, `import("context")`)
}
