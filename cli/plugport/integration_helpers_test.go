//go:build integration

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/plugport/pkg/model"
	"github.com/glorpus-work/plugport/test/testutil"
	"github.com/stretchr/testify/require"
)

func manifestJSON(t *testing.T, key, version string) string {
	t.Helper()
	data, err := json.Marshal(model.Manifest{
		Key:     key,
		Name:    key + " plugin",
		Author:  "alice",
		Version: version,
		Depends: model.Depends{Engine: ">=7.1", Extensions: []string{"pdo"}},
	})
	require.NoError(t, err)
	return string(data)
}

// pluginFiles lays out a plugin tree the way it is extracted.
func pluginFiles(t *testing.T, key, version string, extra map[string]string) map[string]string {
	t.Helper()
	files := map[string]string{
		"plugins/" + key + ".json":         manifestJSON(t, key, version),
		"src/app/Api/" + key + "/Demo.php": "<?php",
	}
	for k, v := range extra {
		files[k] = v
	}
	return files
}

// createSamplePluginSource writes a plugin tree into a new directory.
func createSamplePluginSource(t *testing.T, key, version string) string {
	t.Helper()
	src := t.TempDir()
	testutil.WriteFiles(t, src, pluginFiles(t, key, version, nil))
	return src
}

// buildPluginArchive packs a sample plugin into dir/<key>.zip.
func buildPluginArchive(t *testing.T, dir, key, version string, extra map[string]string) {
	t.Helper()
	testutil.BuildArchive(t, filepath.Join(dir, key+".zip"), pluginFiles(t, key, version, extra))
}

// runCLI executes the root command and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
