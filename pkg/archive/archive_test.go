package archive

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}
}

func TestManager_CreateAndExtractAll(t *testing.T) {
	tempDir := t.TempDir()
	ctx := context.Background()

	testFiles := map[string]string{
		"plugins/demo.json":          `{"plugin_key":"demo"}`,
		"data/demo.sql":              "CREATE TABLE demo (id INT);\n",
		"src/app/Api/Demo/Hello.php": "<?php",
	}
	sourceDir := filepath.Join(tempDir, "source")
	writeTree(t, sourceDir, testFiles)

	am := NewManager()
	archivePath := filepath.Join(tempDir, "demo.zip")
	require.NoError(t, am.Create(ctx, sourceDir, archivePath))
	require.FileExists(t, archivePath)

	extractDir := filepath.Join(tempDir, "root")
	written, err := am.ExtractAll(ctx, archivePath, extractDir)
	require.NoError(t, err)

	var want []string
	for path, content := range testFiles {
		want = append(want, path)
		got, err := os.ReadFile(filepath.Join(extractDir, filepath.FromSlash(path)))
		require.NoError(t, err)
		assert.Equal(t, content, string(got))
	}
	sort.Strings(want)
	sort.Strings(written)
	assert.Equal(t, want, written)
}

func TestManager_ExtractAll_OverwritesExisting(t *testing.T) {
	tempDir := t.TempDir()
	ctx := context.Background()

	sourceDir := filepath.Join(tempDir, "source")
	writeTree(t, sourceDir, map[string]string{"plugins/demo.json": "new"})

	am := NewManager()
	archivePath := filepath.Join(tempDir, "demo.zip")
	require.NoError(t, am.Create(ctx, sourceDir, archivePath))

	root := filepath.Join(tempDir, "root")
	writeTree(t, root, map[string]string{"plugins/demo.json": "old manifest", "plugins/other.json": "keep"})

	_, err := am.ExtractAll(ctx, archivePath, root)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(root, "plugins", "demo.json"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
	assert.FileExists(t, filepath.Join(root, "plugins", "other.json"))
}

func TestManager_ExtractAll_Failures(t *testing.T) {
	tempDir := t.TempDir()
	ctx := context.Background()

	corrupt := filepath.Join(tempDir, "corrupt.zip")
	require.NoError(t, os.WriteFile(corrupt, []byte("this is not a zip file at all"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing archive", path: filepath.Join(tempDir, "missing.zip")},
		{name: "corrupt archive", path: corrupt},
		{name: "directory", path: tempDir},
	}

	am := NewManager()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := am.ExtractAll(ctx, tt.path, filepath.Join(tempDir, "out"))
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrExtraction)
		})
	}
}

func TestManager_ExtractAll_CanceledContext(t *testing.T) {
	tempDir := t.TempDir()
	sourceDir := filepath.Join(tempDir, "source")
	writeTree(t, sourceDir, map[string]string{"plugins/demo.json": "{}"})

	am := NewManager()
	archivePath := filepath.Join(tempDir, "demo.zip")
	require.NoError(t, am.Create(context.Background(), sourceDir, archivePath))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := am.ExtractAll(ctx, archivePath, filepath.Join(tempDir, "root"))
	assert.Error(t, err)
}
