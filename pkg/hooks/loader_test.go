package hooks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/glorpus-work/plugport/pkg/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/app", "data", "demo.install.tengo"),
		hooks.ScriptPath("/app", "demo", hooks.PostInstall))
}

func TestLoad(t *testing.T) {
	root := t.TempDir()

	_, found, err := hooks.Load(root, "demo", hooks.PostInstall)
	require.NoError(t, err)
	assert.False(t, found)

	path := hooks.ScriptPath(root, "demo", hooks.PostInstall)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`x := 1`), 0o644))

	hook, found, err := hooks.Load(root, "demo", hooks.PostInstall)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, hooks.PostInstall, hook.Type)
	assert.Equal(t, path, hook.Path)
	assert.Equal(t, "x := 1", hook.Content)

	_, _, err = hooks.Load(root, "demo", hooks.HookType("pre-remove"))
	assert.ErrorIs(t, err, errors.ErrHookExecution)
}

func TestTemplate(t *testing.T) {
	assert.Contains(t, hooks.Template(hooks.PostInstall), `import("context")`)
	assert.Contains(t, hooks.Template("other"), "Unknown hook type")
}
