package hooks

import (
	"os"
	"path/filepath"

	"github.com/glorpus-work/plugport/pkg/errors"
)

// ScriptExtension is the file extension of hook scripts.
const ScriptExtension = ".tengo"

// ScriptPath returns the location of the hook script of the given type for
// a plugin key, relative to appRoot.
func ScriptPath(appRoot, key string, hookType HookType) string {
	return filepath.Join(appRoot, "data", key+"."+string(hookType)+ScriptExtension)
}

// Load reads the hook script of the given type for a plugin. The boolean is
// false when the plugin ships no such script.
func Load(appRoot, key string, hookType HookType) (Hook, bool, error) {
	switch hookType {
	case PostInstall:
	default:
		return Hook{}, false, ErrUnsupportedHookType(hookType)
	}

	path := ScriptPath(appRoot, key, hookType)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Hook{}, false, nil
		}
		return Hook{}, false, errors.Wrapf(err, "error reading hook file %s", path)
	}
	return Hook{Type: hookType, Path: path, Content: string(content)}, true, nil
}

// Template generates a starter script for a hook type.
func Template(hookType HookType) string {
	switch hookType {
	case PostInstall:
		return `// Post-install hook
// Runs after the plugin archive was extracted and its migration applied.
// The "context" module exposes plugin_key, plugin_name, plugin_version,
// app_root and reinstall. Set err to a non-empty string to report a failure.
ctx := import("context")
fmt := import("fmt")

fmt.println("installed " + ctx.plugin_key + " " + ctx.plugin_version)
`
	default:
		return "// Unknown hook type: " + string(hookType)
	}
}
