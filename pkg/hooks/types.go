// Package hooks runs the Tengo scripts a plugin archive may bundle under
// data/<key>.<type>.tengo.
package hooks

// HookType represents the type of hook.
type HookType string

// Supported hook types.
const (
	PostInstall HookType = "install"
)

// Hook represents a hook script with its type and content.
type Hook struct {
	Type    HookType
	Path    string
	Content string
}

// Context contains information passed to hooks through the "context" module.
type Context struct {
	PluginKey     string
	PluginName    string
	PluginVersion string
	AppRoot       string
	Reinstall     bool
	Vars          map[string]interface{}
}
