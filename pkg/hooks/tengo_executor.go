package hooks

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/glorpus-work/plugport/pkg/errors"
)

// TengoExecutor handles the execution of Tengo hook scripts.
type TengoExecutor struct {
	modules []string
}

// NewTengoExecutor creates a new Tengo script executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{
		modules: []string{"fmt", "os", "text", "times", "json"},
	}
}

// Execute runs hook with hc exposed as the "context" module.
func (e *TengoExecutor) Execute(ctx context.Context, hook Hook, hc Context) error {
	if hook.Content == "" {
		return nil
	}

	script := tengo.NewScript([]byte(hook.Content))

	modules := stdlib.GetModuleMap(e.modules...)
	modules.AddBuiltinModule("context", contextModule(hc))
	script.SetImports(modules)

	for k, v := range hc.Vars {
		if err := script.Add(k, v); err != nil {
			return fmt.Errorf("failed to add variable '%s' to script: %w", k, err)
		}
	}
	// err is declared up front so scripts can assign it without :=
	if err := script.Add("err", ""); err != nil {
		return fmt.Errorf("failed to add err to script: %w", err)
	}

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", hook.Type, errors.ErrHookExecution, err)
	}

	errVar := compiled.Get("err")
	switch v := errVar.Value().(type) {
	case error:
		return fmt.Errorf("%w: %w", errors.ErrHookScript, v)
	case string:
		if v != "" {
			return fmt.Errorf("%w: %s", errors.ErrHookScript, v)
		}
	}

	return nil
}

func contextModule(hc Context) map[string]tengo.Object {
	reinstall := tengo.FalseValue
	if hc.Reinstall {
		reinstall = tengo.TrueValue
	}
	return map[string]tengo.Object{
		"plugin_key":     &tengo.String{Value: hc.PluginKey},
		"plugin_name":    &tengo.String{Value: hc.PluginName},
		"plugin_version": &tengo.String{Value: hc.PluginVersion},
		"app_root":       &tengo.String{Value: hc.AppRoot},
		"reinstall":      reinstall,
	}
}
