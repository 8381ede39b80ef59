package plugin

import (
	"context"

	"github.com/glorpus-work/plugport/internal/logger"
	"github.com/glorpus-work/plugport/pkg/hooks"
	"github.com/glorpus-work/plugport/pkg/model"
)

// runPostInstallHook executes data/<key>.install.tengo when the plugin ships
// one. Failures are reported and never abort the install.
func (i *Installer) runPostInstallHook(ctx context.Context, key string, manifest *model.Manifest, reinstall bool) Report {
	var report Report
	if i.hooks == nil {
		return report
	}

	hook, found, err := hooks.Load(i.layout.Root, key, hooks.PostInstall)
	if err != nil {
		report.Addf("post-install hook failed: %v", err)
		return report
	}
	if !found {
		return report
	}

	hc := hooks.Context{
		PluginKey:     key,
		PluginName:    manifest.Name,
		PluginVersion: manifest.Version,
		AppRoot:       i.layout.Root,
		Reinstall:     reinstall,
	}
	if err := i.hooks.Execute(ctx, hook, hc); err != nil {
		logger.Warn("post-install hook failed", logger.Fields{"plugin": key, "error": err})
		report.Addf("post-install hook failed: %v", err)
		return report
	}
	report.Addf("post-install hook executed: %s", hook.Path)
	return report
}
