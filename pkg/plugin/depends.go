package plugin

import (
	"strings"

	"github.com/glorpus-work/plugport/pkg/model"
)

// Environment describes the local platform that dependency lines are
// compared against.
type Environment struct {
	EngineVersion    string
	FrameworkVersion string
}

// DependencyReport returns one advisory line per declared requirement.
// Requirements are never enforced.
func DependencyReport(deps model.Depends, env Environment) Report {
	var report Report

	if deps.Engine != "" {
		report.Addf("requires PHP version: %s, local PHP version: %s", deps.Engine, orUnknown(env.EngineVersion))
	}
	if deps.Database != "" {
		report.Addf("requires MySQL version: %s", deps.Database)
	}
	if deps.Framework != "" {
		report.Addf("requires PhalApi version: %s, local PhalApi version: %s", deps.Framework, orUnknown(env.FrameworkVersion))
	}
	for _, name := range deps.PackageNames() {
		report.Addf("requires composer package: %s %s", name, deps.Packages[name])
	}
	if len(deps.Extensions) > 0 {
		report.Addf("requires PHP extensions: %s", strings.Join(deps.Extensions, ", "))
	}

	return report
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
