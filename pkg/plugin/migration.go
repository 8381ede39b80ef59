package plugin

import (
	"context"
	"os"
	"strings"

	"github.com/glorpus-work/plugport/internal/logger"
	"github.com/glorpus-work/plugport/pkg/config"
)

// SplitStatements splits a migration script into statements. A statement
// ends with ";" followed by a newline; CRLF endings are normalized first.
// Statements are trimmed and blank ones dropped.
func SplitStatements(script string) []string {
	script = strings.ReplaceAll(script, ";\r\n", ";\n")

	var stmts []string
	for _, part := range strings.Split(script, ";\n") {
		stmt := strings.TrimSpace(part)
		if stmt == "" {
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

// PrefixTables replaces every literal occurrence of key in stmt with
// prefix+key.
func PrefixTables(stmt, key, prefix string) string {
	if prefix == "" || key == "" {
		return stmt
	}
	return strings.ReplaceAll(stmt, key, prefix+key)
}

// Migrate runs data/<key>.sql, if present. Every statement is executed on
// its own; a failing statement is reported and the rest still run.
func (i *Installer) Migrate(ctx context.Context, key string) Report {
	var report Report

	content, err := os.ReadFile(i.layout.MigrationPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			report.Addf("no database changes")
			return report
		}
		report.Addf("failed to read %s: %v", RelMigrationPath(key), err)
		return report
	}

	prefix, err := i.config.GetValue(config.TablePrefixKey)
	if err != nil {
		logger.Debug("no table prefix configured", logger.Fields{"error": err})
		prefix = ""
	}

	stmts := SplitStatements(string(content))
	report.Addf("applying database changes: %s", RelMigrationPath(key))

	failed := 0
	for _, stmt := range stmts {
		stmt = PrefixTables(stmt, key, prefix)
		if err := i.db.ExecSQL(ctx, stmt); err != nil {
			failed++
			logger.Warn("migration statement failed", logger.Fields{"plugin": key, "error": err})
			report.Addf("database execution failed: %s. reason: %v", stmt, err)
			continue
		}
		report.Addf("%s", stmt)
	}

	logger.Debug("migration finished", logger.Fields{
		"plugin":     key,
		"statements": len(stmts),
		"failed":     failed,
	})
	return report
}
