package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/glorpus-work/plugport/pkg/config"
	"github.com/glorpus-work/plugport/pkg/model"
	"github.com/glorpus-work/plugport/pkg/plugin"
	"github.com/jedib0t/go-pretty/v6/table"
)

func wantJSON(cfg *config.Config) bool {
	return cfg.Settings.OutputFormat == OutputJSON
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(out io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(header)
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	return t
}

type reportOutput struct {
	Success bool     `json:"success"`
	Report  []string `json:"report"`
}

func printReport(out io.Writer, cfg *config.Config, ok bool, report plugin.Report) error {
	if wantJSON(cfg) {
		lines := []string(report)
		if lines == nil {
			lines = []string{}
		}
		return printJSON(out, reportOutput{Success: ok, Report: lines})
	}
	for _, line := range report {
		_, _ = fmt.Fprintln(out, line)
	}
	return nil
}

func printListResult(out io.Writer, cfg *config.Config, result model.ListResult, empty string) error {
	if wantJSON(cfg) {
		return printJSON(out, result)
	}
	if len(result.Items) == 0 {
		_, _ = fmt.Fprintln(out, empty)
		return nil
	}

	t := newTable(out, table.Row{"Key", "Name", "Author", "Version", "Status"})
	for _, item := range result.Items {
		t.AppendRow(table.Row{item.Key, item.Name, item.Author, orDash(item.Version), item.Status.String()})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", result.Total})
	t.Render()
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
