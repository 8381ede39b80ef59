package cli

import (
	"os"

	"github.com/glorpus-work/plugport/internal/logger"
	"github.com/glorpus-work/plugport/pkg/fsutil"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewPrepareCmd creates the prepare command.
func NewPrepareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Prepare the writable application directories",
		Long: `Create the directories plugins are installed into and set their
permissions to 0755. Running it again changes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			prepared, err := fsutil.PrepareDirs(cfg.Portal.AppRoot, fsutil.WritableDirs, fsutil.DirModeDefault)
			if err != nil {
				return err
			}

			if wantJSON(cfg) {
				return printJSON(cmd.OutOrStdout(), map[string][]string{"prepared": prepared})
			}
			t := newTable(cmd.OutOrStdout(), table.Row{"Directory", "Mode"})
			for _, dir := range prepared {
				t.AppendRow(table.Row{dir, os.FileMode(fsutil.DirModeDefault).String()})
			}
			t.Render()
			logger.Success("Directories prepared", logger.Fields{"root": cfg.Portal.AppRoot, "count": len(prepared)})
			return nil
		},
	}

	return cmd
}
