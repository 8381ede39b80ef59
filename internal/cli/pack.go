package cli

import (
	"fmt"

	"github.com/glorpus-work/plugport/internal/logger"
	"github.com/glorpus-work/plugport/pkg/database"
	"github.com/glorpus-work/plugport/pkg/hooks"
	"github.com/spf13/cobra"
)

// Number of arguments expected by the pack command.
const packCommandArgs = 2

// NewPackCmd creates the pack command.
func NewPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack KEY SOURCE_DIR",
		Short: "Build a plugin archive",
		Long: `Pack SOURCE_DIR into plugins/KEY.zip. SOURCE_DIR is laid out like the
application root and must contain plugins/KEY.json.`,
		Args: cobra.ExactArgs(packCommandArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path, err := loadInstaller(cfg, database.NewNoopExecutor()).Pack(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to pack %s: %w", args[0], err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			logger.Success("Plugin packed", logger.Fields{"plugin": args[0], "path": path})
			return nil
		},
	}

	return cmd
}

// NewHookTemplateCmd creates the hook-template command.
func NewHookTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hook-template",
		Short: "Print a post-install hook script template",
		Long:  "Print a starter script for data/KEY.install.tengo",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), hooks.Template(hooks.PostInstall))
		},
	}
}
