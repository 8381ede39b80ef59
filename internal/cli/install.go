package cli

import (
	"fmt"

	"github.com/glorpus-work/plugport/internal/logger"
	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var (
		reinstall bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "install KEY",
		Short: "Install a downloaded plugin",
		Long: `Install the plugin archive plugins/KEY.zip into the application root.
The archive is extracted, its manifest read and its SQL migration applied.
Declared dependencies are reported but not enforced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args[0], reinstall, dryRun)
		},
	}

	cmd.Flags().BoolVar(&reinstall, "reinstall", false, "Install again even if the plugin is already installed")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Record migration statements without executing them")

	return cmd
}

func runInstall(cmd *cobra.Command, key string, reinstall, dryRun bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db := loadSQLExecutor(cfg, dryRun)
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", logger.Fields{"error": err})
		}
	}()

	installer := loadInstaller(cfg, db)
	ok, report := installer.Install(cmd.Context(), key, reinstall)
	if err := printReport(cmd.OutOrStdout(), cfg, ok, report); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", key, errors.ErrInstallFailed)
	}

	logger.Success("Plugin installed", logger.Fields{"plugin": key})
	return nil
}
