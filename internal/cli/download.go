package cli

import (
	"fmt"

	"github.com/glorpus-work/plugport/internal/logger"
	"github.com/glorpus-work/plugport/pkg/database"
	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/spf13/cobra"
)

// NewDownloadCmd creates the download command.
func NewDownloadCmd() *cobra.Command {
	var (
		rawURL   string
		checksum string
		install  bool
	)

	cmd := &cobra.Command{
		Use:   "download KEY",
		Short: "Download a plugin archive",
		Long: `Download plugins/KEY.zip from the catalog, or from --url.
With --checksum the archive's SHA-256 is verified before it is stored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(cmd, args[0], rawURL, checksum, install)
		},
	}

	cmd.Flags().StringVar(&rawURL, "url", "", "Archive URL (defaults to the catalog)")
	cmd.Flags().StringVar(&checksum, "checksum", "", "Expected hex SHA-256 of the archive")
	cmd.Flags().BoolVar(&install, "install", false, "Install the plugin after downloading")

	return cmd
}

func runDownload(cmd *cobra.Command, key, rawURL, checksum string, install bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var db sqlExecutor = database.NewNoopExecutor()
	if install {
		db = loadSQLExecutor(cfg, false)
	}
	defer func() { _ = db.Close() }()

	installer := loadInstaller(cfg, db)
	downloaded, report := installer.Download(cmd.Context(), key, rawURL, checksum)
	ok := downloaded
	if downloaded && install {
		installed, installReport := installer.Install(cmd.Context(), key, false)
		report.Append(installReport)
		ok = installed
	}

	if err := printReport(cmd.OutOrStdout(), cfg, ok, report); err != nil {
		return err
	}
	if !ok {
		return downloadError(key, downloaded)
	}

	logger.Success("Plugin downloaded", logger.Fields{"plugin": key})
	return nil
}

// downloadError names the step that failed: the fetch itself or the install
// that followed it.
func downloadError(key string, downloaded bool) error {
	if downloaded {
		return fmt.Errorf("%s: %w", key, errors.ErrInstallFailed)
	}
	return fmt.Errorf("%s: %w", key, errors.ErrDownloadFailed)
}
