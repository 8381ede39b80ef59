package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/plugport/internal/cli"
	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	verbose      bool
	outputFormat string
	appRoot      string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugport",
		Short: "Plugin installer for the portal",
		Long: `plugport installs portal plugins:
- install, download and pack plugin archives
- apply plugin SQL migrations with the configured table prefix
- browse the plugin catalog and list local plugins`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: user config dir)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (table, json)")
	cmd.PersistentFlags().StringVar(&appRoot, "app-root", "", "application root (overrides portal.app_root)")

	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.OutputFormat = &outputFormat
	cli.AppRoot = &appRoot

	cmd.AddCommand(
		cli.NewInstallCmd(),
		cli.NewDownloadCmd(),
		cli.NewListCmd(),
		cli.NewMarketCmd(),
		cli.NewTopCmd(),
		cli.NewPrepareCmd(),
		cli.NewPackCmd(),
		cli.NewHookTemplateCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
