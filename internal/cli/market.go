package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMarketCmd creates the market command.
func NewMarketCmd() *cobra.Command {
	var (
		page    int
		perPage int
		search  map[string]string
	)

	cmd := &cobra.Command{
		Use:   "market",
		Short: "Browse the plugin catalog",
		Long: `List one page of the remote plugin catalog together with the local status
of every plugin. An unreachable catalog yields an empty list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if page < 1 || perPage < 1 {
				return fmt.Errorf("page and per-page must be positive")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			result := loadCatalog(cfg).ListMarket(cmd.Context(), page, perPage, search)
			return printListResult(cmd.OutOrStdout(), cfg, result, "No plugins available")
		},
	}

	cmd.Flags().IntVar(&page, "page", DefaultPage, "Page number")
	cmd.Flags().IntVar(&perPage, "per-page", DefaultPerPage, "Entries per page")
	cmd.Flags().StringToStringVar(&search, "search", nil, "Search parameters (key=value)")

	return cmd
}

// NewTopCmd creates the top command.
func NewTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the catalog banner and hot plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			content := loadCatalog(cfg).TopContent(cmd.Context())
			if wantJSON(cfg) {
				return printJSON(cmd.OutOrStdout(), map[string]string{"content": content})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}

	return cmd
}
