package cli

import (
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List local plugins",
		Long: `List installed plugins and downloaded archives that are not installed yet.
No network access is needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			result := loadCatalog(cfg).ListMine()
			return printListResult(cmd.OutOrStdout(), cfg, result, "No plugins found")
		},
	}

	return cmd
}
