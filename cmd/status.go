package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print a one-line progress summary",
	Long: `Print today's total against the goal on a single line, suitable for
shell prompts and status bars.

Example:
  waterlog status        48oz / 100oz (48%)`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStatus()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showStatus() {
	services, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(services)

	_, _ = fmt.Fprintln(deps.Stdout, services.Ledger.Status().Summary())
}
