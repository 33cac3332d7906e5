package cmd

import (
	"github.com/spf13/cobra"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for waterlog.

The TUI shows today's entries and a progress bar toward the goal, with an
adjustable amount you can log with a single key.

Keyboard shortcuts:
  - ←/→ or h/l: Adjust the amount
  - e: Type an exact amount
  - enter or a: Log the amount
  - u, 1, 2: Switch unit
  - j/k or arrows: Navigate the entry list
  - d: Delete the selected entry
  - t: Cycle color theme
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI initializes and runs the TUI application
func runTUI() {
	services, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(services)

	if err := deps.RunTUI(services); err != nil {
		fail("Failed to run TUI", err, "")
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
