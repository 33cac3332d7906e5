package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/waterlog/internal/service"
	"github.com/xolan/waterlog/internal/timeutil"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "waterlog",
	Short: "A daily water intake tracker",
	Long: `waterlog keeps a running log of the water you drink today and shows
your progress toward a 100oz daily goal.

Usage:
  waterlog                      List today's entries
  waterlog <amount>             Log an amount (same as: waterlog add <amount>)
  waterlog add [amount]         Log an amount, or the staged amount if omitted
  waterlog set <amount>         Stage an amount for the next add
  waterlog delete <index>       Delete an entry (with confirmation)
  waterlog unit [oz|L]          Show or switch the display unit
  waterlog status               One-line progress summary
  waterlog tui                  Launch the interactive terminal UI

Amount format: a number with an optional unit
Examples: 12, 12oz, 0.5L`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		if len(args) == 0 {
			listToday()
			return
		}
		addEntry(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log diagnostics to stderr")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"waterlog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// listToday prints today's entries followed by the progress line
func listToday() {
	services, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(services)

	status := services.Ledger.Status()
	printDay(status, services)
}

func printDay(status service.DayStatus, services *service.Services) {
	header := timeutil.FormatHeader(status.Date)

	if len(status.Entries) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No water logged for %s\n", header)
		_, _ = fmt.Fprintf(deps.Stdout, "Log some with: waterlog add %s\n", status.Unit.Format(status.Pending))
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s\n", header)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 32))

	loc := services.Ledger.Location()
	for _, ie := range status.Entries {
		_, _ = fmt.Fprintf(deps.Stdout, "%3d. %-8s %s\n",
			ie.Index,
			timeutil.FormatClock(ie.Entry.Timestamp, loc),
			status.Unit.Format(ie.Entry.Value))
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 32))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s (%d %s)\n", status.Label(), len(status.Entries), pluralize("entry", len(status.Entries)))
	if status.GoalReached {
		_, _ = fmt.Fprintln(deps.Stdout, "Goal reached!")
	}
}

// pluralize returns the plural form of a word if count != 1
func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}
