package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/waterlog/internal/service"
	"github.com/xolan/waterlog/internal/timeutil"
)

var yesFlag bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete <index>",
	Aliases: []string{"rm"},
	Short:   "Delete one of today's entries by index",
	Long: `Delete one of today's entries by its index number, as shown by
'waterlog'. A confirmation prompt will be shown unless --yes is specified.

Example:
  waterlog delete 3
  waterlog rm 3 --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteEntry(args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")
}

// deleteEntry handles the deletion of an entry
func deleteEntry(indexStr string) {
	userIndex, err := strconv.Atoi(indexStr)
	if err != nil {
		fail(fmt.Sprintf("Invalid index '%s'. Index must be a number", indexStr), nil, "")
		return
	}
	if userIndex < 1 {
		fail(fmt.Sprintf("Index must be 1 or greater (got %d)", userIndex), nil, "")
		return
	}

	services, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(services)

	status := services.Ledger.Status()
	if len(status.Entries) == 0 {
		fail("No entries to delete", nil, "")
		return
	}
	if userIndex > len(status.Entries) {
		fail(fmt.Sprintf("Index %d out of range. Valid range: 1-%d", userIndex, len(status.Entries)), nil, "")
		return
	}

	target := status.Entries[userIndex-1]
	_, _ = fmt.Fprintln(deps.Stdout, "Entry to delete:")
	_, _ = fmt.Fprintf(deps.Stdout, "  %s  %s\n",
		timeutil.FormatClock(target.Entry.Timestamp, services.Ledger.Location()),
		status.Unit.Format(target.Entry.Value))

	if !yesFlag {
		if !deps.IsInteractive() {
			fail("Refusing to prompt for confirmation: stdin is not a terminal", nil,
				"Pass --yes to delete without confirmation")
			return
		}
		if !promptConfirmation() {
			_, _ = fmt.Fprintln(deps.Stdout, "Deletion cancelled")
			return
		}
	}

	deleted, err := services.Ledger.Delete(userIndex)
	switch {
	case errors.Is(err, service.ErrIndexOutOfRange), errors.Is(err, service.ErrNoEntries):
		fail("Entry no longer exists", err, "Run 'waterlog' to see the current list")
		return
	case err != nil:
		failSave("deletion", err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted: %s\n", status.Unit.Format(deleted.Value))
}

// promptConfirmation asks the user to confirm deletion
// Returns true if user confirms with 'y' or 'Y', false otherwise
func promptConfirmation() bool {
	_, _ = fmt.Fprint(deps.Stdout, "Delete this entry? [y/N]: ")

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
