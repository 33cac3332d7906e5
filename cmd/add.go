package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/waterlog/internal/service"
	"github.com/xolan/waterlog/internal/unit"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [amount]",
	Short: "Log an amount of water",
	Long: `Log an amount of water drunk just now.

With no amount, the staged amount is logged (see 'waterlog set').
An amount with a unit switches the display unit to that unit.

Examples:
  waterlog add
  waterlog add 12
  waterlog add 12oz
  waterlog add 0.5L`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		amount := ""
		if len(args) == 1 {
			amount = args[0]
		}
		addEntry(amount)
	},
}

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Stage an amount for the next add",
	Long: `Stage an amount without logging it. A later 'waterlog add' with no
amount logs the staged value.

Examples:
  waterlog set 16
  waterlog set 0.75L`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		stageAmount(args[0])
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(setCmd)
}

func addEntry(amount string) {
	services, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(services)

	result, err := services.Ledger.Add(amount)
	if err != nil {
		reportAmountError(amount, err, "entry")
		return
	}

	status := result.Status
	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s (total %s)\n", status.Unit.Format(result.Entry.Value), status.Label())
	if result.GoalCrossed {
		_, _ = fmt.Fprintf(deps.Stdout, "Goal reached! %s today\n", status.Unit.Format(status.Total))
	}
}

func stageAmount(amount string) {
	services, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(services)

	status, err := services.Ledger.Stage(amount)
	if err != nil {
		reportAmountError(amount, err, "staged amount")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Staged: %s\n", status.Unit.Format(status.Pending))
	_, _ = fmt.Fprintln(deps.Stdout, "Log it with: waterlog add")
}

// reportAmountError maps amount parsing and persistence failures to CLI output
func reportAmountError(amount string, err error, what string) {
	switch {
	case errors.Is(err, unit.ErrInvalidAmount):
		fail(fmt.Sprintf("Invalid amount '%s'", amount), err,
			"Use a number with an optional unit, e.g. 12, 12oz or 0.5L")
	case errors.Is(err, unit.ErrUnknownUnit):
		fail(fmt.Sprintf("Unknown unit in '%s'", amount), err, "Supported units: oz, L")
	case errors.Is(err, service.ErrAmountTooLarge):
		fail(fmt.Sprintf("Amount '%s' is too large", amount), err,
			fmt.Sprintf("A single entry is at most %s or %s; log larger amounts in parts",
				unit.Units[unit.Ounces].Format(unit.Units[unit.Ounces].MaxCanonical()),
				unit.Units[unit.Liters].Format(unit.Units[unit.Liters].MaxCanonical())))
	default:
		failSave(what, err)
	}
}
