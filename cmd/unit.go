package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/waterlog/internal/unit"
)

// unitCmd represents the unit command
var unitCmd = &cobra.Command{
	Use:   "unit [oz|L]",
	Short: "Show or switch today's display unit",
	Long: `Show the active display unit, or switch to another one.

Switching resets the staged amount to the new unit's default. Logged
entries are unchanged; only how they are shown changes.

Examples:
  waterlog unit
  waterlog unit L`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			showUnit()
			return
		}
		selectUnit(args[0])
	},
}

func init() {
	rootCmd.AddCommand(unitCmd)
}

func showUnit() {
	services, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(services)

	status := services.Ledger.Status()
	for _, u := range unit.Units {
		marker := " "
		if u.Label == status.Unit.Label {
			marker = "*"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s %-3s %s\n", marker, u.Label, u.Name)
	}
}

func selectUnit(name string) {
	services, ok := openServices()
	if !ok {
		return
	}
	defer closeServices(services)

	changed, status, err := services.Ledger.SelectUnit(name)
	switch {
	case errors.Is(err, unit.ErrUnknownUnit):
		fail(fmt.Sprintf("Unknown unit '%s'", name), nil, "Supported units: oz, L")
		return
	case err != nil:
		failSave("unit", err)
		return
	}

	if !changed {
		_, _ = fmt.Fprintf(deps.Stdout, "Unit is already %s\n", status.Unit.Label)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Unit: %s (staged %s)\n", status.Unit.Label, status.Unit.Format(status.Pending))
}
