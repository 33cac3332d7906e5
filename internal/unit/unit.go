// Package unit defines the fixed table of display units for water volumes.
//
// All stored values are in the canonical unit (ounces). A Unit only converts
// canonical values to display values and back; it never changes what is stored.
package unit

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit describes one display unit
type Unit struct {
	Name      string  // Long name shown in pickers (e.g., "ounces")
	Label     string  // Suffix used when formatting values (e.g., "oz")
	Scale     float64 // Multiply a canonical value by Scale to get the display value
	Step      float64 // Slider granularity, in display units
	Max       float64 // Slider maximum, in display units
	Initial   float64 // Default staged amount, in display units
	Precision int     // Fixed number of decimals when formatting
}

// Index values into Units
const (
	Ounces = 0
	Liters = 1
)

// Units is the ordered set of available units. Index 0 is the default.
var Units = []Unit{
	{Name: "ounces", Label: "oz", Scale: 1, Step: 1, Max: 16, Initial: 8, Precision: 0},
	{Name: "liters", Label: "L", Scale: 0.0295735, Step: 0.25, Max: 1, Initial: 0.5, Precision: 2},
}

// Common errors for amount parsing
var (
	ErrUnknownUnit   = errors.New("unknown unit")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Valid reports whether idx is a usable index into Units
func Valid(idx int) bool {
	return idx >= 0 && idx < len(Units)
}

// ToDisplay converts a canonical value to this unit
func (u Unit) ToDisplay(canonical float64) float64 {
	return canonical * u.Scale
}

// ToCanonical converts a value expressed in this unit to canonical units
func (u Unit) ToCanonical(display float64) float64 {
	return display / u.Scale
}

// InitialCanonical returns the unit's default staged amount in canonical units
func (u Unit) InitialCanonical() float64 {
	return u.ToCanonical(u.Initial)
}

// MaxCanonical returns the upper bound of the slider in canonical units
func (u Unit) MaxCanonical() float64 {
	return u.ToCanonical(u.Max)
}

// Snap rounds a display value to the nearest step and clamps it to [0, Max]
func (u Unit) Snap(display float64) float64 {
	if math.IsNaN(display) || display <= 0 {
		return 0
	}
	snapped := math.Round(display/u.Step) * u.Step
	return math.Min(snapped, u.Max)
}

// Format renders a canonical value in this unit, e.g. "8oz" or "0.50L"
func (u Unit) Format(canonical float64) string {
	return FormatDisplay(canonical, u)
}

// FormatDisplay converts a canonical value to the unit's display value and
// formats it with the unit's fixed precision and label.
func FormatDisplay(value float64, u Unit) string {
	return strconv.FormatFloat(u.ToDisplay(value), 'f', u.Precision, 64) + u.Label
}

// FormatPercent formats a fraction as a whole percentage ("0.24" -> "24%")
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%.0f%%", fraction*100)
}

var aliases = map[string]int{
	"oz":     Ounces,
	"ounce":  Ounces,
	"ounces": Ounces,
	"l":      Liters,
	"liter":  Liters,
	"liters": Liters,
	"litre":  Liters,
	"litres": Liters,
}

// Lookup resolves a unit name or label (case-insensitive) to its index
func Lookup(name string) (int, error) {
	idx, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q (expected oz or L)", ErrUnknownUnit, name)
	}
	return idx, nil
}

// amountPattern matches a decimal number optionally followed by a unit word
var amountPattern = regexp.MustCompile(`^(\d+(?:\.\d*)?|\.\d+)\s*([a-zA-Z]*)$`)

// ParseAmount parses user input such as "12", "12oz", "0.5L" or "0.5 liters".
// It returns the value in the named unit and the unit's index, or -1 when the
// input carries no unit.
func ParseAmount(input string) (value float64, unitIdx int, err error) {
	matches := amountPattern.FindStringSubmatch(strings.TrimSpace(input))
	if matches == nil {
		return 0, -1, fmt.Errorf("%w: expected a number like 12, 12oz or 0.5L, got %q", ErrInvalidAmount, input)
	}

	value, err = strconv.ParseFloat(matches[1], 64)
	if err != nil || math.IsInf(value, 0) {
		return 0, -1, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}

	if matches[2] == "" {
		return value, -1, nil
	}

	unitIdx, err = Lookup(matches[2])
	if err != nil {
		return 0, -1, err
	}
	return value, unitIdx, nil
}
