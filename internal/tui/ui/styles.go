package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Entry list
	EntrySelected lipgloss.Style
	EntryNormal   lipgloss.Style
	EntryIndex    lipgloss.Style
	EntryTime     lipgloss.Style
	EntryAmount   lipgloss.Style

	// Amount picker
	Pending      lipgloss.Style
	UnitActive   lipgloss.Style
	UnitInactive lipgloss.Style

	// Progress
	ProgressLabel lipgloss.Style
	ProgressFull  string // color spec for the filled part of the bar
	ProgressEmpty string // color spec for the empty part of the bar
	Celebration   lipgloss.Style

	// Settings
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	InputFocused lipgloss.Style
	Dialog       lipgloss.Style

	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// palette maps semantic roles to colors
type palette struct {
	primary   lipgloss.TerminalColor // tabs, titles
	secondary lipgloss.TerminalColor // times, keys
	accent    lipgloss.TerminalColor // amounts, progress fill
	muted     lipgloss.TerminalColor // inactive elements, labels
	success   lipgloss.TerminalColor
	warning   lipgloss.TerminalColor
	errColor  lipgloss.TerminalColor
	fg        lipgloss.TerminalColor
	bg        lipgloss.TerminalColor
	selection lipgloss.TerminalColor
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:   lipgloss.Color("39"),  // Cyan
		secondary: lipgloss.Color("99"),  // Purple
		accent:    lipgloss.Color("45"),  // Light blue
		muted:     lipgloss.Color("240"), // Gray
		success:   lipgloss.Color("82"),
		warning:   lipgloss.Color("214"),
		errColor:  lipgloss.Color("196"),
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
		selection: lipgloss.Color("237"),
	})
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// The theme's cyan drives titles and the progress fill.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:   r.Cyan(),
		secondary: r.Purple(),
		accent:    r.BrightPurple(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		errColor:  r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
		selection: r.BrightBlack(),
	})
}

func newStyles(p palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		EntrySelected: lipgloss.NewStyle().
			Background(p.selection).
			Bold(true),
		EntryNormal: lipgloss.NewStyle(),
		EntryIndex: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(5),
		EntryTime: lipgloss.NewStyle().
			Foreground(p.secondary).
			Width(9),
		EntryAmount: lipgloss.NewStyle().
			Foreground(p.accent).
			Width(8).
			Align(lipgloss.Right),

		Pending: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Padding(0, 1),
		UnitActive: lipgloss.NewStyle().
			Foreground(p.bg).
			Background(p.primary).
			Bold(true).
			Padding(0, 1),
		UnitInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),

		ProgressLabel: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),
		ProgressFull:  colorSpec(p.primary),
		ProgressEmpty: colorSpec(p.muted),
		Celebration: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.success).
			Padding(0, 2),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.muted),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.primary).
			Padding(0, 1),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			Width(50),

		Error: lipgloss.NewStyle().
			Foreground(p.errColor),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
	}
}

// colorSpec converts a terminal color to the string form bubbles/progress
// expects: an ANSI number or "#rrggbb"
func colorSpec(c lipgloss.TerminalColor) string {
	if v, ok := c.(lipgloss.Color); ok {
		return string(v)
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
