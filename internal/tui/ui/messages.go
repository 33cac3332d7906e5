package ui

// ThemeChangeRequestMsg is sent when a theme change is requested.
// An empty ThemeName asks for the next theme in the registry.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// GoalReachedMsg is sent when logging an entry takes the day's total to or
// past the goal.
type GoalReachedMsg struct {
	Label string // progress label at the moment of crossing, e.g. "104oz (104%)"
}

// CelebrationDoneMsg ends the celebration banner with the matching ID.
type CelebrationDoneMsg struct {
	ID int
}
