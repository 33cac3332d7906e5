package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/waterlog/internal/config"
	"github.com/xolan/waterlog/internal/ledger"
	"github.com/xolan/waterlog/internal/service"
	"github.com/xolan/waterlog/internal/tui/ui"
	"github.com/xolan/waterlog/internal/unit"
)

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// SettingsModel shows the active configuration and lets the user pick a theme
type SettingsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	config    config.Config
	path      string
	exists    bool
	themeName string

	// Theme picker
	picking     bool
	themes      []string
	themeCursor int
	themeOffset int
}

// NewSettingsModel creates a new settings view model
func NewSettingsModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) SettingsModel {
	m := SettingsModel{
		services:  services,
		styles:    styles,
		keys:      keys,
		themes:    themeProvider.AvailableThemes(),
		themeName: themeProvider.CurrentName(),
	}
	m.resetThemeCursor()
	return m
}

// settingsLoadedMsg carries the configuration read from the config service
type settingsLoadedMsg struct {
	config config.Config
	path   string
	exists bool
}

// Init implements tea.Model
func (m SettingsModel) Init() tea.Cmd {
	return func() tea.Msg {
		return settingsLoadedMsg{
			config: m.services.Config.Get(),
			path:   m.services.Config.GetPath(),
			exists: m.services.Config.Exists(),
		}
	}
}

// Update implements tea.Model
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.picking {
			return m.handlePicker(msg)
		}
		if key.Matches(msg, m.keys.Select) {
			m.picking = true
			m.scrollToCursor()
		}
		return m, nil

	case settingsLoadedMsg:
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		m.resetThemeCursor()
		m.config.Theme = msg.ThemeName
	}

	return m, nil
}

// handlePicker handles keys while the theme list is open
func (m SettingsModel) handlePicker(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.scrollToCursor()
		}
	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.scrollToCursor()
		}
	case key.Matches(msg, m.keys.Select):
		m.picking = false
		name := m.themes[m.themeCursor]
		return m, func() tea.Msg {
			return ui.ThemeChangeRequestMsg{ThemeName: name}
		}
	case key.Matches(msg, m.keys.Back):
		m.picking = false
		m.resetThemeCursor()
	}
	return m, nil
}

func (m *SettingsModel) resetThemeCursor() {
	for i, t := range m.themes {
		if t == m.themeName {
			m.themeCursor = i
			return
		}
	}
}

// scrollToCursor keeps the theme cursor inside the visible window
func (m *SettingsModel) scrollToCursor() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// View implements tea.Model
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Settings"))
	b.WriteString("\n")

	b.WriteString(m.line("Config file", m.path))
	if m.exists {
		b.WriteString(m.styles.StatLabel.Render(strings.Repeat(" ", 16)) + m.styles.Success.Render("file exists") + "\n")
	} else {
		b.WriteString(m.styles.StatLabel.Render(strings.Repeat(" ", 16)) + m.styles.Warning.Render("using defaults (run: waterlog config --init)") + "\n")
	}
	b.WriteString(m.line("Data directory", m.services.DataDir))
	b.WriteString("\n")

	b.WriteString(m.line("timezone", m.config.Timezone))
	b.WriteString(m.line("storage", m.config.Storage))
	b.WriteString(m.line("default_unit", m.config.DefaultUnit))
	b.WriteString(m.line("log_level", m.config.LogLevel))
	b.WriteString(m.line("daily goal", unit.Units[m.config.DefaultUnitIndex()].Format(ledger.GoalValue)))

	if m.picking {
		b.WriteString("\n")
		b.WriteString(m.renderPicker())
		return b.String()
	}

	b.WriteString(m.line("theme", m.themeName))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Press Enter to change theme, t for the next one"))
	return b.String()
}

// renderPicker renders the scrollable theme list
func (m SettingsModel) renderPicker() string {
	var b strings.Builder

	end := min(m.themeOffset+maxVisibleThemes, len(m.themes))
	if m.themeOffset > 0 {
		b.WriteString(m.styles.StatLabel.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := m.themeOffset; i < end; i++ {
		name := m.themes[i]
		current := ""
		if name == m.themeName {
			current = m.styles.Success.Render(" (current)")
		}
		if i == m.themeCursor {
			b.WriteString(m.styles.EntrySelected.Render("▸ " + name))
		} else {
			b.WriteString("  " + m.styles.StatValue.Render(name))
		}
		b.WriteString(current)
		b.WriteString("\n")
	}

	if end < len(m.themes) {
		b.WriteString(m.styles.StatLabel.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("↑/↓ navigate  Enter select  Esc cancel"))
	return b.String()
}

func (m SettingsModel) line(label, value string) string {
	return m.styles.StatLabel.Render(fmt.Sprintf("%-16s", label+":")) + m.styles.StatValue.Render(value) + "\n"
}

// SetSize sets the view dimensions
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true while the theme list is open
func (m SettingsModel) IsInputMode() bool {
	return m.picking
}
