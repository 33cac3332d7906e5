// Package tui provides the Terminal User Interface for waterlog.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/waterlog/internal/service"
	"github.com/xolan/waterlog/internal/tui/ui"
	"github.com/xolan/waterlog/internal/tui/views"
)

// celebrationDuration is how long the goal banner stays on screen
const celebrationDuration = 3 * time.Second

// Tab represents a view tab
type Tab int

const (
	TabToday Tab = iota
	TabSettings
)

var tabNames = []string{"Today", "Settings"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	err       error

	// Goal banner; celebrationID ties a CelebrationDoneMsg to the banner it
	// was scheduled for
	celebration   string
	celebrationID int

	// View models
	todayView    views.TodayModel
	settingsView views.SettingsModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabToday,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		todayView:     views.NewTodayModel(services, styles, keys),
		settingsView:  views.NewSettingsModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.todayView.Init(),
		m.settingsView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		capturing := m.isCapturingKeys()

		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Back) && m.showHelp:
			m.showHelp = false
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Theme) && !capturing:
			return m, func() tea.Msg { return ui.ThemeChangeRequestMsg{} }
		}

		if m.showHelp {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 6 // tabs, status bar and padding
		m.todayView.SetSize(m.width, contentHeight)
		m.settingsView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		return m.changeTheme(msg.ThemeName)

	case ui.GoalReachedMsg:
		m.celebrationID++
		m.celebration = "Goal reached! " + msg.Label
		id := m.celebrationID
		return m, tea.Tick(celebrationDuration, func(time.Time) tea.Msg {
			return ui.CelebrationDoneMsg{ID: id}
		})

	case ui.CelebrationDoneMsg:
		if msg.ID == m.celebrationID {
			m.celebration = ""
		}
		return m, nil

	case themeSavedMsg:
		m.err = msg.err
		if msg.err != nil {
			m.services.Log.Warn().Err(msg.err).Msg("saving theme failed")
		}
		return m, nil
	}

	// Key presses go to the active view only; everything else reaches both
	// so async loads land even when their tab is hidden
	if _, ok := msg.(tea.KeyMsg); ok {
		switch m.activeTab {
		case TabToday:
			m.todayView, cmd = m.todayView.Update(msg)
		case TabSettings:
			m.settingsView, cmd = m.settingsView.Update(msg)
		}
		return m, cmd
	}

	var todayCmd, settingsCmd tea.Cmd
	m.todayView, todayCmd = m.todayView.Update(msg)
	m.settingsView, settingsCmd = m.settingsView.Update(msg)
	return m, tea.Batch(todayCmd, settingsCmd)
}

// themeSavedMsg reports the result of persisting the theme
type themeSavedMsg struct {
	err error
}

// changeTheme switches to name (the next theme when empty), restyles every
// view and saves the choice
func (m Model) changeTheme(name string) (tea.Model, tea.Cmd) {
	if name == "" {
		m.themeProvider.NextTheme()
	} else if !m.themeProvider.SetTheme(name) {
		return m, nil
	}

	current := m.themeProvider.CurrentName()
	m.styles = m.themeProvider.Styles()

	themeMsg := ui.ThemeChangedMsg{ThemeName: current, Styles: m.styles}
	m.todayView, _ = m.todayView.Update(themeMsg)
	m.settingsView, _ = m.settingsView.Update(themeMsg)

	config := m.services.Config
	return m, func() tea.Msg {
		return themeSavedMsg{err: config.SetTheme(current)}
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.celebration != "" {
		b.WriteString(m.styles.Celebration.Render(m.celebration))
		b.WriteString("\n")
	}

	switch m.activeTab {
	case TabToday:
		b.WriteString(m.todayView.View())
	case TabSettings:
		b.WriteString(m.settingsView.View())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatusBar())

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	switch {
	case m.isCapturingKeys():
		parts = append(parts, m.renderKeyHelp("enter", "confirm"), m.renderKeyHelp("esc", "cancel"))
	case m.activeTab == TabToday:
		for _, b := range m.keys.ShortHelp() {
			parts = append(parts, m.renderKeyHelp(b.Help().Key, b.Help().Desc))
		}
	default:
		parts = append(parts,
			m.renderKeyHelp("enter", "themes"),
			m.renderKeyHelp("t", "next theme"),
			m.renderKeyHelp("tab", "views"),
			m.renderKeyHelp("q", "quit"),
		)
	}

	content := strings.Join(parts, "  ")
	if padding := m.width - 4 - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return m.styles.StatusKey.Render(key) + " " + m.styles.StatusHelp.Render(desc)
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	switch m.activeTab {
	case TabToday:
		return m.todayView.IsInputMode()
	case TabSettings:
		return m.settingsView.IsInputMode()
	}
	return false
}

// initCurrentView refreshes the view being switched to. The today view keeps
// its open ledger so a staged amount survives a tab switch.
func (m Model) initCurrentView() tea.Cmd {
	if m.activeTab == TabSettings {
		return m.settingsView.Init()
	}
	return nil
}

// renderHelpOverlay renders the keyboard shortcuts for every binding
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n")

	for _, column := range m.keys.FullHelp() {
		for _, b := range column {
			h := b.Help()
			help.WriteString(m.styles.HelpKey.Render(fmt.Sprintf("  %-10s", h.Key)))
			help.WriteString(m.styles.HelpDesc.Render(h.Desc))
			help.WriteString("\n")
		}
		help.WriteString("\n")
	}

	help.WriteString(m.styles.HelpDesc.Render("Press ? or esc to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
