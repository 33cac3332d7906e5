package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/waterlog/internal/ledger"
	"github.com/xolan/waterlog/internal/service"
	"github.com/xolan/waterlog/internal/timeutil"
	"github.com/xolan/waterlog/internal/tui/ui"
	"github.com/xolan/waterlog/internal/unit"
)

// todayMode represents the current mode of the today view
type todayMode int

const (
	todayModeNormal todayMode = iota
	todayModeEdit
	todayModeDelete
)

// TodayModel is the model for the today view: goal progress, the amount
// picker and the day's entries.
type TodayModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width  int
	height int
	cursor int
	err    error

	ledger *ledger.Ledger
	// crossed is set by the ledger's goal listener and cleared once the
	// view has reported the crossing
	crossed *bool

	mode        todayMode
	amountInput textinput.Model
	bar         progress.Model
}

// NewTodayModel creates a new today view model
func NewTodayModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) TodayModel {
	amountInput := textinput.New()
	amountInput.Placeholder = "Amount (e.g., 12, 12oz, 0.5L)..."
	amountInput.CharLimit = 16
	amountInput.Width = 30

	return TodayModel{
		services:    services,
		styles:      styles,
		keys:        keys,
		amountInput: amountInput,
		bar:         newProgressBar(styles),
	}
}

func newProgressBar(styles ui.Styles) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(styles.ProgressFull),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)
	bar.EmptyColor = styles.ProgressEmpty
	return bar
}

// ledgerLoadedMsg is sent when today's ledger has been opened
type ledgerLoadedMsg struct {
	ledger  *ledger.Ledger
	crossed *bool
}

// Init implements tea.Model
func (m TodayModel) Init() tea.Cmd {
	return m.loadLedger()
}

// Update implements tea.Model
func (m TodayModel) Update(msg tea.Msg) (TodayModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ledgerLoadedMsg:
		m.ledger = msg.ledger
		m.crossed = msg.crossed
		m.cursor = max(0, m.ledger.Len()-1)
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.bar = newProgressBar(msg.Styles)
		m.bar.Width = m.barWidth()
		return m, nil

	case tea.KeyMsg:
		if m.ledger == nil {
			return m, nil
		}
		switch m.mode {
		case todayModeEdit:
			return m.handleEditMode(msg)
		case todayModeDelete:
			return m.handleDeleteMode(msg)
		}
		return m.handleNormalMode(msg)
	}

	if m.mode == todayModeEdit {
		var cmd tea.Cmd
		m.amountInput, cmd = m.amountInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m TodayModel) handleNormalMode(msg tea.KeyMsg) (TodayModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Decrease):
		m.ledger.NudgePending(-1)
		m.err = nil
	case key.Matches(msg, m.keys.Increase):
		m.ledger.NudgePending(1)
		m.err = nil
	case key.Matches(msg, m.keys.Add):
		return m.addEntry()
	case key.Matches(msg, m.keys.Edit):
		m.mode = todayModeEdit
		m.amountInput.SetValue("")
		m.amountInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.ToggleUnit):
		m.selectUnit((m.ledger.ActiveUnitIndex() + 1) % len(unit.Units))
	case key.Matches(msg, m.keys.Unit1):
		m.selectUnit(unit.Ounces)
	case key.Matches(msg, m.keys.Unit2):
		m.selectUnit(unit.Liters)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.ledger.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Delete):
		if m.ledger.Len() > 0 {
			m.mode = todayModeDelete
		}
	}
	return m, nil
}

// handleEditMode handles key events while typing an exact amount
func (m TodayModel) handleEditMode(msg tea.KeyMsg) (TodayModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = todayModeNormal
		m.amountInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		value := strings.TrimSpace(m.amountInput.Value())
		m.mode = todayModeNormal
		m.amountInput.Blur()
		if value == "" {
			return m, nil
		}
		m.err = service.StageAmount(m.ledger, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.amountInput, cmd = m.amountInput.Update(msg)
	return m, cmd
}

// handleDeleteMode handles key events when in delete confirmation mode
func (m TodayModel) handleDeleteMode(msg tea.KeyMsg) (TodayModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = todayModeNormal
		_, m.err = m.ledger.DeleteEntry(m.cursor)
		if m.cursor >= m.ledger.Len() {
			m.cursor = max(0, m.ledger.Len()-1)
		}
	case "n", "N", "esc":
		m.mode = todayModeNormal
	}
	return m, nil
}

// addEntry commits the staged amount. A save failure is shown but the entry
// stays in the list.
func (m TodayModel) addEntry() (TodayModel, tea.Cmd) {
	_, m.err = m.ledger.AddEntry()
	m.cursor = m.ledger.Len() - 1

	if m.crossed == nil || !*m.crossed {
		return m, nil
	}
	*m.crossed = false
	label := service.NewDayStatus(m.ledger).Label()
	return m, func() tea.Msg {
		return ui.GoalReachedMsg{Label: label}
	}
}

func (m *TodayModel) selectUnit(idx int) {
	_, m.err = m.ledger.SelectUnit(idx)
}

// View implements tea.Model
func (m TodayModel) View() string {
	if m.ledger == nil {
		return "Loading..."
	}

	status := service.NewDayStatus(m.ledger)

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Today, " + timeutil.FormatHeader(status.Date)))
	b.WriteString("\n")

	// Progress toward the goal
	b.WriteString(m.bar.ViewAs(m.ledger.DisplayFraction()))
	b.WriteString(" ")
	b.WriteString(m.styles.ProgressLabel.Render(status.Label()))
	b.WriteString("\n")
	if status.GoalReached {
		b.WriteString(m.styles.Success.Render("Goal reached!"))
	} else {
		remaining := ledger.GoalValue - status.Total
		b.WriteString(m.styles.StatLabel.Render(status.Unit.Format(remaining) + " to go"))
	}
	b.WriteString("\n\n")

	switch m.mode {
	case todayModeEdit:
		b.WriteString(m.renderAmountForm())
	case todayModeDelete:
		b.WriteString(m.renderDeleteConfirm(status))
	default:
		b.WriteString(m.renderPicker(status))
		b.WriteString("\n\n")
		b.WriteString(m.renderEntries(status))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return b.String()
}

// renderPicker renders the staged amount and the unit selector
func (m TodayModel) renderPicker(status service.DayStatus) string {
	var b strings.Builder
	b.WriteString(m.styles.StatLabel.Render("Amount:"))
	b.WriteString(m.styles.Pending.Render("◂ " + status.Unit.Format(status.Pending) + " ▸"))
	b.WriteString("  ")
	for i, u := range unit.Units {
		if i == m.ledger.ActiveUnitIndex() {
			b.WriteString(m.styles.UnitActive.Render(u.Label))
		} else {
			b.WriteString(m.styles.UnitInactive.Render(u.Label))
		}
	}
	return b.String()
}

func (m TodayModel) renderEntries(status service.DayStatus) string {
	if len(status.Entries) == 0 {
		return m.styles.StatLabel.Render("No water logged yet. Press enter to log " + status.Unit.Format(status.Pending) + ".")
	}

	var b strings.Builder
	b.WriteString(RenderEntryList(status.Entries, m.styles, EntryRenderOptions{
		Unit:     status.Unit,
		Location: m.services.Ledger.Location(),
		Cursor:   m.cursor,
		MaxRows:  m.listRows(),
	}))
	b.WriteString(strings.Repeat("─", min(30, max(m.width, 10))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d %s", len(status.Entries), pluralize("entry", len(status.Entries))))
	return b.String()
}

// renderAmountForm renders the exact amount input
func (m TodayModel) renderAmountForm() string {
	var b strings.Builder
	b.WriteString(m.styles.StatLabel.Render("Stage amount:"))
	b.WriteString("\n")
	b.WriteString(m.styles.InputFocused.Render(m.amountInput.View()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Enter to stage, Esc to cancel"))
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m TodayModel) renderDeleteConfirm(status service.DayStatus) string {
	var b strings.Builder
	b.WriteString(m.styles.Warning.Render("Delete this entry?"))
	b.WriteString("\n\n")

	if m.cursor < len(status.Entries) {
		e := status.Entries[m.cursor].Entry
		b.WriteString(m.styles.StatLabel.Render("Time:   "))
		b.WriteString(m.styles.StatValue.Render(timeutil.FormatClock(e.Timestamp, m.services.Ledger.Location())))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Amount: "))
		b.WriteString(m.styles.StatValue.Render(status.Unit.Format(e.Value)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *TodayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.bar.Width = m.barWidth()
}

func (m TodayModel) barWidth() int {
	return max(10, min(50, m.width-20))
}

// listRows is the number of entry rows that fit below the picker
func (m TodayModel) listRows() int {
	if m.height == 0 {
		return 0
	}
	return max(3, m.height-10)
}

// loadLedger creates a command to open today's ledger
func (m TodayModel) loadLedger() tea.Cmd {
	return func() tea.Msg {
		crossed := new(bool)
		l := m.services.Ledger.Open(ledger.WithGoalListener(func(float64) {
			*crossed = true
		}))
		return ledgerLoadedMsg{ledger: l, crossed: crossed}
	}
}

// IsInputMode returns true when the view is capturing keyboard input
func (m TodayModel) IsInputMode() bool {
	return m.mode == todayModeEdit
}

// Status returns the day's current state, or false before the ledger is open
func (m TodayModel) Status() (service.DayStatus, bool) {
	if m.ledger == nil {
		return service.DayStatus{}, false
	}
	return service.NewDayStatus(m.ledger), true
}
