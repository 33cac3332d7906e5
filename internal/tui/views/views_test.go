package views

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/xolan/waterlog/internal/config"
	"github.com/xolan/waterlog/internal/entry"
	"github.com/xolan/waterlog/internal/service"
	"github.com/xolan/waterlog/internal/tui/ui"
	"github.com/xolan/waterlog/internal/unit"
)

var testNow = time.Date(2024, time.June, 3, 9, 5, 0, 0, time.UTC)

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"

	services, err := service.NewServicesWithPaths(tmpDir, filepath.Join(tmpDir, "config.toml"), cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	services.Ledger.SetClock(func() time.Time { return testNow })
	t.Cleanup(func() { _ = services.Close() })
	return services
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
)

func loadedToday(t *testing.T, services *service.Services) TodayModel {
	t.Helper()
	m := NewTodayModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetSize(80, 30)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected Init to return a command")
	}
	m, _ = m.Update(cmd())
	return m
}

func press(m TodayModel, msgs ...tea.KeyMsg) (TodayModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func TestRenderEntryList(t *testing.T) {
	styles := ui.DefaultStyles()
	entries := []service.IndexedEntry{
		{Entry: entry.New(8, testNow), Index: 1},
		{Entry: entry.New(16.907, testNow.Add(3*time.Hour)), Index: 2},
	}

	result := RenderEntryList(entries, styles, EntryRenderOptions{
		Unit:     unit.Units[unit.Ounces],
		Location: time.UTC,
		Cursor:   0,
	})

	for _, want := range []string{"1.", "2.", "9:05AM", "12:05PM", "8oz", "17oz"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected %q in result:\n%s", want, result)
		}
	}

	liters := RenderEntryList(entries, styles, EntryRenderOptions{
		Unit:     unit.Units[unit.Liters],
		Location: time.UTC,
		Cursor:   -1,
	})
	if !strings.Contains(liters, "0.50L") {
		t.Errorf("expected entry shown in liters:\n%s", liters)
	}
}

func TestRenderEntryList_Empty(t *testing.T) {
	if result := RenderEntryList(nil, ui.DefaultStyles(), EntryRenderOptions{}); result != "" {
		t.Errorf("expected empty result, got %q", result)
	}
}

func TestRenderEntryList_Window(t *testing.T) {
	var entries []service.IndexedEntry
	for i := 0; i < 10; i++ {
		entries = append(entries, service.IndexedEntry{Entry: entry.New(1, testNow), Index: i + 1})
	}

	result := RenderEntryList(entries, ui.DefaultStyles(), EntryRenderOptions{
		Unit:    unit.Units[0],
		Cursor:  9,
		MaxRows: 4,
	})

	if !strings.Contains(result, "↑ 6 more") {
		t.Errorf("expected hidden rows above:\n%s", result)
	}
	if strings.Contains(result, "↓") {
		t.Errorf("expected nothing hidden below the last row:\n%s", result)
	}
	if !strings.Contains(result, "10.") || strings.Contains(result, "\n6.") {
		t.Errorf("expected rows 7-10 only:\n%s", result)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name               string
		n, cursor, rows    int
		wantStart, wantEnd int
	}{
		{"no limit", 5, 2, 0, 0, 5},
		{"fits", 3, 0, 5, 0, 3},
		{"cursor at top", 10, 0, 4, 0, 4},
		{"cursor in middle", 10, 5, 4, 3, 7},
		{"cursor at bottom", 10, 9, 4, 6, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.n, tt.cursor, tt.rows)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("visibleRange(%d, %d, %d) = (%d, %d), expected (%d, %d)",
					tt.n, tt.cursor, tt.rows, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize("entry", 1); got != "entry" {
		t.Errorf("pluralize(entry, 1) = %q", got)
	}
	if got := pluralize("entry", 2); got != "entries" {
		t.Errorf("pluralize(entry, 2) = %q", got)
	}
}

func TestTodayModel_LoadingBeforeInit(t *testing.T) {
	m := NewTodayModel(setupTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())

	if got := m.View(); got != "Loading..." {
		t.Errorf("expected Loading..., got %q", got)
	}
	if _, ok := m.Status(); ok {
		t.Error("expected no status before the ledger is loaded")
	}

	// Keys before load are ignored
	if _, cmd := m.Update(enterKey); cmd != nil {
		t.Error("expected no command before load")
	}
}

func TestTodayModel_InitialView(t *testing.T) {
	m := loadedToday(t, setupTestServices(t))
	view := m.View()

	for _, want := range []string{"Today, Mon, Jun 3", "0oz (0%)", "100oz to go", "8oz", "No water logged yet"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestTodayModel_NudgePending(t *testing.T) {
	services := setupTestServices(t)
	m := loadedToday(t, services)

	m, _ = press(m, rightKey, rightKey)
	status, _ := m.Status()
	if status.Pending != 10 {
		t.Errorf("expected pending 10oz, got %v", status.Pending)
	}

	m, _ = press(m, leftKey, runes("-"), runes("h"))
	status, _ = m.Status()
	if status.Pending != 7 {
		t.Errorf("expected pending 7oz, got %v", status.Pending)
	}
	if !strings.Contains(m.View(), "◂ 7oz ▸") {
		t.Errorf("expected staged amount in view:\n%s", m.View())
	}

	// Staging alone is not persisted
	if got := services.Ledger.Status().Pending; got != 8 {
		t.Errorf("expected stored pending 8oz, got %v", got)
	}
}

func TestTodayModel_AddEntry(t *testing.T) {
	services := setupTestServices(t)
	m := loadedToday(t, services)

	m, cmd := press(m, enterKey)
	if cmd != nil {
		t.Error("expected no goal message below the goal")
	}

	status, _ := m.Status()
	if len(status.Entries) != 1 || status.Total != 8 {
		t.Fatalf("expected one 8oz entry, got %+v", status)
	}
	if status.Entries[0].Entry.Timestamp != testNow.UnixMilli() {
		t.Errorf("expected entry timestamp %d, got %d", testNow.UnixMilli(), status.Entries[0].Entry.Timestamp)
	}

	view := m.View()
	for _, want := range []string{"8oz (8%)", "9:05AM", "1 entry"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}

	// "a" also logs
	m, _ = press(m, runes("a"))
	if got := services.Ledger.Status(); len(got.Entries) != 2 || got.Total != 16 {
		t.Errorf("expected two persisted entries totalling 16oz, got %+v", got)
	}
}

func TestTodayModel_GoalReached(t *testing.T) {
	services := setupTestServices(t)
	for i := 0; i < 6; i++ {
		if _, err := services.Ledger.Add("16"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := services.Ledger.Stage("8"); err != nil {
		t.Fatal(err)
	}

	m := loadedToday(t, services)
	m, cmd := press(m, enterKey)
	if cmd == nil {
		t.Fatal("expected a goal message when crossing the goal")
	}

	msg, ok := cmd().(ui.GoalReachedMsg)
	if !ok {
		t.Fatalf("expected GoalReachedMsg, got %T", cmd())
	}
	if msg.Label != "104oz (104%)" {
		t.Errorf("expected label %q, got %q", "104oz (104%)", msg.Label)
	}
	if !strings.Contains(m.View(), "Goal reached!") {
		t.Errorf("expected goal text in view:\n%s", m.View())
	}

	// Staying above the goal does not celebrate again
	_, cmd = press(m, enterKey)
	if cmd != nil {
		t.Error("expected no goal message once the goal is already met")
	}
}

func TestTodayModel_SelectUnit(t *testing.T) {
	services := setupTestServices(t)
	m := loadedToday(t, services)

	m, _ = press(m, runes("u"))
	status, _ := m.Status()
	if status.Unit.Label != "L" {
		t.Fatalf("expected liters after toggle, got %s", status.Unit.Label)
	}
	if !strings.Contains(m.View(), "◂ 0.50L ▸") {
		t.Errorf("expected liters picker:\n%s", m.View())
	}
	if got := services.Ledger.Status().Unit.Label; got != "L" {
		t.Errorf("expected unit change to be persisted, got %s", got)
	}

	m, _ = press(m, runes("1"))
	status, _ = m.Status()
	if status.Unit.Label != "oz" {
		t.Errorf("expected ounces after '1', got %s", status.Unit.Label)
	}

	m, _ = press(m, runes("2"))
	status, _ = m.Status()
	if status.Unit.Label != "L" {
		t.Errorf("expected liters after '2', got %s", status.Unit.Label)
	}
}

func TestTodayModel_EditAmount(t *testing.T) {
	m := loadedToday(t, setupTestServices(t))

	m, cmd := press(m, runes("e"))
	if !m.IsInputMode() {
		t.Fatal("expected input mode after 'e'")
	}
	if cmd == nil {
		t.Error("expected blink command")
	}

	m, _ = press(m, runes("12"), enterKey)
	if m.IsInputMode() {
		t.Error("expected input mode to end after enter")
	}
	status, _ := m.Status()
	if status.Pending != 12 {
		t.Errorf("expected pending 12oz, got %v", status.Pending)
	}

	// A unit in the amount switches the unit
	m, _ = press(m, runes("e"), runes("0.75L"), enterKey)
	status, _ = m.Status()
	if status.Unit.Label != "L" || status.Unit.Format(status.Pending) != "0.75L" {
		t.Errorf("expected 0.75L staged, got %s", status.Unit.Format(status.Pending))
	}
}

func TestTodayModel_EditAmount_Invalid(t *testing.T) {
	m := loadedToday(t, setupTestServices(t))

	m, _ = press(m, runes("e"), runes("lots"), enterKey)
	if !strings.Contains(m.View(), "Error:") {
		t.Errorf("expected error in view:\n%s", m.View())
	}
	status, _ := m.Status()
	if status.Pending != 8 {
		t.Errorf("expected pending unchanged at 8oz, got %v", status.Pending)
	}

	// Nudging clears the error
	m, _ = press(m, rightKey)
	if strings.Contains(m.View(), "Error:") {
		t.Error("expected error to clear after nudge")
	}
}

func TestTodayModel_EditAmount_Cancel(t *testing.T) {
	m := loadedToday(t, setupTestServices(t))

	m, _ = press(m, runes("e"), runes("3"), escKey)
	if m.IsInputMode() {
		t.Error("expected esc to leave input mode")
	}
	status, _ := m.Status()
	if status.Pending != 8 {
		t.Errorf("expected pending unchanged at 8oz, got %v", status.Pending)
	}
}

func TestTodayModel_Delete(t *testing.T) {
	services := setupTestServices(t)
	for _, amount := range []string{"8", "12"} {
		if _, err := services.Ledger.Add(amount); err != nil {
			t.Fatal(err)
		}
	}
	m := loadedToday(t, services)

	// Cursor starts on the newest entry; move to the first
	m, _ = press(m, upKey, runes("d"))
	if !strings.Contains(m.View(), "Delete this entry?") {
		t.Fatalf("expected confirmation:\n%s", m.View())
	}

	m, _ = press(m, runes("n"))
	if status, _ := m.Status(); len(status.Entries) != 2 {
		t.Fatalf("expected 'n' to keep both entries, got %d", len(status.Entries))
	}

	m, _ = press(m, runes("d"), runes("y"))
	status, _ := m.Status()
	if len(status.Entries) != 1 || status.Entries[0].Entry.Value != 12 {
		t.Errorf("expected only the 12oz entry to remain, got %+v", status.Entries)
	}
	if got := services.Ledger.Status(); len(got.Entries) != 1 {
		t.Errorf("expected delete to be persisted, got %d entries", len(got.Entries))
	}
}

func TestTodayModel_DeleteWithoutEntries(t *testing.T) {
	m := loadedToday(t, setupTestServices(t))

	m, _ = press(m, runes("d"))
	if strings.Contains(m.View(), "Delete this entry?") {
		t.Error("expected no confirmation without entries")
	}
}

func TestTodayModel_ThemeChanged(t *testing.T) {
	m := loadedToday(t, setupTestServices(t))
	styles := ui.NewThemeProvider("nord").Styles()

	m, cmd := m.Update(ui.ThemeChangedMsg{ThemeName: "nord", Styles: styles})
	if cmd != nil {
		t.Error("expected no command")
	}
	if m.bar.FullColor != styles.ProgressFull {
		t.Errorf("expected bar color %q, got %q", styles.ProgressFull, m.bar.FullColor)
	}
	if m.bar.Width != m.barWidth() {
		t.Errorf("expected bar width to be kept, got %d", m.bar.Width)
	}
}

func TestSettingsModel_View(t *testing.T) {
	services := setupTestServices(t)
	m := NewSettingsModel(services, ui.NewThemeProvider(""), ui.DefaultStyles(), ui.DefaultKeyMap())

	m, _ = m.Update(m.Init()())
	view := m.View()

	for _, want := range []string{"Settings", services.Config.GetPath(), "using defaults", "UTC", "file", "oz", ui.DefaultTheme, "100oz"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestSettingsModel_PickTheme(t *testing.T) {
	tp := ui.NewThemeProvider("")
	m := NewSettingsModel(setupTestServices(t), tp, ui.DefaultStyles(), ui.DefaultKeyMap())
	themes := tp.AvailableThemes()
	start := m.themeCursor

	m, _ = m.Update(enterKey)
	if !m.IsInputMode() {
		t.Fatal("expected picker to open on enter")
	}

	m, _ = m.Update(runes("j"))
	if m.themeCursor != start+1 {
		t.Errorf("expected cursor %d, got %d", start+1, m.themeCursor)
	}

	m, cmd := m.Update(enterKey)
	if m.IsInputMode() {
		t.Error("expected picker to close after selection")
	}
	if cmd == nil {
		t.Fatal("expected theme change command")
	}
	req, ok := cmd().(ui.ThemeChangeRequestMsg)
	if !ok || req.ThemeName != themes[start+1] {
		t.Errorf("expected request for %q, got %+v", themes[start+1], cmd())
	}
}

func TestSettingsModel_CancelPicker(t *testing.T) {
	m := NewSettingsModel(setupTestServices(t), ui.NewThemeProvider(""), ui.DefaultStyles(), ui.DefaultKeyMap())
	start := m.themeCursor

	m, _ = m.Update(enterKey)
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(escKey)

	if m.IsInputMode() {
		t.Error("expected esc to close the picker")
	}
	if m.themeCursor != start {
		t.Errorf("expected cursor reset to %d, got %d", start, m.themeCursor)
	}
}

func TestSettingsModel_ThemeChanged(t *testing.T) {
	m := NewSettingsModel(setupTestServices(t), ui.NewThemeProvider(""), ui.DefaultStyles(), ui.DefaultKeyMap())

	m, _ = m.Update(ui.ThemeChangedMsg{ThemeName: "nord", Styles: ui.DefaultStyles()})
	if m.themeName != "nord" {
		t.Errorf("expected theme nord, got %q", m.themeName)
	}
	if m.themes[m.themeCursor] != "nord" {
		t.Errorf("expected cursor on nord, got %q", m.themes[m.themeCursor])
	}
}
