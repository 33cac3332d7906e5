package ui

import (
	"testing"
)

func TestNewThemeProvider_Default(t *testing.T) {
	tp := NewThemeProvider("")

	if tp == nil {
		t.Fatal("expected non-nil ThemeProvider")
	}
	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected default theme %q, got %q", DefaultTheme, tp.CurrentName())
	}
}

func TestNewThemeProvider_WithTheme(t *testing.T) {
	tp := NewThemeProvider("nord")

	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}
}

func TestNewThemeProvider_InvalidTheme(t *testing.T) {
	tp := NewThemeProvider("nonexistent-theme-xyz")

	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected fallback to %q, got %q", DefaultTheme, tp.CurrentName())
	}
}

func TestThemeProvider_SetTheme(t *testing.T) {
	tp := NewThemeProvider("")

	if !tp.SetTheme("nord") {
		t.Error("expected SetTheme to return true for valid theme")
	}
	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}
}

func TestThemeProvider_SetTheme_Invalid(t *testing.T) {
	tp := NewThemeProvider("dracula")

	if tp.SetTheme("nonexistent-theme-xyz") {
		t.Error("expected SetTheme to return false for invalid theme")
	}
	if tp.CurrentName() != "dracula" {
		t.Errorf("theme should not change after invalid SetTheme, got %q", tp.CurrentName())
	}
}

func TestThemeProvider_NextTheme(t *testing.T) {
	tp := NewThemeProvider("dracula")

	next := tp.NextTheme()

	if next == "dracula" {
		t.Error("NextTheme should move away from the current theme")
	}
	if tp.CurrentName() != next {
		t.Errorf("CurrentName() = %q, expected NextTheme() value %q", tp.CurrentName(), next)
	}
}

func TestThemeProvider_AvailableThemes(t *testing.T) {
	tp := NewThemeProvider("")

	themes := tp.AvailableThemes()
	if len(themes) < 2 {
		t.Fatalf("expected several themes, got %d", len(themes))
	}

	found := false
	for i, theme := range themes {
		if i > 0 && theme < themes[i-1] {
			t.Errorf("themes not sorted: %q < %q", theme, themes[i-1])
		}
		if theme == "dracula" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'dracula' in available themes")
	}
}

func TestThemeProvider_Styles(t *testing.T) {
	tp := NewThemeProvider("dracula")
	styles := tp.Styles()

	if styles.ProgressFull == "" || styles.ProgressEmpty == "" {
		t.Errorf("expected progress colors from the theme, got %q and %q", styles.ProgressFull, styles.ProgressEmpty)
	}
	if styles.App.GetPaddingTop() == 0 {
		t.Error("expected App style to have padding")
	}
}

func TestThemeProvider_CurrentDisplayName(t *testing.T) {
	tp := NewThemeProvider("dracula")

	if tp.CurrentDisplayName() == "" {
		t.Error("expected non-empty display name")
	}
}
