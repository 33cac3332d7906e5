package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", keys.Up},
		{"Down", keys.Down},
		{"NextTab", keys.NextTab},
		{"PrevTab", keys.PrevTab},
		{"Select", keys.Select},
		{"Back", keys.Back},
		{"Quit", keys.Quit},
		{"Help", keys.Help},
		{"Theme", keys.Theme},
		{"Decrease", keys.Decrease},
		{"Increase", keys.Increase},
		{"Add", keys.Add},
		{"Edit", keys.Edit},
		{"ToggleUnit", keys.ToggleUnit},
		{"Unit1", keys.Unit1},
		{"Unit2", keys.Unit2},
		{"Delete", keys.Delete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.binding.Keys()) == 0 {
				t.Errorf("expected keys for binding %s", tt.name)
			}
			help := tt.binding.Help()
			if help.Key == "" {
				t.Errorf("expected help key for binding %s", tt.name)
			}
			if help.Desc == "" {
				t.Errorf("expected help description for binding %s", tt.name)
			}
		})
	}
}

func TestKeyBindingsMatch(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		key     string
	}{
		{"Quit q", keys.Quit, "q"},
		{"Quit ctrl+c", keys.Quit, "ctrl+c"},
		{"Up k", keys.Up, "k"},
		{"Down j", keys.Down, "j"},
		{"Decrease left", keys.Decrease, "left"},
		{"Decrease h", keys.Decrease, "h"},
		{"Decrease -", keys.Decrease, "-"},
		{"Increase right", keys.Increase, "right"},
		{"Increase l", keys.Increase, "l"},
		{"Increase +", keys.Increase, "+"},
		{"Add enter", keys.Add, "enter"},
		{"Add a", keys.Add, "a"},
		{"Edit e", keys.Edit, "e"},
		{"ToggleUnit u", keys.ToggleUnit, "u"},
		{"Unit1 1", keys.Unit1, "1"},
		{"Unit2 2", keys.Unit2, "2"},
		{"Delete d", keys.Delete, "d"},
		{"Theme t", keys.Theme, "t"},
		{"NextTab tab", keys.NextTab, "tab"},
		{"Help ?", keys.Help, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := false
			for _, k := range tt.binding.Keys() {
				if k == tt.key {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected binding %s to include key %s, got keys %v", tt.name, tt.key, tt.binding.Keys())
			}
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("expected short help bindings")
	}

	total := 0
	for _, col := range keys.FullHelp() {
		if len(col) == 0 {
			t.Error("expected no empty help columns")
		}
		total += len(col)
	}
	if total < len(keys.ShortHelp()) {
		t.Errorf("full help has %d bindings, expected at least the %d in short help", total, len(keys.ShortHelp()))
	}
}
