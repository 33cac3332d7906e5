// Package service provides the business logic layer for waterlog.
// It wraps the ledger, day store and config packages, providing one API for
// both the CLI and TUI frontends.
package service

import (
	"time"

	"github.com/xolan/waterlog/internal/entry"
	"github.com/xolan/waterlog/internal/ledger"
	"github.com/xolan/waterlog/internal/unit"
)

// IndexedEntry is an entry with its 1-based user-facing index
type IndexedEntry struct {
	Entry entry.Entry
	Index int
}

// DayStatus is a read-only view of one day's ledger
type DayStatus struct {
	Date        time.Time
	Unit        unit.Unit
	Entries     []IndexedEntry
	Pending     float64 // canonical units
	Total       float64 // canonical units
	Fraction    float64 // Total / goal, may exceed 1
	GoalReached bool
}

// NewDayStatus captures the current state of l
func NewDayStatus(l *ledger.Ledger) DayStatus {
	entries := l.Entries()
	indexed := make([]IndexedEntry, len(entries))
	for i, e := range entries {
		indexed[i] = IndexedEntry{Entry: e, Index: i + 1}
	}

	return DayStatus{
		Date:        l.Date(),
		Unit:        l.ActiveUnit(),
		Entries:     indexed,
		Pending:     l.PendingValue(),
		Total:       l.Total(),
		Fraction:    l.ProgressFraction(),
		GoalReached: l.GoalReached(),
	}
}

// Label renders the progress label, e.g. "24oz (24%)"
func (s DayStatus) Label() string {
	return s.Unit.Format(s.Total) + " (" + unit.FormatPercent(s.Fraction) + ")"
}

// Summary renders a one-line status, e.g. "48oz / 100oz (48%)"
func (s DayStatus) Summary() string {
	return s.Unit.Format(s.Total) + " / " + s.Unit.Format(ledger.GoalValue) + " (" + unit.FormatPercent(s.Fraction) + ")"
}

// AddResult describes a committed entry
type AddResult struct {
	Entry       entry.Entry
	Status      DayStatus
	GoalCrossed bool // this add moved the total to or past the goal
}
