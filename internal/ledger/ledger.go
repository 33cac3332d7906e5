// Package ledger holds one day's water entries, the active display unit and
// the staged (pending) amount, and derives goal progress from them.
//
// Every mutation that changes persisted state is written through the Store
// the ledger was opened with. Staging a value is in-memory only.
package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/xolan/waterlog/internal/entry"
	"github.com/xolan/waterlog/internal/unit"
)

// GoalValue is the daily target in canonical units
const GoalValue = 100.0

// Snapshot is the persisted form of a ledger
type Snapshot struct {
	Entries         []entry.Entry `json:"entries"`
	PendingValue    float64       `json:"pendingValue"`
	ActiveUnitIndex int           `json:"activeUnitIndex"`
}

// DefaultSnapshot returns the state of a day with nothing saved, using the
// given unit (falls back to unit 0 when unitIdx is invalid).
func DefaultSnapshot(unitIdx int) Snapshot {
	if !unit.Valid(unitIdx) {
		unitIdx = 0
	}
	return Snapshot{
		Entries:         []entry.Entry{},
		PendingValue:    unit.Units[unitIdx].InitialCanonical(),
		ActiveUnitIndex: unitIdx,
	}
}

// Store persists one snapshot per calendar day.
// Load reports false when nothing usable is stored for the day.
type Store interface {
	Load(date time.Time) (Snapshot, bool)
	Save(date time.Time, s Snapshot) error
}

// Option configures a Ledger
type Option func(*Ledger)

// WithClock overrides the time source used for entry timestamps
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithGoalListener registers fn to be called when a mutation moves the total
// from below GoalValue to at or above it.
func WithGoalListener(fn func(total float64)) Option {
	return func(l *Ledger) {
		l.onGoal = fn
	}
}

// WithDefaultUnit sets the unit used when the day has no saved state
func WithDefaultUnit(idx int) Option {
	return func(l *Ledger) {
		l.defaultUnit = idx
	}
}

// Ledger is the in-memory state of a single day
type Ledger struct {
	store       Store
	date        time.Time
	now         func() time.Time
	onGoal      func(total float64)
	defaultUnit int

	entries []entry.Entry
	pending float64
	unitIdx int

	// version is bumped on every change to entries; the cached total is
	// valid while totalVersion == version.
	version      uint64
	totalVersion uint64
	total        float64
	recomputes   int

	goalReached bool
}

// Open loads the ledger for date from store, or starts an empty one when the
// store has nothing usable for that day.
func Open(store Store, date time.Time, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		date:  date,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	snap, ok := store.Load(date)
	if !ok {
		snap = DefaultSnapshot(l.defaultUnit)
	}
	l.restore(snap)
	return l
}

func (l *Ledger) restore(s Snapshot) {
	l.entries = append([]entry.Entry(nil), s.Entries...)
	l.unitIdx = s.ActiveUnitIndex
	if !unit.Valid(l.unitIdx) {
		l.unitIdx = 0
	}
	l.pending = l.clampPending(s.PendingValue)
	l.version = 1
	l.goalReached = l.Total() >= GoalValue
}

// Date returns the calendar day this ledger belongs to
func (l *Ledger) Date() time.Time {
	return l.date
}

// Entries returns a copy of the day's entries in insertion order
func (l *Ledger) Entries() []entry.Entry {
	return append([]entry.Entry(nil), l.entries...)
}

// Len returns the number of entries
func (l *Ledger) Len() int {
	return len(l.entries)
}

// PendingValue returns the staged amount in canonical units
func (l *Ledger) PendingValue() float64 {
	return l.pending
}

// ActiveUnitIndex returns the index of the active unit in unit.Units
func (l *Ledger) ActiveUnitIndex() int {
	return l.unitIdx
}

// ActiveUnit returns the active unit
func (l *Ledger) ActiveUnit() unit.Unit {
	return unit.Units[l.unitIdx]
}

// Units returns the selectable units
func (l *Ledger) Units() []unit.Unit {
	return unit.Units
}

// Snapshot returns the full persisted state
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		Entries:         l.Entries(),
		PendingValue:    l.pending,
		ActiveUnitIndex: l.unitIdx,
	}
}

// Save writes the current state to the store
func (l *Ledger) Save() error {
	if err := l.store.Save(l.date, l.Snapshot()); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	return nil
}

// AddEntry appends the pending value as a new entry stamped with the current
// time and persists the ledger. The entry is kept in memory even when the
// write fails; the error only reports the persistence failure.
func (l *Ledger) AddEntry() (entry.Entry, error) {
	e := entry.New(l.pending, l.now())
	l.entries = append(l.entries, e)
	l.entriesChanged()
	return e, l.Save()
}

// DeleteEntry removes the entry at index (0-based). An out-of-range index is
// a no-op and reports false without writing.
func (l *Ledger) DeleteEntry(index int) (bool, error) {
	if index < 0 || index >= len(l.entries) {
		return false, nil
	}
	l.entries = append(l.entries[:index:index], l.entries[index+1:]...)
	l.entriesChanged()
	return true, l.Save()
}

// SetPendingValue stages v (canonical units), clamped to the active unit's
// slider range. Nothing is persisted.
func (l *Ledger) SetPendingValue(v float64) {
	l.pending = l.clampPending(v)
}

// SetPendingDisplay stages v given in the active unit, snapped to its step
func (l *Ledger) SetPendingDisplay(v float64) {
	u := l.ActiveUnit()
	l.pending = u.ToCanonical(u.Snap(v))
}

// NudgePending moves the staged value by steps slider steps (may be negative)
func (l *Ledger) NudgePending(steps int) {
	u := l.ActiveUnit()
	l.SetPendingDisplay(u.ToDisplay(l.pending) + float64(steps)*u.Step)
}

// SelectUnit makes idx the active unit and resets the staged value to that
// unit's initial amount, then persists. Selecting the active unit or an
// unknown index is a no-op and reports false.
func (l *Ledger) SelectUnit(idx int) (bool, error) {
	if idx == l.unitIdx || !unit.Valid(idx) {
		return false, nil
	}
	l.unitIdx = idx
	l.pending = unit.Units[idx].InitialCanonical()
	return true, l.Save()
}

// Total returns the sum of all entry values in canonical units
func (l *Ledger) Total() float64 {
	if l.totalVersion == l.version {
		return l.total
	}
	sum := 0.0
	for _, e := range l.entries {
		sum += e.Value
	}
	l.total = sum
	l.totalVersion = l.version
	l.recomputes++
	return sum
}

// ProgressFraction returns Total()/GoalValue; it may exceed 1
func (l *Ledger) ProgressFraction() float64 {
	return l.Total() / GoalValue
}

// DisplayFraction returns ProgressFraction clamped to [0, 1]
func (l *Ledger) DisplayFraction() float64 {
	return math.Max(0, math.Min(1, l.ProgressFraction()))
}

// GoalReached reports whether the day's total has met the goal
func (l *Ledger) GoalReached() bool {
	return l.Total() >= GoalValue
}

// Format renders a canonical value in the active unit
func (l *Ledger) Format(value float64) string {
	return unit.FormatDisplay(value, l.ActiveUnit())
}

func (l *Ledger) entriesChanged() {
	l.version++
	reached := l.GoalReached()
	if reached && !l.goalReached && l.onGoal != nil {
		l.onGoal(l.Total())
	}
	l.goalReached = reached
}

func (l *Ledger) clampPending(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, l.ActiveUnit().MaxCanonical())
}
