package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/xolan/waterlog/internal/config"
	"github.com/xolan/waterlog/internal/entry"
	"github.com/xolan/waterlog/internal/ledger"
	"github.com/xolan/waterlog/internal/timeutil"
	"github.com/xolan/waterlog/internal/unit"
)

// Common errors for the ledger service
var (
	ErrInvalidIndex    = errors.New("invalid entry index")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNoEntries       = errors.New("no entries logged today")
	ErrAmountTooLarge  = errors.New("amount is above the unit maximum")
)

// LedgerService opens today's ledger and runs the CLI-level operations on it.
// Each call opens the ledger afresh, so a mutation from another process is
// always seen.
type LedgerService struct {
	store  ledger.Store
	config config.Config
	now    func() time.Time
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(store ledger.Store, cfg config.Config) *LedgerService {
	return &LedgerService{
		store:  store,
		config: cfg,
		now:    time.Now,
	}
}

// SetClock overrides the time source used for "today" and entry timestamps
func (s *LedgerService) SetClock(now func() time.Time) {
	s.now = now
}

// Today returns midnight of the current day in the configured timezone
func (s *LedgerService) Today() time.Time {
	return timeutil.Today(s.now(), s.config.Location())
}

// Location returns the configured timezone
func (s *LedgerService) Location() *time.Location {
	return s.config.Location()
}

// Open loads today's ledger. Extra options are applied after the defaults.
func (s *LedgerService) Open(opts ...ledger.Option) *ledger.Ledger {
	base := []ledger.Option{
		ledger.WithDefaultUnit(s.config.DefaultUnitIndex()),
		ledger.WithClock(s.now),
	}
	return ledger.Open(s.store, s.Today(), append(base, opts...)...)
}

// Status returns today's ledger state
func (s *LedgerService) Status() DayStatus {
	return NewDayStatus(s.Open())
}

// Add commits an entry. An empty amount commits the staged value; otherwise
// the amount is staged first (switching unit when it names one).
func (s *LedgerService) Add(amount string) (AddResult, error) {
	var crossed bool
	l := s.Open(ledger.WithGoalListener(func(float64) { crossed = true }))

	if amount != "" {
		if err := StageAmount(l, amount); err != nil {
			return AddResult{}, err
		}
	}

	e, err := l.AddEntry()
	if err != nil {
		return AddResult{}, err
	}

	return AddResult{
		Entry:       e,
		Status:      NewDayStatus(l),
		GoalCrossed: crossed,
	}, nil
}

// Stage sets the pending value and persists it so a later Add picks it up
func (s *LedgerService) Stage(amount string) (DayStatus, error) {
	l := s.Open()
	if err := StageAmount(l, amount); err != nil {
		return DayStatus{}, err
	}
	if err := l.Save(); err != nil {
		return DayStatus{}, err
	}
	return NewDayStatus(l), nil
}

// Delete removes the entry at the 1-based index and returns it
func (s *LedgerService) Delete(index int) (entry.Entry, error) {
	l := s.Open()
	if l.Len() == 0 {
		return entry.Entry{}, ErrNoEntries
	}
	if index < 1 {
		return entry.Entry{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	if index > l.Len() {
		return entry.Entry{}, fmt.Errorf("%w: %d (valid range: 1-%d)", ErrIndexOutOfRange, index, l.Len())
	}

	target := l.Entries()[index-1]
	if _, err := l.DeleteEntry(index - 1); err != nil {
		return target, err
	}
	return target, nil
}

// SelectUnit switches today's active unit by name. It reports whether the
// unit changed.
func (s *LedgerService) SelectUnit(name string) (bool, DayStatus, error) {
	idx, err := unit.Lookup(name)
	if err != nil {
		return false, DayStatus{}, err
	}

	l := s.Open()
	changed, err := l.SelectUnit(idx)
	if err != nil {
		return changed, DayStatus{}, err
	}
	return changed, NewDayStatus(l), nil
}

// StageAmount parses amount (e.g. "12", "0.5L") and sets it as l's pending
// value. A unit in amount becomes l's active unit.
func StageAmount(l *ledger.Ledger, amount string) error {
	value, idx, err := unit.ParseAmount(amount)
	if err != nil {
		return err
	}
	if idx < 0 {
		idx = l.ActiveUnitIndex()
	}

	u := unit.Units[idx]
	if value > u.Max {
		return fmt.Errorf("%w: %s (max %s)", ErrAmountTooLarge, amount, unit.FormatDisplay(u.MaxCanonical(), u))
	}

	if _, err := l.SelectUnit(idx); err != nil {
		return err
	}
	l.SetPendingDisplay(value)
	return nil
}
