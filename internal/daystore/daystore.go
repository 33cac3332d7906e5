// Package daystore persists one ledger snapshot per calendar day in a
// key-value medium. Missing or unreadable state is reported as absent, never
// as an error.
package daystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/xolan/waterlog/internal/entry"
	"github.com/xolan/waterlog/internal/ledger"
	"github.com/xolan/waterlog/internal/unit"
)

// KeyLayout is the time layout used for day keys (YYYYMMDD)
const KeyLayout = "20060102"

// Medium is a string key-value blob store
type Medium interface {
	// Get returns the stored value and whether the key exists
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value
	Set(key, value string) error
}

// DayKey returns the storage key for the calendar day of date, in date's own
// location. Any two times on the same day map to the same key.
func DayKey(date time.Time) string {
	return date.Format(KeyLayout)
}

// Option configures a DayStore
type Option func(*DayStore)

// WithLogger sets the logger used to report swallowed load failures
func WithLogger(log zerolog.Logger) Option {
	return func(s *DayStore) {
		s.log = log
	}
}

// WithDefaultUnit sets the unit assumed for snapshots that omit activeUnitIndex
func WithDefaultUnit(idx int) Option {
	return func(s *DayStore) {
		if unit.Valid(idx) {
			s.defaultUnit = idx
		}
	}
}

// DayStore maps calendar days to ledger snapshots. It satisfies ledger.Store.
type DayStore struct {
	medium      Medium
	log         zerolog.Logger
	defaultUnit int
}

var _ ledger.Store = (*DayStore)(nil)

// New creates a DayStore on top of medium
func New(medium Medium, opts ...Option) *DayStore {
	s := &DayStore{
		medium: medium,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the snapshot saved for date. It reports false when nothing is
// stored or the stored blob cannot be used.
func (s *DayStore) Load(date time.Time) (ledger.Snapshot, bool) {
	key := DayKey(date)

	blob, ok, err := s.medium.Get(key)
	if err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("reading day state failed, using defaults")
		return ledger.Snapshot{}, false
	}
	if !ok {
		return ledger.Snapshot{}, false
	}

	snap, err := s.decode(blob)
	if err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("ignoring unreadable day state")
		return ledger.Snapshot{}, false
	}
	return snap, true
}

// Save overwrites the snapshot stored for date
func (s *DayStore) Save(date time.Time, snap ledger.Snapshot) error {
	key := DayKey(date)

	if snap.Entries == nil {
		snap.Entries = []entry.Entry{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding day %s: %w", key, err)
	}

	if err := s.medium.Set(key, string(data)); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("writing day state failed")
		return fmt.Errorf("writing day %s: %w", key, err)
	}
	return nil
}

// storedSnapshot mirrors ledger.Snapshot with optional fields, so a blob that
// lacks a field falls back to that field's default only.
type storedSnapshot struct {
	Entries         *[]entry.Entry `json:"entries"`
	PendingValue    *float64       `json:"pendingValue"`
	ActiveUnitIndex *int           `json:"activeUnitIndex"`
}

var errNullSnapshot = errors.New("snapshot is null")

func (s *DayStore) decode(blob string) (ledger.Snapshot, error) {
	var raw *storedSnapshot
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return ledger.Snapshot{}, err
	}
	if raw == nil {
		return ledger.Snapshot{}, errNullSnapshot
	}

	snap := ledger.Snapshot{
		Entries:         []entry.Entry{},
		ActiveUnitIndex: s.defaultUnit,
	}
	if raw.ActiveUnitIndex != nil {
		snap.ActiveUnitIndex = *raw.ActiveUnitIndex
	}
	if !unit.Valid(snap.ActiveUnitIndex) {
		return ledger.Snapshot{}, fmt.Errorf("unit index %d out of range", snap.ActiveUnitIndex)
	}

	snap.PendingValue = unit.Units[snap.ActiveUnitIndex].InitialCanonical()
	if raw.PendingValue != nil {
		snap.PendingValue = *raw.PendingValue
	}
	if !validValue(snap.PendingValue) {
		return ledger.Snapshot{}, fmt.Errorf("invalid pending value %v", snap.PendingValue)
	}

	if raw.Entries != nil {
		for i, e := range *raw.Entries {
			if !validValue(e.Value) {
				return ledger.Snapshot{}, fmt.Errorf("entry %d: invalid value %v", i, e.Value)
			}
		}
		snap.Entries = append(snap.Entries, *raw.Entries...)
	}

	return snap, nil
}

func validValue(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
