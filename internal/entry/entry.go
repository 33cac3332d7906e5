package entry

import "time"

// Entry represents a single logged drink.
// Value is always in canonical units (ounces); Timestamp is epoch milliseconds.
type Entry struct {
	Value     float64 `json:"value"`
	Timestamp int64   `json:"timestamp"`
}

// New creates an entry for value logged at t
func New(value float64, t time.Time) Entry {
	return Entry{Value: value, Timestamp: t.UnixMilli()}
}

// Time returns the entry timestamp as a local time.Time
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}
