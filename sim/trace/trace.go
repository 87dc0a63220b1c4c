package trace

import "fmt"

// Log is the append-only ordered sequence of state snapshots, one per
// processed event. It is never truncated or rewritten during a run; callers
// may replay any range as often as they want.
type Log struct {
	records []Record
}

// NewLog creates an empty trace log.
func NewLog() *Log {
	return &Log{
		records: make([]Record, 0),
	}
}

// Append adds a record to the end of the log.
func (l *Log) Append(r Record) {
	l.records = append(l.records, r)
}

// Len returns the number of recorded snapshots.
func (l *Log) Len() int {
	return len(l.records)
}

// Range returns a copy of up to count records starting at index start.
// A start index outside [0, Len()) is reported as an error to the caller,
// never silently clamped; the count is clamped to the log end. The error is
// local to the query: accumulated run state is unaffected.
func (l *Log) Range(start, count int) ([]Record, error) {
	if start < 0 || start >= len(l.records) {
		return nil, fmt.Errorf("trace start index %d outside [0, %d)", start, len(l.records))
	}
	if count < 0 {
		return nil, fmt.Errorf("trace record count must be non-negative, got %d", count)
	}
	end := start + count
	if end > len(l.records) {
		end = len(l.records)
	}
	out := make([]Record, end-start)
	copy(out, l.records[start:end])
	return out, nil
}

// All returns a copy of the complete log in order.
func (l *Log) All() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}
