package gantt

import (
	"testing"
	"time"
)

// Shared helpers for tests

// weekendPolicy flags Saturday and Sunday, no fixed holidays.
func weekendPolicy() *CalendarPolicy {
	return NewCalendarPolicy(time.Saturday, time.Sunday)
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("bad day %q: %v", s, err)
	}
	return d
}

// recordingSink captures every snapshot handed to it and can be told to fail.
type recordingSink struct {
	saves []Snapshot
	err   error
}

func (s *recordingSink) Save(snap Snapshot) error {
	if s.err != nil {
		return s.err
	}
	s.saves = append(s.saves, snap)
	return nil
}

// newTestBoard returns a weekend-holiday board with no sink.
func newTestBoard() *Board {
	return NewBoard(weekendPolicy())
}
