package gantt

import (
	"fmt"
	"time"
)

// DayFormat is the civil-day string format used everywhere dates are stored.
const DayFormat = "2006-01-02"

// CalendarPolicy decides whether a given date is a holiday. It is a pure value:
// evaluation has no side effects and no history.
type CalendarPolicy struct {
	// WeekdayHolidays flags recurring weekly holidays, indexed Sunday..Saturday.
	WeekdayHolidays [7]bool
	// FixedHolidays is a set of civil-day strings (YYYY-MM-DD).
	FixedHolidays map[string]bool
	// ObserveFixed toggles whether FixedHolidays is consulted at all.
	ObserveFixed bool
}

// NewCalendarPolicy returns a policy with the given weekdays flagged and an
// empty fixed-holiday set.
func NewCalendarPolicy(weekdays ...time.Weekday) *CalendarPolicy {
	p := &CalendarPolicy{
		FixedHolidays: make(map[string]bool),
		ObserveFixed:  true,
	}
	for _, wd := range weekdays {
		p.WeekdayHolidays[wd] = true
	}
	return p
}

// AddFixedHoliday adds a civil-day string to the fixed-holiday set.
func (p *CalendarPolicy) AddFixedHoliday(day string) {
	if p.FixedHolidays == nil {
		p.FixedHolidays = make(map[string]bool)
	}
	p.FixedHolidays[day] = true
}

// HasWorkday reports whether at least one weekday is not flagged as a
// holiday. A policy flagging all seven has no consumable workday anywhere on
// the calendar (fixed holidays only ever remove days), so end-date walks
// cannot terminate under it.
func (p *CalendarPolicy) HasWorkday() bool {
	for _, holiday := range p.WeekdayHolidays {
		if !holiday {
			return true
		}
	}
	return false
}

// IsHoliday reports whether d falls on a holiday. The date's local calendar
// day is used, not a UTC-shifted representation.
func (p *CalendarPolicy) IsHoliday(d time.Time) bool {
	if p.WeekdayHolidays[d.Weekday()] {
		return true
	}
	if p.ObserveFixed && p.FixedHolidays[FormatDay(d)] {
		return true
	}
	return false
}

// ParseDay parses a civil-day string into a local-zone time at midnight.
func ParseDay(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DayFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return d, nil
}

// FormatDay formats a time as its local civil-day string.
func FormatDay(d time.Time) string {
	return d.Format(DayFormat)
}

// nextDay advances one calendar day, staying on local midnight.
func nextDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, d.Location())
}

// dayOffset returns the whole-day calendar distance from one date to another.
// Both dates are re-anchored in UTC so DST transitions cannot skew the count.
func dayOffset(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// ComputeEndDate walks forward day by day from start, consuming one workday
// for every non-holiday date (start itself included), and returns the date at
// which the workDays-th workday is consumed.
//
// workDays must be >= 1; behavior for smaller values is undefined by contract
// and callers clamp before calling. If start falls on a holiday the walk still
// begins there, it just does not consume a workday on that date.
//
// A policy with every weekday flagged has no workday to consume; rather than
// walk forever the function returns start unchanged. Hosts should refuse to
// build such a policy in the first place.
func ComputeEndDate(start time.Time, workDays int, policy *CalendarPolicy) time.Time {
	if !policy.HasWorkday() {
		return start
	}
	remaining := workDays
	d := start
	for {
		if !policy.IsHoliday(d) {
			remaining--
			if remaining == 0 {
				return d
			}
		}
		d = nextDay(d)
	}
}

// ComputeWorkDays counts the non-holiday days in [start, end] inclusive.
// Inverse of ComputeEndDate: for any policy, start s and w >= 1,
// ComputeWorkDays(s, ComputeEndDate(s, w, p), p) == w.
func ComputeWorkDays(start, end time.Time, policy *CalendarPolicy) int {
	count := 0
	for d := start; !d.After(end); d = nextDay(d) {
		if !policy.IsHoliday(d) {
			count++
		}
	}
	return count
}
