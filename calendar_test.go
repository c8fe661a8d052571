package gantt

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsHolidayWeekdays(t *testing.T) {
	policy := weekendPolicy()

	assert.True(t, policy.IsHoliday(mustDay(t, "2026-01-03")))  // Saturday
	assert.True(t, policy.IsHoliday(mustDay(t, "2026-01-04")))  // Sunday
	assert.False(t, policy.IsHoliday(mustDay(t, "2026-01-05"))) // Monday
}

func TestIsHolidayFixedDates(t *testing.T) {
	policy := weekendPolicy()
	policy.AddFixedHoliday("2026-01-01")

	assert.True(t, policy.IsHoliday(mustDay(t, "2026-01-01"))) // Thursday, but fixed

	// The fixed set is only consulted while observed
	policy.ObserveFixed = false
	assert.False(t, policy.IsHoliday(mustDay(t, "2026-01-01")))
}

func TestParseDayRejectsGarbage(t *testing.T) {
	_, err := ParseDay("not-a-date")
	assert.Error(t, err)

	_, err = ParseDay("2026-13-40")
	assert.Error(t, err)

	d, err := ParseDay("2026-02-28")
	assert.NoError(t, err)
	assert.Equal(t, "2026-02-28", FormatDay(d))
}

// TestComputeEndDateSimpleWeek: Mon + 5 workdays lands on Fri of the same week.
func TestComputeEndDateSimpleWeek(t *testing.T) {
	policy := weekendPolicy()
	start := mustDay(t, "2026-01-05") // Monday

	end := ComputeEndDate(start, 5, policy)
	assert.Equal(t, "2026-01-09", FormatDay(end))
}

// TestComputeEndDateAcrossWeekend: Thu + 4 workdays walks Thu, Fri, skips
// Sat/Sun, then Mon, Tue.
func TestComputeEndDateAcrossWeekend(t *testing.T) {
	policy := weekendPolicy()
	start := mustDay(t, "2026-01-08") // Thursday

	end := ComputeEndDate(start, 4, policy)
	assert.Equal(t, "2026-01-13", FormatDay(end))
}

// TestComputeEndDateStartOnHoliday: the walk begins on the holiday start date
// but does not consume a workday there.
func TestComputeEndDateStartOnHoliday(t *testing.T) {
	policy := weekendPolicy()
	start := mustDay(t, "2026-01-03") // Saturday

	end := ComputeEndDate(start, 1, policy)
	assert.Equal(t, "2026-01-05", FormatDay(end)) // first workday is Monday
}

// TestComputeEndDateAllHolidayWeek: a policy flagging every weekday has no
// workday to consume; the walk must return immediately instead of spinning
// forever.
func TestComputeEndDateAllHolidayWeek(t *testing.T) {
	policy := NewCalendarPolicy(
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	)
	assert.False(t, policy.HasWorkday())

	start := mustDay(t, "2026-01-05")
	done := make(chan time.Time, 1)
	go func() { done <- ComputeEndDate(start, 1, policy) }()

	select {
	case end := <-done:
		assert.Equal(t, start, end)
	case <-time.After(2 * time.Second):
		t.Fatal("ComputeEndDate did not return under an all-holiday policy")
	}
}

func TestHasWorkday(t *testing.T) {
	assert.True(t, weekendPolicy().HasWorkday())
	assert.True(t, NewCalendarPolicy().HasWorkday())
}

func TestComputeEndDateFixedHolidayMidSpan(t *testing.T) {
	policy := weekendPolicy()
	policy.AddFixedHoliday("2026-01-06") // Tuesday

	start := mustDay(t, "2026-01-05") // Monday
	end := ComputeEndDate(start, 3, policy)
	assert.Equal(t, "2026-01-08", FormatDay(end)) // Mon, skip Tue, Wed, Thu
}

func TestComputeWorkDaysInclusive(t *testing.T) {
	policy := weekendPolicy()

	// Mon..Fri inclusive
	assert.Equal(t, 5, ComputeWorkDays(mustDay(t, "2026-01-05"), mustDay(t, "2026-01-09"), policy))
	// A single workday
	assert.Equal(t, 1, ComputeWorkDays(mustDay(t, "2026-01-05"), mustDay(t, "2026-01-05"), policy))
	// A weekend contributes nothing
	assert.Equal(t, 0, ComputeWorkDays(mustDay(t, "2026-01-03"), mustDay(t, "2026-01-04"), policy))
}

// TestWorkdayRoundTrip: ComputeWorkDays(s, ComputeEndDate(s, w, p), p) == w
// for randomized policies, start dates and workday counts.
func TestWorkdayRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := mustDay(t, "2026-01-01")

	for i := 0; i < 300; i++ {
		policy := NewCalendarPolicy()
		// Random weekday flags, always leaving at least one workday so the
		// end-date walk terminates.
		for wd := 0; wd < 7; wd++ {
			policy.WeekdayHolidays[wd] = rng.Intn(3) == 0
		}
		policy.WeekdayHolidays[rng.Intn(7)] = false
		// A few random fixed holidays near the start range
		for j := 0; j < rng.Intn(5); j++ {
			policy.AddFixedHoliday(FormatDay(base.AddDate(0, 0, rng.Intn(60))))
		}

		start := base.AddDate(0, 0, rng.Intn(45))
		w := 1 + rng.Intn(20)

		end := ComputeEndDate(start, w, policy)
		assert.Equal(t, w, ComputeWorkDays(start, end, policy),
			"round-trip failed for start=%s w=%d", FormatDay(start), w)
	}
}
