package gantt

import "time"

// Segment is one maximal holiday-free run of a task's span. Offsets and
// lengths are whole days measured from the display range start. First and
// Last mark the outermost segments so a renderer can round only the outer
// edges of the bar.
type Segment struct {
	StartOffset int
	Length      int
	First       bool
	Last        bool
}

// Segments splits a task's span into maximal holiday-free runs. The runs are
// ordered by start, never overlap, and together cover exactly the non-holiday
// days of [task.StartDate, end]; no segment ever contains a holiday. A span
// made entirely of holidays yields nil.
func Segments(task *GanttTask, policy *CalendarPolicy, rangeStart time.Time) ([]Segment, error) {
	start, err := ParseDay(task.StartDate)
	if err != nil {
		return nil, err
	}
	end := ComputeEndDate(start, task.WorkDays, policy)
	return splitSpan(start, end, policy, rangeStart), nil
}

// splitSpan scans every date of [start, end], accumulating a run while dates
// are non-holiday and closing it the moment a holiday is hit; the final open
// run closes at span end. An all-holiday span yields no segments.
func splitSpan(start, end time.Time, policy *CalendarPolicy, rangeStart time.Time) []Segment {
	var segs []Segment
	runStart := -1 // offset of the open run, -1 when no run is open
	offset := dayOffset(rangeStart, start)

	for d := start; !d.After(end); d = nextDay(d) {
		if policy.IsHoliday(d) {
			if runStart >= 0 {
				segs = append(segs, Segment{StartOffset: runStart, Length: offset - runStart})
				runStart = -1
			}
		} else if runStart < 0 {
			runStart = offset
		}
		offset++
	}
	if runStart >= 0 {
		segs = append(segs, Segment{StartOffset: runStart, Length: offset - runStart})
	}

	if len(segs) > 0 {
		segs[0].First = true
		segs[len(segs)-1].Last = true
	}
	return segs
}
