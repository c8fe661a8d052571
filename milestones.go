package gantt

import (
	"fmt"

	"github.com/google/uuid"
)

// SetMilestone creates or overwrites the milestone for a date; a date holds at
// most one milestone.
func (b *Board) SetMilestone(date, label, color string) (*Milestone, error) {
	if _, err := ParseDay(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if label == "" {
		return nil, fmt.Errorf("%w: milestone label is empty", ErrValidation)
	}
	m := b.milestones[date]
	if m == nil {
		m = &Milestone{ID: "M-" + uuid.New().String()[:8], Date: date}
		b.milestones[date] = m
	}
	m.Label = label
	m.Color = color
	return m, b.persist()
}

// Milestone returns the milestone on a date, or nil.
func (b *Board) Milestone(date string) *Milestone {
	return b.milestones[date]
}

// RemoveMilestone deletes the milestone on a date, if any.
func (b *Board) RemoveMilestone(date string) error {
	if _, ok := b.milestones[date]; !ok {
		return nil
	}
	delete(b.milestones, date)
	return b.persist()
}

// Milestones returns all milestones ordered by date.
func (b *Board) Milestones() []*Milestone {
	return b.sortedMilestones()
}
