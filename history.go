package gantt

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// appendHistory stamps the entry with an id and a local-time timestamp and
// pushes it to the end of the task's ledger. Entries are immutable once
// appended and never removed; consumers read them newest-first while storage
// keeps append order.
func (b *Board) appendHistory(task *GanttTask, entry HistoryEntry) {
	entry.ID = "H-" + uuid.New().String()[:8]
	entry.Timestamp = b.now().Format(time.RFC3339)
	task.History = append(task.History, entry)
	b.emit(HistoryAppendedEvent{TaskID: task.ID, Entry: entry, Time: b.now()})
}

// RecordWorkDaysChange updates a task's workday count and appends a ledger
// entry recording the old and new values plus an optional free-text comment.
// newDays < 1 is rejected at the boundary.
func (b *Board) RecordWorkDaysChange(taskID string, newDays int, comment, actorName string) error {
	task := b.tasks[taskID]
	if task == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	if newDays < 1 {
		return fmt.Errorf("%w: workDays must be >= 1", ErrValidation)
	}
	old := task.WorkDays
	task.WorkDays = newDays
	b.appendHistory(task, HistoryEntry{
		Kind:      KindWorkDays,
		OldValue:  &old,
		NewValue:  &newDays,
		Comment:   comment,
		ActorName: actorName,
	})
	return b.persist()
}

// RecordComment appends a free-text comment to a task's ledger.
func (b *Board) RecordComment(taskID, text, actorName string) error {
	task := b.tasks[taskID]
	if task == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	b.appendHistory(task, HistoryEntry{
		Kind:      KindComment,
		Comment:   text,
		ActorName: actorName,
	})
	return b.persist()
}

// HistoryNewestFirst returns a copy of a task's ledger in most-recent-first
// order, the order consumers display it in.
func HistoryNewestFirst(task *GanttTask) []HistoryEntry {
	out := make([]HistoryEntry, len(task.History))
	for i, e := range task.History {
		out[len(task.History)-1-i] = e
	}
	return out
}
