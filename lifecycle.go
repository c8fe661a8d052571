package gantt

import "fmt"

// Complete moves an active task with 100% progress to completed and collapses
// it, emitting a TaskCompletedEvent for the presentation layer. A call with
// progress below 100 is a silent no-op: state unchanged, no event, no error.
// Completed is terminal; there is no further status transition out of it.
func (b *Board) Complete(taskID string) error {
	task := b.tasks[taskID]
	if task == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	if task.Status != StatusActive || task.Progress != 100 {
		return nil
	}
	task.Status = StatusCompleted
	task.Collapsed = true
	b.emit(TaskCompletedEvent{TaskID: task.ID, Title: task.Title, Time: b.now()})
	return b.persist()
}

// Delete soft-deletes a task and collapses it. Deletion is a two-step
// confirmation gesture at the UI; the caller invokes this only after the
// confirmation is obtained. Tasks are never hard-deleted.
func (b *Board) Delete(taskID string) error {
	task := b.tasks[taskID]
	if task == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	if task.Status != StatusActive {
		return nil
	}
	task.Status = StatusDeleted
	task.Collapsed = true
	return b.persist()
}

// Restore returns a deleted task to active and expands it, emitting a
// TaskRestoredEvent.
func (b *Board) Restore(taskID string) error {
	task := b.tasks[taskID]
	if task == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	if task.Status != StatusDeleted {
		return nil
	}
	task.Status = StatusActive
	task.Collapsed = false
	b.emit(TaskRestoredEvent{TaskID: task.ID, Title: task.Title, Time: b.now()})
	return b.persist()
}

// ToggleCollapse flips a task's collapsed flag. Active tasks may not collapse:
// the call is rejected and the flag untouched (collapsed implies the task is
// not active). Returns whether the flag changed.
func (b *Board) ToggleCollapse(taskID string) (bool, error) {
	task := b.tasks[taskID]
	if task == nil {
		return false, fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	if task.Status == StatusActive {
		return false, nil
	}
	task.Collapsed = !task.Collapsed
	return true, b.persist()
}

// SetProgress updates a task's progress, clamped to [0, 100]. Only active
// tasks accept progress edits.
func (b *Board) SetProgress(taskID string, progress int) error {
	task := b.tasks[taskID]
	if task == nil {
		return fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	if task.Status != StatusActive {
		return nil
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	task.Progress = progress
	return b.persist()
}
