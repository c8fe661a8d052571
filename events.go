package gantt

import "time"

// Event is a notification emitted by the Board after a committed mutation,
// for a presentation collaborator to react to. The engine renders nothing
// itself.
type Event interface {
	Type() string
	Timestamp() time.Time
}

// TaskCompletedEvent fires when a task reaches completed status. It carries
// the title so the presentation layer can react without a lookup.
type TaskCompletedEvent struct {
	TaskID string
	Title  string
	Time   time.Time
}

func (e TaskCompletedEvent) Type() string         { return "task_completed" }
func (e TaskCompletedEvent) Timestamp() time.Time { return e.Time }

// TaskRestoredEvent fires when a deleted task is restored to active.
type TaskRestoredEvent struct {
	TaskID string
	Title  string
	Time   time.Time
}

func (e TaskRestoredEvent) Type() string         { return "task_restored" }
func (e TaskRestoredEvent) Timestamp() time.Time { return e.Time }

// HistoryAppendedEvent fires after an entry is appended to a task's ledger.
type HistoryAppendedEvent struct {
	TaskID string
	Entry  HistoryEntry
	Time   time.Time
}

func (e HistoryAppendedEvent) Type() string         { return "history_appended" }
func (e HistoryAppendedEvent) Timestamp() time.Time { return e.Time }

// Listener receives Board events. Listeners run synchronously in subscription
// order on the mutating goroutine.
type Listener func(Event)

// Subscribe registers a listener for all subsequent events.
func (b *Board) Subscribe(l Listener) {
	b.listeners = append(b.listeners, l)
}

func (b *Board) emit(e Event) {
	for _, l := range b.listeners {
		l(e)
	}
}
