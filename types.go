package gantt

// TaskStatus is the lifecycle status of a task.
type TaskStatus string

const (
	// StatusActive is the initial status of every task.
	StatusActive TaskStatus = "active"
	// StatusCompleted means the task reached 100% progress and was completed.
	StatusCompleted TaskStatus = "completed"
	// StatusDeleted means the task was soft-deleted; it can be restored.
	StatusDeleted TaskStatus = "deleted"
)

// IsValid returns true if the status is a known value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusDeleted:
		return true
	default:
		return false
	}
}

// HistoryKind identifies what a history entry records.
type HistoryKind string

const (
	KindWorkDays HistoryKind = "workDays"
	KindComment  HistoryKind = "comment"
	// Reserved kinds: declared for persisted-data compatibility, no mutation
	// path produces them yet.
	KindAssignee HistoryKind = "assignee"
	KindProgress HistoryKind = "progress"
)

// IsValid returns true if the kind is a known value, reserved kinds included.
func (k HistoryKind) IsValid() bool {
	switch k {
	case KindWorkDays, KindComment, KindAssignee, KindProgress:
		return true
	default:
		return false
	}
}

// Assignee is a person attached to a task. Unresolved AI-proposed names are
// kept as display-only assignees with an empty ID.
type Assignee struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// HistoryEntry is one record in a task's append-only ledger. Entries are
// immutable once appended.
type HistoryEntry struct {
	ID        string      `json:"id"`
	Timestamp string      `json:"timestamp"`
	Kind      HistoryKind `json:"kind"`
	OldValue  *int        `json:"oldValue,omitempty"`
	NewValue  *int        `json:"newValue,omitempty"`
	Comment   string      `json:"comment,omitempty"`
	ActorName string      `json:"actorName"`
}

// GanttTask is a single schedulable task on the board.
// StartDate is a civil-day string (YYYY-MM-DD). WorkDays is always >= 1.
// GroupID "" means the task sits in the unassigned bucket.
type GanttTask struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Assignees []Assignee     `json:"assignees"`
	StartDate string         `json:"startDate"`
	WorkDays  int            `json:"workDays"`
	Progress  int            `json:"progress"`
	Color     string         `json:"color"`
	GroupID   string         `json:"groupId"`
	History   []HistoryEntry `json:"history"`
	Status    TaskStatus     `json:"status"`
	Collapsed bool           `json:"collapsed"`
}

// TaskGroup is a named, colored bucket of tasks. Group ordering is a
// first-class sequence owned by the OrderingStore.
type TaskGroup struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Expanded bool   `json:"expanded"`
}

// Milestone is a dated annotation layered over the calendar, one per date.
type Milestone struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Label string `json:"label"`
	Color string `json:"color"`
}
