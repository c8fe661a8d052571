package gantt

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrValidation marks input rejected at the engine boundary.
	ErrValidation = errors.New("invalid input")
	// ErrUnknownTask marks an operation against a task id the board has never seen.
	ErrUnknownTask = errors.New("unknown task")
	// ErrUnknownGroup marks an operation against a group id the board has never seen.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrSnapshotSave wraps a persistence-sink failure. The in-memory state has
	// already mutated and remains authoritative; the host should log and move on.
	ErrSnapshotSave = errors.New("snapshot save failed")
)

// TaskCreateRequest is the manual task-creation input.
type TaskCreateRequest struct {
	Title     string
	Assignees []Assignee
	StartDate string
	WorkDays  int
	GroupID   string
	Color     string
}

// Board is the scheduling engine: it owns the task/group/milestone records,
// the ordering store, the lifecycle rules, the history ledger and the AI
// ingest gate, and hands a snapshot to the persistence sink after every
// committed mutation.
//
// The board is single-writer by contract: every mutation is triggered
// synchronously by one discrete external event, so no locking is done.
type Board struct {
	tasks      map[string]*GanttTask
	groups     map[string]*TaskGroup
	milestones map[string]*Milestone // keyed by date
	order      *OrderingStore
	policy     *CalendarPolicy
	sink       SnapshotSink
	gate       *IngestGate
	listeners  []Listener
	now        func() time.Time
}

// NewBoard creates an empty board under the given calendar policy. A nil
// policy gets an all-workdays calendar.
func NewBoard(policy *CalendarPolicy) *Board {
	if policy == nil {
		policy = NewCalendarPolicy()
	}
	return &Board{
		tasks:      make(map[string]*GanttTask),
		groups:     make(map[string]*TaskGroup),
		milestones: make(map[string]*Milestone),
		order:      NewOrderingStore(),
		policy:     policy,
		gate:       NewIngestGate(nil),
		now:        time.Now,
	}
}

// NewBoardWithPersistence creates a board backed by a file snapshot store in
// workspaceDir, loading any previously saved snapshot.
func NewBoardWithPersistence(workspaceDir string, policy *CalendarPolicy) (*Board, error) {
	store, err := NewFileSnapshotStore(workspaceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot store: %w", err)
	}
	b := NewBoard(policy)
	b.sink = store

	snap, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snap != nil {
		b.restoreSnapshot(snap)
	}
	return b, nil
}

// SetSink replaces the persistence sink. A nil sink disables persistence.
func (b *Board) SetSink(sink SnapshotSink) {
	b.sink = sink
}

// Policy returns the board's calendar policy.
func (b *Board) Policy() *CalendarPolicy {
	return b.policy
}

// Task returns the task with the given id, or nil.
func (b *Board) Task(id string) *GanttTask {
	return b.tasks[id]
}

// Group returns the group with the given id, or nil.
func (b *Board) Group(id string) *TaskGroup {
	return b.groups[id]
}

// GroupOrder returns the ordered group-id list.
func (b *Board) GroupOrder() []string {
	return b.order.GroupOrder()
}

// TasksIn returns the ordered task-id list for a group ("" = unassigned).
func (b *Board) TasksIn(groupID string) []string {
	return b.order.TasksIn(groupID)
}

// AddGroup creates a group at the end of the group order.
func (b *Board) AddGroup(name, color string) (*TaskGroup, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: group name is empty", ErrValidation)
	}
	g := &TaskGroup{
		ID:       "G-" + uuid.New().String()[:8],
		Name:     name,
		Color:    color,
		Expanded: true,
	}
	b.groups[g.ID] = g
	b.order.AddGroup(g.ID)
	return g, b.persist()
}

// AddTask creates a task from a manual request. Empty title, empty or
// malformed start date, an unknown group or workDays < 1 are rejected before
// any state changes; the board never holds a partially constructed task.
func (b *Board) AddTask(req TaskCreateRequest) (*GanttTask, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is empty", ErrValidation)
	}
	if req.StartDate == "" {
		return nil, fmt.Errorf("%w: start date is empty", ErrValidation)
	}
	if _, err := ParseDay(req.StartDate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if req.WorkDays < 1 {
		return nil, fmt.Errorf("%w: workDays must be >= 1", ErrValidation)
	}
	color := req.Color
	if req.GroupID != UnassignedGroup {
		g := b.groups[req.GroupID]
		if g == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, req.GroupID)
		}
		color = g.Color
	}
	task := &GanttTask{
		ID:        "T-" + uuid.New().String()[:8],
		Title:     req.Title,
		Assignees: append([]Assignee(nil), req.Assignees...),
		StartDate: req.StartDate,
		WorkDays:  req.WorkDays,
		Color:     color,
		GroupID:   req.GroupID,
		Status:    StatusActive,
	}
	b.tasks[task.ID] = task
	b.order.AddTask(task.ID, task.GroupID)
	return task, b.persist()
}

// ReorderWithinGroup moves a task relative to another task in the same group.
// Self-drops and unknown ids are silent no-ops.
func (b *Board) ReorderWithinGroup(taskID, targetID string, insertBelow bool) error {
	if !b.order.ReorderWithinGroup(taskID, targetID, insertBelow) {
		return nil
	}
	return b.persist()
}

// MoveToGroup moves a task into another group, inserting relative to targetID
// when given, else appending. The task takes the destination group's color;
// a move to the unassigned bucket keeps the current color.
func (b *Board) MoveToGroup(taskID, destGroupID, targetID string, insertBelow bool) error {
	task := b.tasks[taskID]
	if task == nil {
		return nil
	}
	if destGroupID != UnassignedGroup && b.groups[destGroupID] == nil {
		return nil
	}
	if !b.order.MoveToGroup(taskID, destGroupID, targetID, insertBelow) {
		return nil
	}
	task.GroupID = destGroupID
	if g := b.groups[destGroupID]; g != nil {
		task.Color = g.Color
	}
	return b.persist()
}

// AppendToGroupEnd is MoveToGroup with no target.
func (b *Board) AppendToGroupEnd(taskID, groupID string) error {
	return b.MoveToGroup(taskID, groupID, "", false)
}

// ReorderGroups moves a group relative to another group in the board order.
func (b *Board) ReorderGroups(groupID, targetGroupID string, insertBelow bool) error {
	if !b.order.ReorderGroups(groupID, targetGroupID, insertBelow) {
		return nil
	}
	return b.persist()
}

// Segments renders the holiday-split bar segments of a task against the
// board's calendar policy.
func (b *Board) Segments(taskID string, rangeStart time.Time) ([]Segment, error) {
	task := b.tasks[taskID]
	if task == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	return Segments(task, b.policy, rangeStart)
}

// EndDate computes a task's end date under the board's calendar policy.
func (b *Board) EndDate(taskID string) (string, error) {
	task := b.tasks[taskID]
	if task == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	start, err := ParseDay(task.StartDate)
	if err != nil {
		return "", err
	}
	return FormatDay(ComputeEndDate(start, task.WorkDays, b.policy)), nil
}

// sortedMilestones returns milestones ordered by date.
func (b *Board) sortedMilestones() []*Milestone {
	ms := make([]*Milestone, 0, len(b.milestones))
	for _, m := range b.milestones {
		ms = append(ms, m)
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].Date < ms[j].Date })
	return ms
}

// persist hands an immutable snapshot to the sink. The in-memory model stays
// authoritative whatever the sink does; a failure is wrapped in
// ErrSnapshotSave for the host to log.
func (b *Board) persist() error {
	if b.sink == nil {
		return nil
	}
	if err := b.sink.Save(b.Snapshot()); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotSave, err)
	}
	return nil
}
