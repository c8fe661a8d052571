package gantt

import (
	"fmt"

	"github.com/google/uuid"
)

// AITaskProposal is an externally proposed task, delivered asynchronously and
// possibly redelivered. All fields except Title are optional.
type AITaskProposal struct {
	Title        string
	AssigneeName string
	StartDate    string
	Hours        int
	GroupID      string
	GroupName    string
}

// dedupKey normalizes the identifying tuple of a proposal; missing fields
// collapse to the empty string so redeliveries always hash the same.
func (p AITaskProposal) dedupKey() string {
	return p.Title + "|" + p.StartDate + "|" + p.AssigneeName
}

// CollaboratorDirectory resolves a display name to a known collaborator.
// It is an interface so hosts can back it by their user store and tests can
// use a fixed map.
type CollaboratorDirectory interface {
	Lookup(name string) (Assignee, bool)
}

// CollaboratorMap is a CollaboratorDirectory over a fixed name->assignee map.
type CollaboratorMap map[string]Assignee

func (m CollaboratorMap) Lookup(name string) (Assignee, bool) {
	a, ok := m[name]
	return a, ok
}

// IngestGate is the idempotent intake for AI-proposed tasks. Each logical
// proposal, identified by its dedup key, creates at most one task; redelivered
// duplicates are dropped silently. The seen-set lives for the lifetime of the
// hosting session and is not persisted.
type IngestGate struct {
	seen      map[string]bool
	directory CollaboratorDirectory
}

// NewIngestGate creates a gate with an empty dedup memory. A nil directory
// means no assignee names resolve.
func NewIngestGate(directory CollaboratorDirectory) *IngestGate {
	return &IngestGate{
		seen:      make(map[string]bool),
		directory: directory,
	}
}

// SetCollaborators replaces the gate's name-resolution directory.
func (b *Board) SetCollaborators(d CollaboratorDirectory) {
	b.gate.directory = d
}

// Ingest runs a proposal through the gate. The first delivery of a key builds
// the task, appends one comment-kind ledger entry documenting the automated
// creation, and appends the task to the target (or unassigned) group's order.
// A subsequent delivery of an already-seen key returns (nil, false) with no
// task, no history entry, no event and no error.
func (b *Board) Ingest(p AITaskProposal) (*GanttTask, bool) {
	if p.Title == "" {
		return nil, false
	}
	key := p.dedupKey()
	if b.gate.seen[key] {
		return nil, false
	}
	b.gate.seen[key] = true

	workDays := p.Hours
	if workDays < 1 {
		workDays = 1
	}
	// Proposed dates come from free-form AI output; anything that does not
	// parse falls back to today, same as a missing date.
	startDate := p.StartDate
	if _, err := ParseDay(startDate); err != nil {
		startDate = FormatDay(b.now())
	}
	groupID := UnassignedGroup
	color := ""
	if g := b.groups[p.GroupID]; g != nil {
		groupID = g.ID
		color = g.Color
	}

	task := &GanttTask{
		ID:        "T-" + uuid.New().String()[:8],
		Title:     p.Title,
		StartDate: startDate,
		WorkDays:  workDays,
		Color:     color,
		GroupID:   groupID,
		Status:    StatusActive,
	}
	if p.AssigneeName != "" {
		if b.gate.directory != nil {
			if a, ok := b.gate.directory.Lookup(p.AssigneeName); ok {
				task.Assignees = []Assignee{a}
			}
		}
		if len(task.Assignees) == 0 {
			// Unresolved name, kept display-only.
			task.Assignees = []Assignee{{Name: p.AssigneeName}}
		}
	}

	b.tasks[task.ID] = task
	b.order.AddTask(task.ID, groupID)
	b.appendHistory(task, HistoryEntry{
		Kind:      KindComment,
		Comment:   fmt.Sprintf("Created automatically from an AI proposal (%d workdays).", workDays),
		ActorName: "AI assistant",
	})
	// Sink failures are non-fatal here like everywhere else; the host sees
	// them on the next explicit mutation it makes.
	_ = b.persist()
	return task, true
}
