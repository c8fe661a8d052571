package gantt

// Snapshot is the full serializable board state handed to the persistence
// sink after each committed mutation. It JSON-round-trips with no loss: dates
// are civil-day strings and history entries are included in full.
type Snapshot struct {
	Tasks      []GanttTask `json:"tasks"`
	Groups     []TaskGroup `json:"groups"`
	Milestones []Milestone `json:"milestones"`
}

// SnapshotSink receives board snapshots. Persistence is fire-and-forget: the
// board does not retry or roll back on a sink failure, the in-memory model
// stays authoritative.
type SnapshotSink interface {
	Save(Snapshot) error
}

// Snapshot builds a deep copy of the current board state. Tasks follow the
// committed ordering (groups in board order, unassigned bucket last); the
// copy shares no slices with live records.
func (b *Board) Snapshot() Snapshot {
	var snap Snapshot

	groupIDs := append(b.order.GroupOrder(), UnassignedGroup)
	for _, gid := range groupIDs {
		if g := b.groups[gid]; g != nil {
			snap.Groups = append(snap.Groups, *g)
		}
		for _, tid := range b.order.TasksIn(gid) {
			t := *b.tasks[tid]
			t.Assignees = append([]Assignee(nil), t.Assignees...)
			t.History = append([]HistoryEntry(nil), t.History...)
			snap.Tasks = append(snap.Tasks, t)
		}
	}
	for _, m := range b.sortedMilestones() {
		snap.Milestones = append(snap.Milestones, *m)
	}
	return snap
}

// restoreSnapshot rebuilds the board's records and ordering from a snapshot.
// Snapshot task order is the committed order, so re-adding in sequence
// reproduces it.
func (b *Board) restoreSnapshot(snap *Snapshot) {
	for i := range snap.Groups {
		g := snap.Groups[i]
		b.groups[g.ID] = &g
		b.order.AddGroup(g.ID)
	}
	for i := range snap.Tasks {
		t := snap.Tasks[i]
		b.tasks[t.ID] = &t
		b.order.AddTask(t.ID, t.GroupID)
	}
	for i := range snap.Milestones {
		m := snap.Milestones[i]
		b.milestones[m.Date] = &m
	}
}
