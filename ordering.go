package gantt

// UnassignedGroup is the ordering bucket for tasks with no group.
const UnassignedGroup = ""

// OrderingStore is the canonical ordered collection of tasks-within-group and
// groups-within-board. Order is explicit, never derived from timestamps, and
// mutated only by the reorder/move operations below.
type OrderingStore struct {
	groupOrder []string
	taskOrder  map[string][]string // group id ("" = unassigned) -> ordered task ids
	groupOf    map[string]string   // task id -> group id
}

// NewOrderingStore returns an empty store with the unassigned bucket present.
func NewOrderingStore() *OrderingStore {
	return &OrderingStore{
		taskOrder: map[string][]string{UnassignedGroup: nil},
		groupOf:   make(map[string]string),
	}
}

// GroupOrder returns a copy of the ordered group-id list.
func (s *OrderingStore) GroupOrder() []string {
	return append([]string(nil), s.groupOrder...)
}

// TasksIn returns a copy of the ordered task-id list for a group.
func (s *OrderingStore) TasksIn(groupID string) []string {
	return append([]string(nil), s.taskOrder[groupID]...)
}

// GroupOf returns the group a task currently belongs to and whether the task
// is known to the store.
func (s *OrderingStore) GroupOf(taskID string) (string, bool) {
	g, ok := s.groupOf[taskID]
	return g, ok
}

// AddGroup appends a group to the end of the group order.
func (s *OrderingStore) AddGroup(groupID string) {
	if _, exists := s.taskOrder[groupID]; exists {
		return
	}
	s.groupOrder = append(s.groupOrder, groupID)
	s.taskOrder[groupID] = nil
}

// AddTask appends a task to the end of a group's order. An unknown group id
// falls back to the unassigned bucket.
func (s *OrderingStore) AddTask(taskID, groupID string) {
	if _, exists := s.taskOrder[groupID]; !exists {
		groupID = UnassignedGroup
	}
	s.taskOrder[groupID] = append(s.taskOrder[groupID], taskID)
	s.groupOf[taskID] = groupID
}

// remove deletes id from the slice, returning the new slice and whether the
// id was present.
func remove(ids []string, id string) ([]string, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}

// insertRelative places id before or after target in the slice. The target's
// index is looked up after any prior removal, so a drop below the dragged
// item's old position lands where the pointer actually is.
func insertRelative(ids []string, id, target string, below bool) []string {
	for i, v := range ids {
		if v == target {
			at := i
			if below {
				at = i + 1
			}
			ids = append(ids, "")
			copy(ids[at+1:], ids[at:])
			ids[at] = id
			return ids
		}
	}
	return append(ids, id)
}

// ReorderWithinGroup moves a task relative to a target task in the same group.
// No-op when the ids match, when either id is unknown, or when the tasks are
// not in the same group. Returns true if the order changed.
func (s *OrderingStore) ReorderWithinGroup(taskID, targetID string, insertBelow bool) bool {
	if taskID == targetID {
		return false
	}
	group, ok := s.groupOf[taskID]
	if !ok {
		return false
	}
	targetGroup, ok := s.groupOf[targetID]
	if !ok || targetGroup != group {
		return false
	}
	ids, _ := remove(s.taskOrder[group], taskID)
	s.taskOrder[group] = insertRelative(ids, taskID, targetID, insertBelow)
	return true
}

// MoveToGroup moves a task into another group's order. With a target id the
// task is inserted relative to it; with targetID "" the task is appended to
// the destination's end. No-op when the task is unknown, the destination
// bucket does not exist, or the task is dropped onto itself.
//
// The caller is responsible for the grouping-color invariant (the Board
// re-colors the task record to the destination group's color).
func (s *OrderingStore) MoveToGroup(taskID, destGroupID, targetID string, insertBelow bool) bool {
	if taskID == targetID {
		return false
	}
	src, ok := s.groupOf[taskID]
	if !ok {
		return false
	}
	if _, exists := s.taskOrder[destGroupID]; !exists {
		return false
	}
	s.taskOrder[src], _ = remove(s.taskOrder[src], taskID)
	if targetID != "" {
		if _, known := s.groupOf[targetID]; known {
			s.taskOrder[destGroupID] = insertRelative(s.taskOrder[destGroupID], taskID, targetID, insertBelow)
		} else {
			s.taskOrder[destGroupID] = append(s.taskOrder[destGroupID], taskID)
		}
	} else {
		s.taskOrder[destGroupID] = append(s.taskOrder[destGroupID], taskID)
	}
	s.groupOf[taskID] = destGroupID
	return true
}

// AppendToGroupEnd is MoveToGroup with no target.
func (s *OrderingStore) AppendToGroupEnd(taskID, groupID string) bool {
	return s.MoveToGroup(taskID, groupID, "", false)
}

// ReorderGroups moves a group relative to a target group in the board order.
// Same removal/reinsertion rule as task reordering. Returns true if the order
// changed.
func (s *OrderingStore) ReorderGroups(groupID, targetGroupID string, insertBelow bool) bool {
	if groupID == targetGroupID {
		return false
	}
	if _, ok := s.taskOrder[groupID]; !ok || groupID == UnassignedGroup {
		return false
	}
	if _, ok := s.taskOrder[targetGroupID]; !ok || targetGroupID == UnassignedGroup {
		return false
	}
	ids, found := remove(s.groupOrder, groupID)
	if !found {
		return false
	}
	s.groupOrder = insertRelative(ids, groupID, targetGroupID, insertBelow)
	return true
}
