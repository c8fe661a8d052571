package gantt

// DragKind says what a drag controller is dragging.
type DragKind string

const (
	DragTask  DragKind = "task"
	DragGroup DragKind = "group"
)

// DragController is the UI-agnostic three-phase drag protocol over a board:
// Begin marks the dragged item, Hover computes transient visual feedback
// without touching committed order, Commit performs the actual reorder/move,
// Cancel discards the drag with no mutation.
type DragController struct {
	board  *Board
	kind   DragKind
	dragID string

	hoverTarget string
	hoverBelow  bool
}

// NewDragController returns an idle controller for the board.
func NewDragController(b *Board) *DragController {
	return &DragController{board: b}
}

// Active reports whether a drag is in progress.
func (d *DragController) Active() bool {
	return d.dragID != ""
}

// Dragging returns the kind and id of the item being dragged.
func (d *DragController) Dragging() (DragKind, string) {
	return d.kind, d.dragID
}

// Begin starts a drag on a task or group id. Unknown ids leave the controller
// idle and return false.
func (d *DragController) Begin(id string) bool {
	switch {
	case d.board.Task(id) != nil:
		d.kind = DragTask
	case d.board.Group(id) != nil:
		d.kind = DragGroup
	default:
		return false
	}
	d.dragID = id
	d.hoverTarget = ""
	return true
}

// Hover records the pointer position over a target row and returns the
// insert-below decision: below when the pointer is at or past the row's
// vertical midpoint. Hover is visual feedback only and never mutates the
// committed order.
func (d *DragController) Hover(targetID string, pointerY, rowTop, rowHeight float64) bool {
	if !d.Active() {
		return false
	}
	below := pointerY >= rowTop+rowHeight/2
	d.hoverTarget = targetID
	d.hoverBelow = below
	return below
}

// HoverTarget returns the current hover target and insert-below flag for
// drawing the drop indicator.
func (d *DragController) HoverTarget() (string, bool) {
	return d.hoverTarget, d.hoverBelow
}

// Commit performs the reorder/move against the target. Dropping an item on
// itself, or on an id the board does not know, is a no-op. A task dropped on
// a task in its own group reorders within the group; dropped on a task in
// another group it moves there (taking that group's color); dropped on a
// group header it appends to that group's end. A dragged group reorders the
// group sequence. The drag ends either way.
func (d *DragController) Commit(targetID string, insertBelow bool) error {
	if !d.Active() {
		return nil
	}
	dragID, kind := d.dragID, d.kind
	d.Cancel()

	if dragID == targetID {
		return nil
	}
	switch kind {
	case DragTask:
		if target := d.board.Task(targetID); target != nil {
			dragged := d.board.Task(dragID)
			if dragged != nil && dragged.GroupID == target.GroupID {
				return d.board.ReorderWithinGroup(dragID, targetID, insertBelow)
			}
			return d.board.MoveToGroup(dragID, target.GroupID, targetID, insertBelow)
		}
		if d.board.Group(targetID) != nil {
			return d.board.AppendToGroupEnd(dragID, targetID)
		}
	case DragGroup:
		if d.board.Group(targetID) != nil {
			return d.board.ReorderGroups(dragID, targetID, insertBelow)
		}
	}
	return nil
}

// Cancel discards the drag state without mutating anything.
func (d *DragController) Cancel() {
	d.kind = ""
	d.dragID = ""
	d.hoverTarget = ""
	d.hoverBelow = false
}
