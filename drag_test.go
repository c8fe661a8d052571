package gantt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dragBoard builds a board with groups A=[T1,T2,T3] and B=[T4,T5] and
// returns the boards' real ids keyed by the labels above.
func dragBoard(t *testing.T) (*Board, map[string]string) {
	t.Helper()
	b := newTestBoard()
	ids := make(map[string]string)

	ga, err := b.AddGroup("A", "#a00")
	require.NoError(t, err)
	gb, err := b.AddGroup("B", "#0b0")
	require.NoError(t, err)
	ids["A"], ids["B"] = ga.ID, gb.ID

	for _, item := range []struct{ label, group string }{
		{"T1", ga.ID}, {"T2", ga.ID}, {"T3", ga.ID},
		{"T4", gb.ID}, {"T5", gb.ID},
	} {
		task, err := b.AddTask(TaskCreateRequest{Title: item.label, StartDate: "2026-01-05", WorkDays: 2, GroupID: item.group})
		require.NoError(t, err)
		ids[item.label] = task.ID
	}
	return b, ids
}

func TestDragBeginUnknownID(t *testing.T) {
	b, _ := dragBoard(t)
	d := NewDragController(b)

	assert.False(t, d.Begin("missing"))
	assert.False(t, d.Active())
}

// TestDragHoverNeverMutates: hover updates are visual feedback only; the
// committed order is untouched however much the pointer wanders.
func TestDragHoverNeverMutates(t *testing.T) {
	b, ids := dragBoard(t)
	d := NewDragController(b)

	before := b.TasksIn(ids["A"])
	require.True(t, d.Begin(ids["T1"]))

	assert.False(t, d.Hover(ids["T2"], 10, 0, 40)) // above midpoint
	assert.True(t, d.Hover(ids["T3"], 35, 0, 40))  // below midpoint
	assert.True(t, d.Hover(ids["T3"], 20, 0, 40))  // exactly midpoint counts as below

	target, below := d.HoverTarget()
	assert.Equal(t, ids["T3"], target)
	assert.True(t, below)

	assert.Equal(t, before, b.TasksIn(ids["A"]))
	d.Cancel()
	assert.Equal(t, before, b.TasksIn(ids["A"]))
}

func TestDragCommitReorder(t *testing.T) {
	b, ids := dragBoard(t)
	d := NewDragController(b)

	require.True(t, d.Begin(ids["T1"]))
	require.NoError(t, d.Commit(ids["T3"], true))

	assert.Equal(t, []string{ids["T2"], ids["T3"], ids["T1"]}, b.TasksIn(ids["A"]))
	assert.False(t, d.Active())
}

// TestDragCommitMoveAcrossGroups: dropping a task on a task in another group
// moves it there and re-colors it to the destination group's color.
func TestDragCommitMoveAcrossGroups(t *testing.T) {
	b, ids := dragBoard(t)
	d := NewDragController(b)

	require.True(t, d.Begin(ids["T2"]))
	require.NoError(t, d.Commit(ids["T4"], false))

	assert.Equal(t, []string{ids["T1"], ids["T3"]}, b.TasksIn(ids["A"]))
	assert.Equal(t, []string{ids["T2"], ids["T4"], ids["T5"]}, b.TasksIn(ids["B"]))
	assert.Equal(t, "#0b0", b.Task(ids["T2"]).Color)
}

func TestDragCommitOnGroupHeaderAppends(t *testing.T) {
	b, ids := dragBoard(t)
	d := NewDragController(b)

	require.True(t, d.Begin(ids["T1"]))
	require.NoError(t, d.Commit(ids["B"], false))

	assert.Equal(t, []string{ids["T4"], ids["T5"], ids["T1"]}, b.TasksIn(ids["B"]))
}

func TestDragCommitGroupReorder(t *testing.T) {
	b, ids := dragBoard(t)
	d := NewDragController(b)

	require.True(t, d.Begin(ids["A"]))
	require.NoError(t, d.Commit(ids["B"], true))

	assert.Equal(t, []string{ids["B"], ids["A"]}, b.GroupOrder())
}

func TestDragCommitNoOps(t *testing.T) {
	b, ids := dragBoard(t)
	d := NewDragController(b)

	// Self-drop
	require.True(t, d.Begin(ids["T1"]))
	require.NoError(t, d.Commit(ids["T1"], true))
	assert.Equal(t, []string{ids["T1"], ids["T2"], ids["T3"]}, b.TasksIn(ids["A"]))

	// Unknown target
	require.True(t, d.Begin(ids["T1"]))
	require.NoError(t, d.Commit("missing", true))
	assert.Equal(t, []string{ids["T1"], ids["T2"], ids["T3"]}, b.TasksIn(ids["A"]))

	// Commit without Begin
	require.NoError(t, d.Commit(ids["T2"], true))
	assert.Equal(t, []string{ids["T1"], ids["T2"], ids["T3"]}, b.TasksIn(ids["A"]))
}
