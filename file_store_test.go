package gantt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSnapshotPersistence tests that board state survives a save/load cycle
// through the file store.
func TestSnapshotPersistence(t *testing.T) {
	tmpDir := t.TempDir()

	// Step 1: Create a board, build some state
	b1, err := NewBoardWithPersistence(tmpDir, weekendPolicy())
	require.NoError(t, err)

	g, err := b1.AddGroup("Core", "#123456")
	require.NoError(t, err)
	task, err := b1.AddTask(TaskCreateRequest{Title: "Persist me", StartDate: "2026-01-05", WorkDays: 4, GroupID: g.ID})
	require.NoError(t, err)
	require.NoError(t, b1.RecordComment(task.ID, "first note", "rin"))
	_, err = b1.SetMilestone("2026-01-20", "Checkpoint", "#ff0000")
	require.NoError(t, err)

	// Verify the snapshot file exists
	assert.DirExists(t, filepath.Join(tmpDir, ".gantt"))
	assert.FileExists(t, filepath.Join(tmpDir, ".gantt", "board.json"))

	// Step 2: Load a fresh board from the same directory
	b2, err := NewBoardWithPersistence(tmpDir, weekendPolicy())
	require.NoError(t, err)

	loaded := b2.Task(task.ID)
	require.NotNil(t, loaded)
	assert.Equal(t, "Persist me", loaded.Title)
	assert.Equal(t, 4, loaded.WorkDays)
	assert.Equal(t, g.ID, loaded.GroupID)
	require.Len(t, loaded.History, 1)
	assert.Equal(t, "first note", loaded.History[0].Comment)

	assert.Equal(t, []string{g.ID}, b2.GroupOrder())
	assert.Equal(t, []string{task.ID}, b2.TasksIn(g.ID))
	require.NotNil(t, b2.Milestone("2026-01-20"))

	// Step 3: Mutate through b2, verify b3 sees it
	second, err := b2.AddTask(TaskCreateRequest{Title: "Another", StartDate: "2026-01-06", WorkDays: 1})
	require.NoError(t, err)

	b3, err := NewBoardWithPersistence(tmpDir, weekendPolicy())
	require.NoError(t, err)
	assert.NotNil(t, b3.Task(second.ID))
	assert.Equal(t, []string{second.ID}, b3.TasksIn(UnassignedGroup))
}

// TestPersistedOrderSurvives: committed drag order is what comes back after a
// reload, not insertion order.
func TestPersistedOrderSurvives(t *testing.T) {
	tmpDir := t.TempDir()

	b1, err := NewBoardWithPersistence(tmpDir, weekendPolicy())
	require.NoError(t, err)

	g, err := b1.AddGroup("Q", "#000000")
	require.NoError(t, err)
	var ids []string
	for _, title := range []string{"one", "two", "three"} {
		task, err := b1.AddTask(TaskCreateRequest{Title: title, StartDate: "2026-01-05", WorkDays: 1, GroupID: g.ID})
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}
	require.NoError(t, b1.ReorderWithinGroup(ids[0], ids[2], true))

	b2, err := NewBoardWithPersistence(tmpDir, weekendPolicy())
	require.NoError(t, err)
	assert.Equal(t, []string{ids[1], ids[2], ids[0]}, b2.TasksIn(g.ID))
}

func TestFileStoreEmptyLoad(t *testing.T) {
	store, err := NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store, err := NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)

	big := Snapshot{Tasks: []GanttTask{{ID: "T1", Title: "long title that pads the file out", Status: StatusActive}}}
	require.NoError(t, store.Save(big))

	small := Snapshot{Tasks: []GanttTask{{ID: "T2", Title: "short", Status: StatusActive}}}
	require.NoError(t, store.Save(small))

	back, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, back)
	require.Len(t, back.Tasks, 1)
	assert.Equal(t, "T2", back.Tasks[0].ID)
}
