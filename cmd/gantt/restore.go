package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftboard/gantt"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <task-id>",
	Short: "Restore a deleted task",
	Args:  cobra.ExactArgs(1),
	Run:   restoreTask,
}

func restoreTask(cmd *cobra.Command, args []string) {
	board, _, logger := openBoard()
	taskID := args[0]

	task := board.Task(taskID)
	if task == nil {
		fatal("Task not found: %s", taskID)
	}
	if task.Status != gantt.StatusDeleted {
		fmt.Printf("Task %s is not deleted (status: %s).\n", taskID, task.Status)
		return
	}

	checkMutation(logger, board.Restore(taskID))
	fmt.Printf("✓ Task restored: %s\n", taskID)
	fmt.Printf("  %s\n", task.Title)
}
