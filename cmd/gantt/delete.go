package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task (soft delete, restorable)",
	Long: `Soft-delete a task. Deletion requires explicit confirmation with --yes;
a deleted task keeps its history and can be restored.`,
	Args: cobra.ExactArgs(1),
	Run:  deleteTask,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Confirm the deletion")
}

func deleteTask(cmd *cobra.Command, args []string) {
	taskID := args[0]
	if !deleteYes {
		fatal("Deleting %s requires confirmation: re-run with --yes", taskID)
	}

	board, _, logger := openBoard()
	if board.Task(taskID) == nil {
		fatal("Task not found: %s", taskID)
	}

	checkMutation(logger, board.Delete(taskID))
	fmt.Printf("✓ Task deleted: %s (restore with 'gantt restore %s')\n", taskID, taskID)
}
