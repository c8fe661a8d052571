package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftboard/gantt"
)

var completeCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Complete a task",
	Long:  `Mark a task as completed. Only allowed once progress is 100%.`,
	Args:  cobra.ExactArgs(1),
	Run:   completeTask,
}

func completeTask(cmd *cobra.Command, args []string) {
	board, _, logger := openBoard()
	taskID := args[0]

	task := board.Task(taskID)
	if task == nil {
		fatal("Task not found: %s", taskID)
	}
	if task.Status == gantt.StatusCompleted {
		fmt.Printf("Task %s is already completed.\n", taskID)
		return
	}

	// The engine emits the completion event; the host is the presentation
	// collaborator here.
	completed := false
	board.Subscribe(func(e gantt.Event) {
		if done, ok := e.(gantt.TaskCompletedEvent); ok {
			completed = true
			fmt.Printf("🎉 %s\n", done.Title)
		}
	})

	checkMutation(logger, board.Complete(taskID))

	if completed {
		fmt.Printf("✓ Task completed: %s\n", taskID)
	} else {
		fmt.Printf("Task %s is at %d%% progress; finish it before completing.\n", taskID, task.Progress)
	}
}
