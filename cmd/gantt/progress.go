package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <task-id> <percent>",
	Short: "Set a task's progress (0-100)",
	Args:  cobra.ExactArgs(2),
	Run:   setProgress,
}

func setProgress(cmd *cobra.Command, args []string) {
	board, _, logger := openBoard()
	taskID := args[0]

	pct, err := strconv.Atoi(args[1])
	if err != nil {
		fatal("Progress must be an integer, got %q", args[1])
	}

	checkMutation(logger, board.SetProgress(taskID, pct))
	fmt.Printf("✓ Progress set: %s at %d%%\n", taskID, board.Task(taskID).Progress)
}
