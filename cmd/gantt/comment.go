package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment <task-id> <text>...",
	Short: "Append a comment to a task's history",
	Args:  cobra.MinimumNArgs(2),
	Run:   addComment,
}

func addComment(cmd *cobra.Command, args []string) {
	board, cfg, logger := openBoard()
	taskID := args[0]
	text := strings.Join(args[1:], " ")

	checkMutation(logger, board.RecordComment(taskID, text, cfg.Actor))
	fmt.Printf("✓ Comment added to %s\n", taskID)
}
