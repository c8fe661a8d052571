package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	moveGroupFlag  string
	moveTargetFlag string
	moveBelowFlag  bool
)

var moveCmd = &cobra.Command{
	Use:   "move <task-id>",
	Short: "Move a task within its group or into another group",
	Long: `Move a task. With --target the task is inserted relative to that task
(above by default, below with --below). With --group and no target the task
is appended to the group's end and takes the group's color.`,
	Args: cobra.ExactArgs(1),
	Run:  moveTask,
}

func init() {
	moveCmd.Flags().StringVarP(&moveGroupFlag, "group", "g", "", "Destination group ID (empty = unassigned)")
	moveCmd.Flags().StringVar(&moveTargetFlag, "target", "", "Target task ID to insert relative to")
	moveCmd.Flags().BoolVar(&moveBelowFlag, "below", false, "Insert below the target instead of above")
}

func moveTask(cmd *cobra.Command, args []string) {
	board, _, logger := openBoard()
	taskID := args[0]

	task := board.Task(taskID)
	if task == nil {
		fatal("Task not found: %s", taskID)
	}

	dest := moveGroupFlag
	if !cmd.Flags().Changed("group") {
		if moveTargetFlag == "" {
			fatal("Nothing to do: give --target, --group, or both")
		}
		// Staying relative to a target without an explicit group: follow the
		// target's group.
		target := board.Task(moveTargetFlag)
		if target == nil {
			fatal("Target task not found: %s", moveTargetFlag)
		}
		dest = target.GroupID
	}

	var err error
	if dest == task.GroupID && moveTargetFlag != "" {
		err = board.ReorderWithinGroup(taskID, moveTargetFlag, moveBelowFlag)
	} else {
		err = board.MoveToGroup(taskID, dest, moveTargetFlag, moveBelowFlag)
	}
	checkMutation(logger, err)

	fmt.Printf("✓ Task moved: %s\n", taskID)
	if g := board.Group(board.Task(taskID).GroupID); g != nil {
		fmt.Printf("  Group: %s (color %s)\n", g.Name, g.Color)
	}
}
