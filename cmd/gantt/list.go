package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/driftboard/gantt"
)

var statusFilter string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List groups and tasks in board order",
	Run:   listTasks,
}

func init() {
	listCmd.Flags().StringVar(&statusFilter, "status", "", "Only show tasks with this status (active, completed, deleted)")
}

func listTasks(cmd *cobra.Command, args []string) {
	board, _, _ := openBoard()

	groupIDs := append(board.GroupOrder(), gantt.UnassignedGroup)

	shown := 0
	for _, gid := range groupIDs {
		taskIDs := board.TasksIn(gid)
		header := "(unassigned)"
		if g := board.Group(gid); g != nil {
			header = fmt.Sprintf("%s [%s]", g.Name, g.ID)
		}
		printed := false
		for _, tid := range taskIDs {
			task := board.Task(tid)
			if statusFilter != "" && string(task.Status) != statusFilter {
				continue
			}
			if !printed {
				fmt.Printf("%s\n", header)
				printed = true
			}
			displayTask(board, task)
			shown++
		}
		if printed {
			fmt.Println()
		}
	}

	if shown == 0 {
		fmt.Println("No tasks found.")
	}
}

func displayTask(board *gantt.Board, task *gantt.GanttTask) {
	statusIcon := "○"
	switch task.Status {
	case gantt.StatusCompleted:
		statusIcon = "✓"
	case gantt.StatusDeleted:
		statusIcon = "✗"
	}

	end, _ := board.EndDate(task.ID)
	fmt.Printf("  %s [%s] %s  %s → %s  %d%%\n", statusIcon, task.ID, task.Title, task.StartDate, end, task.Progress)

	if len(task.Assignees) > 0 {
		names := make([]string, len(task.Assignees))
		for i, a := range task.Assignees {
			names[i] = a.Name
		}
		fmt.Printf("      Assignees: %s\n", strings.Join(names, ", "))
	}
}
