package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftboard/gantt"
)

var (
	addTitle string
	addStart string
	addDays  int
	addGroup string
	addColor string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	Long:  `Add a new task to the board, optionally inside a group.`,
	Run:   addTask,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Task title (required)")
	addCmd.Flags().StringVarP(&addStart, "start", "s", "", "Start date YYYY-MM-DD (required)")
	addCmd.Flags().IntVarP(&addDays, "days", "d", 1, "Workday count")
	addCmd.Flags().StringVarP(&addGroup, "group", "g", "", "Group ID (empty = unassigned)")
	addCmd.Flags().StringVar(&addColor, "color", "#4a90d9", "Bar color for ungrouped tasks")
	if err := addCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("Failed to mark title flag as required: %v", err))
	}
	if err := addCmd.MarkFlagRequired("start"); err != nil {
		panic(fmt.Sprintf("Failed to mark start flag as required: %v", err))
	}
}

func addTask(cmd *cobra.Command, args []string) {
	board, _, logger := openBoard()

	task, err := board.AddTask(gantt.TaskCreateRequest{
		Title:     addTitle,
		StartDate: addStart,
		WorkDays:  addDays,
		GroupID:   addGroup,
		Color:     addColor,
	})
	checkMutation(logger, err)

	end, _ := board.EndDate(task.ID)
	fmt.Printf("✓ Task created: %s\n", task.ID)
	fmt.Printf("  Title: %s\n", task.Title)
	fmt.Printf("  Span: %s → %s (%d workdays)\n", task.StartDate, end, task.WorkDays)
	if task.GroupID != "" {
		fmt.Printf("  Group: %s\n", task.GroupID)
	}
}
