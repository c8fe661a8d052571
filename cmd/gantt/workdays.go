package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var workdaysComment string

var workdaysCmd = &cobra.Command{
	Use:   "workdays <task-id> <days>",
	Short: "Change a task's workday count",
	Long:  `Change a task's workday count. The old and new values are recorded in the task's history ledger.`,
	Args:  cobra.ExactArgs(2),
	Run:   setWorkdays,
}

func init() {
	workdaysCmd.Flags().StringVarP(&workdaysComment, "comment", "c", "", "Reason for the change, stored with the history entry")
}

func setWorkdays(cmd *cobra.Command, args []string) {
	board, cfg, logger := openBoard()
	taskID := args[0]

	days, err := strconv.Atoi(args[1])
	if err != nil || days < 1 {
		fatal("Workday count must be an integer >= 1, got %q", args[1])
	}

	checkMutation(logger, board.RecordWorkDaysChange(taskID, days, workdaysComment, cfg.Actor))

	end, _ := board.EndDate(taskID)
	fmt.Printf("✓ Workdays updated: %s now spans %s → %s (%d workdays)\n",
		taskID, board.Task(taskID).StartDate, end, days)
}
