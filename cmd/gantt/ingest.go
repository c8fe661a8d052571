package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftboard/gantt"
)

var (
	ingestTitle    string
	ingestAssignee string
	ingestStart    string
	ingestHours    int
	ingestGroup    string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest an AI task proposal",
	Long: `Run an AI-proposed task through the idempotent ingest gate. A proposal
with the same title, start date and assignee as one already seen in this
session is dropped silently.`,
	Run: ingestProposal,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestTitle, "title", "t", "", "Proposed title (required)")
	ingestCmd.Flags().StringVarP(&ingestAssignee, "assignee", "a", "", "Proposed assignee name")
	ingestCmd.Flags().StringVarP(&ingestStart, "start", "s", "", "Proposed start date YYYY-MM-DD (defaults to today)")
	ingestCmd.Flags().IntVar(&ingestHours, "hours", 0, "Proposed effort; values < 1 fall back to one workday")
	ingestCmd.Flags().StringVarP(&ingestGroup, "group", "g", "", "Destination group ID")
	if err := ingestCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("Failed to mark title flag as required: %v", err))
	}
}

func ingestProposal(cmd *cobra.Command, args []string) {
	board, _, logger := openBoard()

	task, created := board.Ingest(gantt.AITaskProposal{
		Title:        ingestTitle,
		AssigneeName: ingestAssignee,
		StartDate:    ingestStart,
		Hours:        ingestHours,
		GroupID:      ingestGroup,
	})

	if !created {
		logger.Info("proposal dropped as duplicate", "title", ingestTitle)
		fmt.Println("Proposal already seen; nothing created.")
		return
	}

	logger.Info("proposal ingested", "task", task.ID, "title", task.Title)
	fmt.Printf("✓ Task created from proposal: %s\n", task.ID)
	fmt.Printf("  Title: %s\n", task.Title)
	fmt.Printf("  Start: %s (%d workdays)\n", task.StartDate, task.WorkDays)
	if len(task.Assignees) > 0 {
		fmt.Printf("  Assignee: %s\n", task.Assignees[0].Name)
	}
}
