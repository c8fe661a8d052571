package main

import (
	"os"

	"github.com/spf13/cobra"
)

var workspaceFlag string

var rootCmd = &cobra.Command{
	Use:   "gantt",
	Short: "Project dashboard scheduling engine",
	Long: `gantt is the CLI host for the driftboard scheduling engine: a
holiday-aware workday calculator, explicit task/group ordering, a task
lifecycle with an append-only history ledger, and idempotent intake of
AI-proposed tasks. State persists to .gantt/board.json in the workspace.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "Workspace directory (defaults to current directory)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(workdaysCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(milestoneCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
