package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var milestoneColor string

var milestoneCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Manage milestones",
}

var milestoneSetCmd = &cobra.Command{
	Use:   "set <date> <label>...",
	Short: "Create or replace the milestone on a date",
	Args:  cobra.MinimumNArgs(2),
	Run:   setMilestone,
}

var milestoneRemoveCmd = &cobra.Command{
	Use:   "remove <date>",
	Short: "Remove the milestone on a date",
	Args:  cobra.ExactArgs(1),
	Run:   removeMilestone,
}

var milestoneListCmd = &cobra.Command{
	Use:   "list",
	Short: "List milestones by date",
	Run:   listMilestones,
}

func init() {
	milestoneSetCmd.Flags().StringVar(&milestoneColor, "color", "#d9564a", "Marker color")
	milestoneCmd.AddCommand(milestoneSetCmd)
	milestoneCmd.AddCommand(milestoneRemoveCmd)
	milestoneCmd.AddCommand(milestoneListCmd)
}

func setMilestone(cmd *cobra.Command, args []string) {
	board, _, logger := openBoard()

	m, err := board.SetMilestone(args[0], strings.Join(args[1:], " "), milestoneColor)
	checkMutation(logger, err)

	fmt.Printf("✓ Milestone set: %s on %s\n", m.Label, m.Date)
}

func removeMilestone(cmd *cobra.Command, args []string) {
	board, _, logger := openBoard()

	checkMutation(logger, board.RemoveMilestone(args[0]))
	fmt.Printf("✓ Milestone removed: %s\n", args[0])
}

func listMilestones(cmd *cobra.Command, args []string) {
	board, _, _ := openBoard()

	milestones := board.Milestones()
	if len(milestones) == 0 {
		fmt.Println("No milestones.")
		return
	}
	for _, m := range milestones {
		fmt.Printf("  ◆ %s  %s\n", m.Date, m.Label)
	}
}
