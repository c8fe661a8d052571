package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	groupColor string
	groupBelow bool
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage task groups",
}

var groupAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a group",
	Args:  cobra.ExactArgs(1),
	Run:   runAddGroup,
}

var groupMoveCmd = &cobra.Command{
	Use:   "move <group-id> <target-group-id>",
	Short: "Reorder a group relative to another group",
	Args:  cobra.ExactArgs(2),
	Run:   moveGroup,
}

func init() {
	groupAddCmd.Flags().StringVar(&groupColor, "color", "#7b6cd9", "Group color (applied to tasks moved into the group)")
	groupMoveCmd.Flags().BoolVar(&groupBelow, "below", false, "Insert below the target instead of above")
	groupCmd.AddCommand(groupAddCmd)
	groupCmd.AddCommand(groupMoveCmd)
}

func runAddGroup(cmd *cobra.Command, args []string) {
	board, _, logger := openBoard()

	g, err := board.AddGroup(args[0], groupColor)
	checkMutation(logger, err)

	fmt.Printf("✓ Group created: %s\n", g.ID)
	fmt.Printf("  Name: %s\n", g.Name)
}

func moveGroup(cmd *cobra.Command, args []string) {
	board, _, logger := openBoard()

	err := board.ReorderGroups(args[0], args[1], groupBelow)
	checkMutation(logger, err)

	fmt.Println("✓ Group order updated")
}
