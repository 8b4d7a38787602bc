package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksmith/td/internal/cli"
)

var toggleCmd = &cobra.Command{
	Use:     "toggle <id>",
	Aliases: []string{"done", "undo"},
	Short:   "Mark a task done, or not done again",
	Long: `Flip a task between pending and completed.

The id may be abbreviated to any unique prefix.

Examples:
  td toggle 1700000000000
  td done 17000`,
	Args:              cobra.ExactArgs(1),
	RunE:              runToggle,
	ValidArgsFunction: completeTaskIDs,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	task, err := cli.ResolveTask(args[0], a.session.Tasks())
	if err != nil {
		a.Close()
		return err
	}
	a.session.ToggleComplete(task.ID)
	if err := a.Close(); err != nil {
		return err
	}

	if a.session.Tasks().Find(task.ID).Completed {
		fmt.Printf("%s done.\n", task.ID)
	} else {
		fmt.Printf("%s reopened.\n", task.ID)
	}
	return nil
}
