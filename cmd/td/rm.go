package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksmith/td/internal/cli"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Long: `Remove a task from the list.

The id may be abbreviated to any unique prefix.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runRm,
	ValidArgsFunction: completeTaskIDs,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	task, err := cli.ResolveTask(args[0], a.session.Tasks())
	if err != nil {
		a.Close()
		return err
	}
	a.session.DeleteTask(task.ID)
	if err := a.Close(); err != nil {
		return err
	}

	fmt.Printf("%s deleted.\n", task.ID)
	return nil
}
