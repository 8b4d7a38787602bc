package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksmith/td/internal/ops"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Long: `Add a new pending task to the end of the list.

The title is stored exactly as given. Blank titles are rejected.

Examples:
  td add "Buy milk"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := args[0]
	if err := ops.ValidateTitle(title); err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}

	task := a.session.AddTask(title)
	if err := a.Close(); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", task.ID, task.Title)
	return nil
}
