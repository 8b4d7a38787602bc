package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/ops"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> [title]",
	Short: "Change a task's title",
	Long: `Replace a task's title.

Without a title argument, the current title opens in $VISUAL or $EDITOR.
The title is stored exactly as given, blank included, unless
reject_blank_edits is set in the config.

Examples:
  td edit 1700000000000 "Buy oat milk"
  td edit 17000`,
	Args:              cobra.RangeArgs(1, 2),
	RunE:              runEdit,
	ValidArgsFunction: completeTaskIDs,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	task, err := cli.ResolveTask(args[0], a.session.Tasks())
	if err != nil {
		a.Close()
		return err
	}

	var title string
	if len(args) == 2 {
		title = args[1]
	} else {
		title, err = cli.EditTitle(task.Title)
		if err != nil {
			a.Close()
			return err
		}
	}

	if a.cfg.RejectBlankEdits {
		if err := ops.ValidateTitle(title); err != nil {
			a.Close()
			return err
		}
	}

	a.session.SaveEdit(task.ID, title)
	if err := a.Close(); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", task.ID, title)
	return nil
}
