package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/model"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List all tasks in creation order.

Formats:
  table  ID, status and title (default)
  json   the stored form: [{"id","title","completed"}, ...]
  yaml   one mapping per task`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFormat string

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format: table, json or yaml")
	listCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"table", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	tasks := a.session.Tasks()
	if err := a.Close(); err != nil {
		return err
	}

	switch listFormat {
	case "", "table":
		cli.WriteTaskTable(os.Stdout, tasks)
	case "json":
		data, err := model.EncodeTasks(tasks)
		if err != nil {
			return err
		}
		fmt.Println(data)
	case "yaml":
		return model.WriteYAML(os.Stdout, tasks)
	default:
		return &cli.ValidationError{Field: "format", Message: fmt.Sprintf("%q (expected table, json or yaml)", listFormat)}
	}
	return nil
}
