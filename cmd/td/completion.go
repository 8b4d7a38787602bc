package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacksmith/td/internal/ops"
	"github.com/jacksmith/td/internal/storage"
)

// completeTaskIDs completes the first argument with task ids, showing the
// title as the description. It reads the store without starting a writer.
func completeTaskIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	dir, err := resolveDataDir()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	store, err := storage.Open(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	tasks, _ := ops.LoadTasks(store, cfg.StorageKey)

	var out []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, toComplete) {
			out = append(out, t.ID+"\t"+t.Title)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
