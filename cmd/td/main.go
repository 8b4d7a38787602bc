// Package main is the entry point for the td task list.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jacksmith/td/internal/cli"
	"github.com/jacksmith/td/internal/ui"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "td",
	Short: "td - a single-screen task list",
	Long: `td keeps a flat list of tasks: add them, mark them done, edit them in
place and delete them. Run without a subcommand to open the interactive
screen; the subcommands make the same changes from the shell.

The list is stored in the data directory (--dir, $TD_DIR or ~/.td) and
survives restarts.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          runRoot,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	dataDir string
	debug   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "data directory (default $TD_DIR or ~/.td)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug output to td.log")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("td version {{.Version}}\n")
}

func runRoot(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	runErr := ui.Run(cmd.Context(), a.session)
	// Write failures were logged; the screen has no error surface for them.
	_ = a.Close()
	return runErr
}
