package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"radix/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [flags]",
	Short: "Show or clear the interactive session history",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Bool("clear", false, "delete the stored history")
}

func runHistory(cmd *cobra.Command, args []string) error {
	dir, err := history.DefaultDir("radix")
	if err != nil {
		return fmt.Errorf("failed to resolve cache directory: %w", err)
	}
	store, err := history.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}

	clearFlag, err := cmd.Flags().GetBool("clear")
	if err != nil {
		return fmt.Errorf("failed to get clear flag: %w", err)
	}
	if clearFlag {
		return store.Clear()
	}

	entries, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, e := range entries {
		if e.Err != "" {
			fmt.Fprintf(out, "%s  %s ! %s\n", e.When.Format("2006-01-02 15:04:05"), e.Expr, e.Err)
			continue
		}
		fmt.Fprintf(out, "%s  %s = %d\n", e.When.Format("2006-01-02 15:04:05"), e.Expr, e.Result)
	}
	return nil
}
