package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"radix/internal/baseconv"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <literal>...",
	Short: "Convert numeric literals between bases",
	Long: `Convert runs each literal through the base converter. Without --to the
single-pass conversion is printed (bare decimals become 0x-tagged hex);
with --to the literal is fully normalized and rendered in that base.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("to", "", "output base (f|2|8|10|16)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	to, err := cmd.Flags().GetString("to")
	if err != nil {
		return fmt.Errorf("failed to get to flag: %w", err)
	}
	if to != "" {
		if _, ok := baseconv.ParseOutputBase(to); !ok {
			return fmt.Errorf("invalid base %q (expected f, 2, 8, 10 or 16)", to)
		}
		// Reuse the batch pipeline by prepending the selector.
		args = append([]string{"=" + to}, args...)
	}
	return runBatch(cmd, args)
}
