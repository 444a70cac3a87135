package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"radix/internal/diag"
	"radix/internal/diagfmt"
	"radix/internal/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   `tokenize [flags] "expression"`,
	Short: "Tokenize an expression",
	Long:  `Tokenize breaks an expression down into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	bag := diag.NewBag(maxDiagnostics)
	toks := lexer.Tokenize(args[0], diag.BagReporter{Bag: bag})

	if bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, bag, diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), toks)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), toks)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
