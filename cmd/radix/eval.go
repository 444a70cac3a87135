package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"radix/internal/baseconv"
	"radix/internal/diagfmt"
	"radix/internal/driver"
)

var evalCmd = &cobra.Command{
	Use:   `eval [flags] "expression"`,
	Short: "Evaluate one infix expression",
	Long:  `Eval tokenizes, transforms to postfix and evaluates a single expression`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().String("base", "", "force output base (f|2|8|10|16)")
}

func runEval(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	baseFlag, err := cmd.Flags().GetString("base")
	if err != nil {
		return fmt.Errorf("failed to get base flag: %w", err)
	}
	grouped, err := cmd.Root().PersistentFlags().GetBool("group")
	if err != nil {
		return fmt.Errorf("failed to get group flag: %w", err)
	}

	res, evalErr := driver.EvalLine(args[0], maxDiagnostics)
	if res.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, res.Bag, diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)})
	}
	if evalErr != nil {
		return evalErr
	}

	out := cmd.OutOrStdout()
	switch {
	case baseFlag != "":
		base, ok := baseconv.ParseOutputBase(baseFlag)
		if !ok {
			return fmt.Errorf("invalid base %q (expected f, 2, 8, 10 or 16)", baseFlag)
		}
		if grouped && base == baseconv.BaseDecimal {
			fmt.Fprintln(out, baseconv.FormatGrouped(res.Value))
		} else {
			fmt.Fprintln(out, baseconv.Format(res.Value, base))
		}
	case grouped:
		fmt.Fprintln(out, baseconv.FormatGrouped(res.Value))
	default:
		fmt.Fprintln(out, strconv.FormatInt(res.Value, 10))
	}
	return nil
}
