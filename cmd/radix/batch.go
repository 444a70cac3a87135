package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"radix/internal/baseconv"
	"radix/internal/driver"
)

// checkForcedBase scans args for the first "=<base>" selector. The matching
// argument is removed from the returned list; everything else stays in
// order.
func checkForcedBase(args []string) (baseconv.OutputBase, bool, []string) {
	for i, arg := range args {
		if len(arg) < 2 || arg[0] != '=' {
			continue
		}
		base, ok := baseconv.ParseOutputBase(arg[1:])
		if !ok {
			continue
		}
		rest := make([]string, 0, len(args)-1)
		rest = append(rest, args[:i]...)
		rest = append(rest, args[i+1:]...)
		return base, true, rest
	}
	return "", false, args
}

// runBatch converts each argument independently. Failures are reported and
// processing continues with the next argument; the command itself succeeds.
func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	base, forced, literals := checkForcedBase(args)
	if !forced && cfg.Output.Base != "" {
		if b, ok := baseconv.ParseOutputBase(cfg.Output.Base); ok {
			base, forced = b, true
		}
	}
	grouped := cfg.Output.Group
	if f := cmd.Root().PersistentFlags().Lookup("group"); f != nil && f.Changed {
		grouped, err = cmd.Root().PersistentFlags().GetBool("group")
		if err != nil {
			return fmt.Errorf("failed to get group flag: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	for _, lit := range literals {
		rendered, err := driver.ConvertLiteral(lit, base, forced, grouped)
		if err != nil {
			if errors.Is(err, baseconv.ErrNormalizationLimit) {
				fmt.Fprintln(os.Stderr, "Error: Failed to convert expression result")
			} else {
				fmt.Fprintln(os.Stderr, "Error: Failed to parse input")
			}
			continue
		}
		fmt.Fprintln(out, rendered)
	}
	return nil
}
