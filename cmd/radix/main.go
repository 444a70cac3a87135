package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"radix/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "radix [literal-or-=base...]",
	Short: "Multi-base arithmetic calculator",
	Long: `radix evaluates infix arithmetic expressions and converts numeric
literals between hex, binary, octal, decimal and IEEE-754 bit patterns.

With no arguments it starts an interactive session. With arguments, every
argument is converted; a "=<base>" argument (f, 2, 8, 10 or 16) forces the
output format for the rest.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("config", "", "path to radix.toml (default: search upward from the cwd)")
	rootCmd.PersistentFlags().Bool("group", false, "group decimal digits in output (1,000,000)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runRoot dispatches between the interactive session and batch conversion.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runRepl(cmd)
	}
	return runBatch(cmd, args)
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the terminal state of f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
