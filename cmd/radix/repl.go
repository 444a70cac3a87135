package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"radix/internal/diagfmt"
	"radix/internal/driver"
	"radix/internal/history"
	"radix/internal/ui"
)

// runRepl starts the interactive session: a Bubble Tea program on a
// terminal, a plain prompt loop otherwise.
func runRepl(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	// History is best-effort: an unwritable cache dir never blocks the session.
	var store *history.Store
	if cfg.Repl.History {
		if dir, dirErr := history.DefaultDir("radix"); dirErr == nil {
			store, _ = history.Open(dir)
		}
	}

	mode, err := readUIMode(cfg.Repl.UI)
	if err != nil {
		return err
	}
	if shouldUseTUI(mode) {
		return runReplTUI(cfg, store, maxDiagnostics)
	}
	return runReplPlain(cmd, cfg, store, maxDiagnostics)
}

// evalStep evaluates one typed line and renders diagnostics plus the result
// or the error text. The session continues either way.
func evalStep(line string, maxDiagnostics int, store *history.Store) ui.EvalResult {
	res, err := driver.EvalLine(line, maxDiagnostics)

	var sb strings.Builder
	diagfmt.Pretty(&sb, res.Bag, diagfmt.PrettyOpts{Color: false})

	entry := history.Entry{Expr: line, When: time.Now()}
	if err != nil {
		sb.WriteString(err.Error())
		entry.Err = err.Error()
		store.Append(entry) //nolint:errcheck // history stays best-effort
		return ui.EvalResult{Output: sb.String(), IsErr: true}
	}
	sb.WriteString(strconv.FormatInt(res.Value, 10))
	entry.Result = res.Value
	store.Append(entry) //nolint:errcheck // history stays best-effort
	return ui.EvalResult{Output: sb.String(), IsErr: false}
}

func runReplTUI(cfg radixConfig, store *history.Store, maxDiagnostics int) error {
	model := ui.NewReplModel(cfg.Repl.Prompt, func(line string) ui.EvalResult {
		return evalStep(line, maxDiagnostics, store)
	})
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err := program.Run()
	return err
}

// runReplPlain blocks on one line read per iteration until EOF.
func runReplPlain(cmd *cobra.Command, cfg radixConfig, store *history.Store, maxDiagnostics int) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		fmt.Fprint(out, cfg.Repl.Prompt)
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		res := evalStep(line, maxDiagnostics, store)
		fmt.Fprintln(out, res.Output)
	}
}
