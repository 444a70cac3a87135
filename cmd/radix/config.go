package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/spf13/cobra"
)

type replConfig struct {
	Prompt  string `toml:"prompt"`
	UI      string `toml:"ui"`
	History bool   `toml:"history"`
}

type outputConfig struct {
	Base  string `toml:"base"`
	Group bool   `toml:"group"`
}

type radixConfig struct {
	Repl   replConfig   `toml:"repl"`
	Output outputConfig `toml:"output"`
}

func defaultConfig() radixConfig {
	return radixConfig{
		Repl: replConfig{
			Prompt:  "> ",
			UI:      "auto",
			History: true,
		},
	}
}

// findRadixToml walks upward from startDir looking for radix.toml.
func findRadixToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "radix.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfigFile(path string) (radixConfig, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return radixConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig loads radix.toml from --config or by upward search.
// A missing file is not an error; defaults apply.
func resolveConfig(cmd *cobra.Command) (radixConfig, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return radixConfig{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return loadConfigFile(path)
	}
	found, ok, err := findRadixToml(".")
	if err != nil || !ok {
		return defaultConfig(), err
	}
	return loadConfigFile(found)
}
