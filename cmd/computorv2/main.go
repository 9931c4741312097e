// Command computorv2 is an interactive mathematical interpreter: arithmetic
// over rationals, complex numbers and matrices, variable and function bindings,
// symbolic polynomial simplification, and equation solving up to degree 2.
package main

import (
	"fmt"
	"os"

	"github.com/computorv2/computorv2/internal/config"
	"github.com/computorv2/computorv2/internal/evaluator"
	"github.com/computorv2/computorv2/internal/formatter"
	"github.com/computorv2/computorv2/internal/history"
	"github.com/computorv2/computorv2/internal/pipeline"
	"github.com/computorv2/computorv2/internal/repl"
)

const usage = `computorv2 - interactive mathematical interpreter

Usage:
  computorv2                run the interactive REPL
  computorv2 "EXPRESSION"   evaluate a single line and exit
  computorv2 --help         show this message
`

func main() {
	args := os.Args[1:]
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		fmt.Print(usage)
		os.Exit(0)
	}

	if len(args) >= 1 {
		os.Exit(runOneShot(args[0]))
	}

	os.Exit(runInteractive())
}

func runOneShot(line string) int {
	settings := loadSettings()
	ev := evaluator.New(evaluator.NewEnvironment())
	fmtr := formatter.New(settings.Precision)
	out, err := pipeline.Run(line, ev, fmtr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	if !out.Silent {
		fmt.Println(out.Text)
	}
	return 0
}

func runInteractive() int {
	settings := loadSettings()
	hist := openHistory(settings)
	if hist != nil {
		defer hist.Close()
	}
	r := repl.New(os.Stdin, os.Stdout, hist, settings)
	r.Run()
	return 0
}

// loadSettings reads ~/.computorv2.yaml, falling back to config.Default()
// when the file is absent or its path cannot be resolved (§6: the core
// does not depend on any external collaborator).
func loadSettings() *config.Settings {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Default()
	}
	settings, err := config.Load(path)
	if err != nil {
		return config.Default()
	}
	return settings
}

// openHistory opens the optional SQLite-backed history store at the
// configured path. A failure to open history is never fatal (§5: the core
// does not depend on this collaborator) — the REPL simply runs without it.
func openHistory(settings *config.Settings) *history.Store {
	dbPath := settings.HistoryPath
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dbPath = home + "/.computorv2_history.db"
	}
	h, err := history.Open(dbPath, settings.HistoryLimit)
	if err != nil {
		return nil
	}
	return h
}
