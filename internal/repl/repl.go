// Package repl implements the interactive loop described in §6:
// prompt `> `, one line processed to completion before the next is read,
// `exit` or EOF terminates. Colour is applied only when stdout is a
// terminal, checked via go-isatty the way the teacher repo gates its own
// terminal-only behaviour (funvibe-funxy's builtins_term.go).
//
// The `!`-prefixed commands (!vars, !funcs, !builtins, !clear, !history,
// !del, !help, !exit/!quit/!q) are a supplemental feature pulled from
// original_source/main.py's Computor.handle_command (§6 SUPPLEMENTAL
// FEATURES); they are dispatched ahead of the normal statement pipeline
// and never reach the lexer/parser.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/computorv2/computorv2/internal/config"
	"github.com/computorv2/computorv2/internal/evaluator"
	"github.com/computorv2/computorv2/internal/formatter"
	"github.com/computorv2/computorv2/internal/history"
	"github.com/computorv2/computorv2/internal/pipeline"
	"github.com/computorv2/computorv2/internal/value"
)

const (
	colorCyan  = "\x1b[36m"
	colorRed   = "\x1b[91m"
	colorReset = "\x1b[0m"
)

// REPL owns the interactive prompt loop over a single Environment.
type REPL struct {
	In        io.Reader
	Out       io.Writer
	Env       *evaluator.Evaluator
	Formatter *formatter.Formatter
	History   *history.Store // optional; nil disables persistence
	Color     bool
}

// New creates a REPL reading from in and writing to out. settings
// supplies the decimal precision used to render approximate results and
// the colour toggle; pass nil to fall back to config.Default(). Colour is
// applied only when both settings.Color is set and out is a terminal
// file descriptor.
func New(in io.Reader, out interface {
	io.Writer
	Fd() uintptr
}, hist *history.Store, settings *config.Settings) *REPL {
	if settings == nil {
		settings = config.Default()
	}
	return &REPL{
		In:        in,
		Out:       out,
		Env:       evaluator.New(evaluator.NewEnvironment()),
		Formatter: formatter.New(settings.Precision),
		History:   hist,
		Color:     settings.Color && isatty.IsTerminal(out.Fd()),
	}
}

// Run drives the loop until `exit` or EOF.
func (r *REPL) Run() {
	scanner := bufio.NewScanner(r.In)
	for {
		fmt.Fprint(r.Out, r.colorize("> ", colorCyan))
		if !scanner.Scan() {
			fmt.Fprintln(r.Out)
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}
		if strings.HasPrefix(line, "!") {
			if r.handleCommand(line) {
				return
			}
			continue
		}
		r.processLine(line)
	}
}

// handleCommand dispatches a `!`-prefixed command and reports whether the
// REPL should terminate.
func (r *REPL) handleCommand(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	switch cmd {
	case "!exit", "!quit", "!q":
		return true
	case "!vars":
		r.printNames(func(v value.Value) bool { return v.Kind() != value.KFunction })
	case "!funcs":
		r.printNames(func(v value.Value) bool { return v.Kind() == value.KFunction })
	case "!builtins":
		names := make([]string, 0, len(evaluator.Builtins))
		for name := range evaluator.Builtins {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintln(r.Out, strings.Join(names, ", "))
	case "!clear":
		r.Env.Env.Clear()
	case "!history":
		r.printHistory()
	case "!del":
		if len(fields) < 2 {
			fmt.Fprintln(r.Out, r.colorize("Error: !del requires a name", colorRed))
			return false
		}
		if !r.Env.Env.Delete(fields[1]) {
			fmt.Fprintln(r.Out, r.colorize(fmt.Sprintf("Error: %q is not bound", fields[1]), colorRed))
		}
	case "!help":
		fmt.Fprintln(r.Out, "!vars !funcs !builtins !clear !history !del <name> !help !exit")
	default:
		fmt.Fprintln(r.Out, r.colorize(fmt.Sprintf("Error: unknown command %q", cmd), colorRed))
	}
	return false
}

func (r *REPL) printNames(keep func(value.Value) bool) {
	var names []string
	for _, n := range r.Env.Env.Names() {
		if v, ok := r.Env.Env.Get(n); ok && keep(v) {
			names = append(names, n)
		}
	}
	fmt.Fprintln(r.Out, strings.Join(names, ", "))
}

func (r *REPL) printHistory() {
	if r.History == nil {
		fmt.Fprintln(r.Out, "history is disabled")
		return
	}
	entries, err := r.History.Recent(20)
	if err != nil {
		fmt.Fprintln(r.Out, r.colorize(fmt.Sprintf("Error: %s", err), colorRed))
		return
	}
	for _, e := range entries {
		fmt.Fprintf(r.Out, "%s\n", e.Line)
	}
}

func (r *REPL) processLine(line string) {
	out, err := pipeline.Run(line, r.Env, r.Formatter)
	if err != nil {
		msg := fmt.Sprintf("Error: %s", err)
		fmt.Fprintln(r.Out, r.colorize(msg, colorRed))
		if r.History != nil {
			r.History.Append(line, err.Error(), true)
		}
		return
	}
	if !out.Silent {
		fmt.Fprintln(r.Out, r.colorize(out.Text, colorCyan))
	}
	if r.History != nil {
		r.History.Append(line, out.Text, false)
	}
}

func (r *REPL) colorize(s, code string) string {
	if !r.Color {
		return s
	}
	return code + s + colorReset
}
