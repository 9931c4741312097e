package evaluator

import (
	"sort"
	"strings"
	"sync"

	"github.com/computorv2/computorv2/internal/value"
)

// Environment is the mutable binding of identifiers to Values (which
// includes stored Function definitions) that the REPL owns across lines
// (§3, §5). Lookup is case-sensitive internally; Display normalises case
// only for presentation.
type Environment struct {
	mu    sync.RWMutex
	store map[string]value.Value
}

// NewEnvironment creates an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]value.Value)}
}

// Get returns the bound value for name, if any.
func (e *Environment) Get(name string) (value.Value, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.store[name]
	return v, ok
}

// Set binds name to v, overwriting any previous binding (§3: "Variable
// assignment overwrites; function redefinition overwrites").
func (e *Environment) Set(name string, v value.Value) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store[name] = v
}

// Names returns the currently bound identifier names, sorted, for display
// purposes (e.g. a REPL `vars` command).
func (e *Environment) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.store))
	for n := range e.store {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Clear removes every binding. Used by the REPL's `!clear` command (§6).
func (e *Environment) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store = make(map[string]value.Value)
}

// Delete removes name's binding, if any, reporting whether it existed.
// Used by the REPL's `!del` command (§6).
func (e *Environment) Delete(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.store[name]
	delete(e.store, name)
	return ok
}

// DisplayName lower-cases a name for case-insensitive presentation without
// affecting the case-sensitive internal lookup key (§3).
func DisplayName(name string) string { return strings.ToLower(name) }
