package core

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Environment maps names to values and chains to the enclosing scope.
type Environment struct {
	store map[string]Value
	outer *Environment
	calls *callDepth
}

// callDepth counts active function calls. It is shared by a root
// environment and every scope enclosed by it.
type callDepth struct {
	depth int
	limit int
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value), calls: &callDepth{}}
}

// NewEnclosedEnvironment creates a scope whose lookups fall back to outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Value), outer: outer, calls: outer.calls}
}

// SetMaxCallDepth bounds nested function calls in this environment and the
// scopes it encloses. Exceeding it yields an error value. Zero means no
// limit.
func (e *Environment) SetMaxCallDepth(limit int) {
	e.calls.limit = limit
}

func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Set binds name in this scope only; outer scopes are never touched.
func (e *Environment) Set(name string, v Value) Value {
	e.store[name] = v
	return v
}

// Names returns the names bound directly in this scope, sorted.
func (e *Environment) Names() []string {
	names := maps.Keys(e.store)
	slices.Sort(names)
	return names
}
