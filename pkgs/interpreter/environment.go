package interpreter

import "github.com/aledsdavies/glox/pkgs/loxerr"

// Environment is a lexical scope: a mapping from identifier to value, plus
// an optional enclosing scope. Closures and class instances hold strong
// references to the Environment active at their definition, so Environments
// are shared via ordinary Go pointers and reclaimed by the garbage
// collector — cycles (a method closure captured in its own instance's
// field) are an acknowledged, accepted leak risk (spec.md §9).
type Environment struct {
	values    map[string]interface{}
	enclosing *Environment
}

// NewEnvironment creates a child scope of enclosing (nil for the globals
// environment).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]interface{}),
		enclosing: enclosing,
	}
}

// Define unconditionally binds name in this scope. Redefinition is
// permitted here (the static resolver is what rejects local redefinition
// before evaluation ever reaches this call).
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// Get looks up name, walking the enclosing chain.
func (e *Environment) Get(name string, line, col int) (interface{}, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name, line, col)
	}
	return nil, loxerr.NewRuntimeError(line, col, "Undefined variable '"+name+"'.")
}

// Assign writes to the nearest scope in the chain that already defines
// name; it never creates a new binding.
func (e *Environment) Assign(name string, value interface{}, line, col int) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value, line, col)
	}
	return loxerr.NewRuntimeError(line, col, "Undefined variable '"+name+"'.")
}

// ancestor walks exactly depth enclosing links with no further search.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name at exactly depth enclosing links up, as resolved by the
// static resolver: no search beyond that single scope.
func (e *Environment) GetAt(depth int, name string) interface{} {
	return e.ancestor(depth).values[name]
}

// AssignAt writes name at exactly depth enclosing links up.
func (e *Environment) AssignAt(depth int, name string, value interface{}) {
	e.ancestor(depth).values[name] = value
}

// Names returns every name bound in this scope, for "did you mean"
// suggestion lookups; it does not walk the enclosing chain.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for n := range e.values {
		names = append(names, n)
	}
	return names
}

// AllNames returns every name visible from this scope, innermost first,
// walking the full enclosing chain — used for fuzzy "did you mean" hints
// on an undefined-variable diagnostic.
func (e *Environment) AllNames() []string {
	var names []string
	for env := e; env != nil; env = env.enclosing {
		names = append(names, env.Names()...)
	}
	return names
}
