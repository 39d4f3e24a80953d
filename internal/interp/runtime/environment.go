package runtime

import "fmt"

// UndefinedVariableError is returned by Get/Assign when a name has never
// been defined anywhere along the enclosing chain.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Environment is one lexical scope: a flat binding table plus a pointer to
// the scope it is nested inside. The global scope has a nil Enclosing.
type Environment struct {
	store     map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a top-level (global) environment.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a scope nested inside outer, as entered on
// every block and function call.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Value), enclosing: outer}
}

// Define binds name to value in this scope, shadowing (without erroring on)
// any binding of the same name in an enclosing scope. Re-declaring a name
// already defined in THIS scope silently replaces it, matching §4.4.
func (e *Environment) Define(name string, value Value) {
	e.store[name] = value
}

// Get resolves name by walking outward from this scope to the global one.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.store[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Assign rebinds an EXISTING variable found by walking outward; unlike
// Define it does not create a new binding, and fails if name was never
// declared anywhere in the chain (§4.4).
func (e *Environment) Assign(name string, value Value) error {
	if _, ok := e.store[name]; ok {
		e.store[name] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return &UndefinedVariableError{Name: name}
}

// Names returns every name bound directly in this scope (not enclosing
// ones), used by `--dump-env` to report the global scope's bindings.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	return names
}
