package runtime

import "sort"

// Environment holds the single global scope of variable bindings for one
// evaluation run. The language has no nested scopes: a later let or
// assignment to the same name overwrites the prior binding.
type Environment struct {
	values map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Define inserts or overwrites a binding. There is no error case.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Assign is the same operation as Define. Assignment is distinguished only at
// the expression level, where it also yields the assigned value.
func (e *Environment) Assign(name string, value Value) {
	e.values[name] = value
}

// Get retrieves a binding. It never returns a default value.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns the bound names in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of bindings.
func (e *Environment) Len() int {
	return len(e.values)
}
