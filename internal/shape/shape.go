// Package shape defines geometric shape definitions and the ordered catalog
// the calculator menu is built from.
//
// A Definition pairs a display name with an ordered parameter list and a pure
// area formula. Formulas only ever see values that already passed input
// validation; all reading happens in the session package.
package shape

import (
	"fmt"
	"slices"
)

// Kind selects which validated read produces a parameter value.
type Kind int

const (
	// Positive is any finite decimal strictly greater than zero.
	Positive Kind = iota
	// IntAtLeast is an integer no smaller than Parameter.Min.
	IntAtLeast
)

func (k Kind) String() string {
	switch k {
	case Positive:
		return "positive"
	case IntAtLeast:
		return "int_at_least"
	default:
		return "unknown"
	}
}

// Parameter is a named input of a shape.
type Parameter struct {
	Name string
	Kind Kind
	Min  int // IntAtLeast only
}

// Formula computes an area from values ordered like Definition.Params.
type Formula func(values []float64) float64

// Violation describes a failed cross-field check.
type Violation struct {
	Field   int    // index of the parameter to read again
	Message string // diagnostic printed before the re-read
}

// Check validates a complete value set after every parameter was read.
// It returns nil when the values are acceptable.
type Check func(values []float64) *Violation

// Definition is an immutable shape description.
type Definition struct {
	Name    string
	Params  []Parameter
	Formula Formula
	Check   Check // optional
}

// Arity returns the number of parameters the formula expects.
func (d Definition) Arity() int {
	return len(d.Params)
}

// ParameterNames returns the parameter names in prompt order.
func (d Definition) ParameterNames() []string {
	names := make([]string, len(d.Params))
	for i, p := range d.Params {
		names[i] = p.Name
	}
	return names
}

// Compute evaluates the formula. Passing the wrong number of values is a
// programming error and panics.
func (d Definition) Compute(values []float64) float64 {
	if len(values) != d.Arity() {
		panic(fmt.Sprintf("shape %q: got %d values, want %d", d.Name, len(values), d.Arity()))
	}
	return d.Formula(values)
}

// Validate runs the optional cross-field check.
func (d Definition) Validate(values []float64) *Violation {
	if d.Check == nil {
		return nil
	}
	return d.Check(values)
}

func (d Definition) clone() Definition {
	d.Params = slices.Clone(d.Params)
	return d
}
