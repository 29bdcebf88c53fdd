package values

import (
	"strconv"

	"github.com/lyraproj/om-evaluator/om"
)

// ReferenceValue is a pure indirection: it lets a dependent observe the cell
// of a computation that has not produced its value yet. References never
// appear in a finalized result.
type ReferenceValue struct {
	arena  *Arena
	target Handle
}

func (v *ReferenceValue) Kind() om.Kind {
	return om.ReferenceKind
}

// FullyEvaluated returns true once the observed cell is grounded. The
// grounded value may itself be another reference.
func (v *ReferenceValue) FullyEvaluated() bool {
	return v.arena.Load(v.target) != nil
}

// Target returns the handle of the observed cell
func (v *ReferenceValue) Target() Handle {
	return v.target
}

// Value returns the value grounded in the observed cell, or nil when the
// cell is still empty
func (v *ReferenceValue) Value() om.Value {
	return v.arena.Load(v.target)
}

func (v *ReferenceValue) String() string {
	return `Reference(` + strconv.Itoa(int(v.target)) + `)`
}
