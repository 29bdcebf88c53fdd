// Package values implements the evaluator value model: the closed set of
// value kinds, the arena that gives every computation a stable handle, and
// the finalize pass that strips reference indirection from a value graph.
package values

import (
	"github.com/lyraproj/om-evaluator/om"
)

// Handle is a stable index into an Arena cell. References hold handles, not
// pointers, so following a reference chain is an arena walk and cycle
// detection is a visited handle set.
type Handle int

// Arena owns the cells that computations ground their results in. One
// evaluator instance owns exactly one arena.
type Arena struct {
	cells []om.Value
	ids   map[om.Value]Handle
}

func NewArena() *Arena {
	return &Arena{ids: make(map[om.Value]Handle, 8)}
}

// NewCell allocates an empty cell and returns its handle
func (a *Arena) NewCell() Handle {
	h := Handle(len(a.cells))
	a.cells = append(a.cells, nil)
	return h
}

// Ground stores the result of a computation in its cell. A cell is grounded
// at most once.
func (a *Arena) Ground(h Handle, value om.Value) {
	a.cells[h] = value
}

// Load returns the value grounded in the cell, or nil when the cell is still
// empty
func (a *Arena) Load(h Handle) om.Value {
	return a.cells[h]
}

// NewReference returns a reference value that observes the given cell
func (a *Arena) NewReference(target Handle) *ReferenceValue {
	return &ReferenceValue{arena: a, target: target}
}

// Identify returns a stable handle for the given value, allocating a
// grounded cell for it on first use. Used to give composite values an
// identity when they participate in parameter list hashing.
func (a *Arena) Identify(value om.Value) Handle {
	if h, ok := a.ids[value]; ok {
		return h
	}
	h := a.NewCell()
	a.Ground(h, value)
	a.ids[value] = h
	return h
}
