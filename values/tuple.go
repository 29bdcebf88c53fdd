package values

import (
	"strconv"

	"github.com/lyraproj/om-evaluator/om"
)

// TupleValue is an ordered, fixed arity sequence of values
type TupleValue struct {
	valueBase
	elements []om.Value
}

// NewTuple returns a partially evaluated tuple with the given number of
// unassigned element slots
func NewTuple(size int) *TupleValue {
	return &TupleValue{elements: make([]om.Value, size)}
}

// WrapTuple returns a fully evaluated tuple over the given elements
func WrapTuple(elements []om.Value) *TupleValue {
	t := &TupleValue{elements: elements}
	t.MarkFullyEvaluated()
	return t
}

func (v *TupleValue) Kind() om.Kind {
	return om.TupleKind
}

// SetElement assigns an element slot
func (v *TupleValue) SetElement(index int, value om.Value) {
	v.elements[index] = value
}

func (v *TupleValue) Len() int {
	return len(v.elements)
}

func (v *TupleValue) At(index int) om.Value {
	return v.elements[index]
}

func (v *TupleValue) Elements() []om.Value {
	return v.elements
}

func (v *TupleValue) String() string {
	return `Tuple(` + strconv.Itoa(len(v.elements)) + ` elements)`
}
