package values

import (
	"strconv"

	"github.com/lyraproj/om-evaluator/om"
)

// ListValue is an ordered sequence of values. Elements are held by shared
// reference, so later resolution of a slot is visible to all holders.
type ListValue struct {
	valueBase
	elements []om.Value
}

// NewList returns a partially evaluated list with the given number of
// unassigned element slots
func NewList(size int) *ListValue {
	return &ListValue{elements: make([]om.Value, size)}
}

// WrapList returns a fully evaluated list over the given elements
func WrapList(elements []om.Value) *ListValue {
	l := &ListValue{elements: elements}
	l.MarkFullyEvaluated()
	return l
}

func (v *ListValue) Kind() om.Kind {
	return om.ListKind
}

// SetElement assigns an element slot
func (v *ListValue) SetElement(index int, value om.Value) {
	v.elements[index] = value
}

func (v *ListValue) Len() int {
	return len(v.elements)
}

func (v *ListValue) At(index int) om.Value {
	return v.elements[index]
}

func (v *ListValue) Elements() []om.Value {
	return v.elements
}

func (v *ListValue) String() string {
	return `List(` + strconv.Itoa(len(v.elements)) + ` elements)`
}
