package values

import (
	"github.com/lyraproj/om-evaluator/om"
)

// valueBase carries the evaluation lifecycle flags shared by the composite
// value kinds.
type valueBase struct {
	fullyEvaluated bool
	finalized      bool
}

func (v *valueBase) FullyEvaluated() bool {
	return v.fullyEvaluated
}

// MarkFullyEvaluated records that every slot of this value holds some value.
// A slot may still hold an unresolved reference; finalize removes those.
func (v *valueBase) MarkFullyEvaluated() {
	v.fullyEvaluated = true
}

// WrapAll wraps each attr in an Attribute value. Convenient when building
// the actual parameters of an instantiation from constants.
func WrapAll(attrs []om.Attr) []om.Value {
	vs := make([]om.Value, len(attrs))
	for i, a := range attrs {
		vs[i] = WrapAttr(a)
	}
	return vs
}
