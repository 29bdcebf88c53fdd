package values

import (
	"github.com/lyraproj/om-evaluator/om"
)

// AttributeValue wraps an already known constant. It is a leaf of the value
// graph and fully evaluated at construction.
type AttributeValue struct {
	attr om.Attr
}

func WrapAttr(attr om.Attr) *AttributeValue {
	return &AttributeValue{attr}
}

func (v *AttributeValue) Kind() om.Kind {
	return om.AttributeKind
}

func (v *AttributeValue) FullyEvaluated() bool {
	return true
}

func (v *AttributeValue) Attr() om.Attr {
	return v.attr
}

func (v *AttributeValue) String() string {
	return v.attr.String()
}
