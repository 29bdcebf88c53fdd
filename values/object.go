package values

import (
	"github.com/lyraproj/om-evaluator/hash"
	"github.com/lyraproj/om-evaluator/ir"
	"github.com/lyraproj/om-evaluator/om"
)

// ObjectValue is an instance of a class. It is allocated partially evaluated,
// before any field is known, so that a field expression can refer back to the
// object under construction without infinite recursion. The field set is
// fixed by the class declaration.
type ObjectValue struct {
	valueBase
	class  *ir.ClassDecl
	fields *hash.StringHash
}

// NewObject returns a partially evaluated instance of the given class
func NewObject(class *ir.ClassDecl) *ObjectValue {
	return &ObjectValue{class: class, fields: hash.NewStringHash(len(class.Fields()))}
}

func (v *ObjectValue) Kind() om.Kind {
	return om.ObjectKind
}

func (v *ObjectValue) Class() *ir.ClassDecl {
	return v.class
}

func (v *ObjectValue) ClassName() string {
	return v.class.Name()
}

// SetField assigns a field slot. The slot value may be an unresolved
// reference; the object is structurally complete once every slot is
// assigned.
func (v *ObjectValue) SetField(name string, value om.Value) {
	v.fields.Put(name, value)
}

func (v *ObjectValue) GetField(name string) (om.Value, bool) {
	return v.fields.Get(name)
}

func (v *ObjectValue) FieldNames() []string {
	return v.fields.Keys()
}

func (v *ObjectValue) String() string {
	return `Object(` + v.class.Name() + `)`
}
