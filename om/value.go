// Package om defines the API surface of the object model evaluator: the
// value kinds produced by an instantiation, the constant attribute taxonomy,
// and the issue codes raised when evaluation fails.
package om

// Kind identifies one of the closed set of evaluator value kinds.
type Kind int

const (
	AttributeKind Kind = iota
	ObjectKind
	ListKind
	TupleKind
	MapKind
	ReferenceKind
)

func (k Kind) String() string {
	switch k {
	case AttributeKind:
		return `Attribute`
	case ObjectKind:
		return `Object`
	case ListKind:
		return `List`
	case TupleKind:
		return `Tuple`
	case MapKind:
		return `Map`
	case ReferenceKind:
		return `Reference`
	}
	return `Unknown`
}

// Value is an evaluator runtime value. Values are shared by reference across
// the value graph so a value may be reachable from many positions.
type Value interface {
	// Kind returns the kind of this value
	Kind() Kind

	// FullyEvaluated returns true when every slot of this value holds some
	// value. A slot may still hold an unresolved reference until the value
	// graph has been finalized.
	FullyEvaluated() bool

	String() string
}

// Attribute is a value that wraps an already known constant. It is a leaf of
// the value graph and fully evaluated at construction.
type Attribute interface {
	Value

	// Attr returns the wrapped constant
	Attr() Attr
}

// Object is a composite value tagged with the class declaration it was
// instantiated from. Field enumeration order is the declaration order.
type Object interface {
	Value

	// ClassName returns the name of the class this object is an instance of
	ClassName() string

	// GetField returns the value of the named field and true, or nil and
	// false when the class declares no such field
	GetField(name string) (Value, bool)

	// FieldNames returns the field names in declaration order
	FieldNames() []string
}

// Sequence is the common surface of List and Tuple values.
type Sequence interface {
	Value

	Len() int

	// At returns the element at the given position. The position must be
	// within bounds.
	At(index int) Value

	// Elements returns the backing element slice. Callers must treat it as
	// read only.
	Elements() []Value
}

// Map is a composite value mapping constant attribute keys to values. Key
// enumeration order is insertion order.
type Map interface {
	Value

	Len() int

	// Keys returns the keys in insertion order
	Keys() []Attr

	// Get returns the value for the given key and true, or nil and false
	// when no entry exists for the key
	Get(key Attr) (Value, bool)
}
