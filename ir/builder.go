package ir

import (
	"sync/atomic"

	"github.com/lyraproj/om-evaluator/om"
)

// nextID is process wide so that declarations built by different builders
// can be served by one loader without memoization keys aliasing.
var nextID int64

func newNodeID() NodeID {
	return NodeID(atomic.AddInt64(&nextID, 1))
}

// Builder creates IR nodes, assigning each a unique NodeID and the builder's
// current source location. A Builder is not safe for concurrent use.
type Builder struct {
	file string
	line int
	pos  int
}

// NewBuilder returns a Builder that stamps nodes with the given file name
func NewBuilder(file string) *Builder {
	return &Builder{file: file}
}

// At sets the source location stamped onto subsequently created nodes and
// returns the builder
func (b *Builder) At(line, pos int) *Builder {
	b.line = line
	b.pos = pos
	return b
}

func (b *Builder) newNode() node {
	return node{id: newNodeID(), file: b.file, line: b.line, pos: b.pos}
}

// Class creates a class declaration
func (b *Builder) Class(name string, parameters []string, fields ...*Field) *ClassDecl {
	return &ClassDecl{node: b.newNode(), name: name, parameters: parameters, fields: fields}
}

// Field binds a field name to its defining expression
func (b *Builder) Field(name string, expr Expr) *Field {
	return &Field{name: name, expr: expr}
}

// Param creates a formal parameter reference
func (b *Builder) Param(index int, name string) *Param {
	return &Param{node: b.newNode(), index: index, name: name}
}

// Constant creates a constant expression
func (b *Builder) Constant(value om.Attr) *Constant {
	return &Constant{node: b.newNode(), value: value}
}

// Object creates an object instantiation expression
func (b *Builder) Object(class string, args ...Expr) *NewObject {
	return &NewObject{node: b.newNode(), class: class, args: args}
}

// Access creates a field access expression
func (b *Builder) Access(target Expr, field string) *FieldAccess {
	return &FieldAccess{node: b.newNode(), target: target, field: field}
}

// List creates a list creation expression
func (b *Builder) List(elements ...Expr) *ListCreate {
	return &ListCreate{node: b.newNode(), elements: elements}
}

// Tuple creates a tuple creation expression
func (b *Builder) Tuple(elements ...Expr) *TupleCreate {
	return &TupleCreate{node: b.newNode(), elements: elements}
}

// TupleGet creates a tuple element access expression
func (b *Builder) TupleGet(tuple Expr, index int) *TupleGet {
	return &TupleGet{node: b.newNode(), tuple: tuple, index: index}
}

// Entry creates a map entry
func (b *Builder) Entry(key, value Expr) *MapEntry {
	return &MapEntry{key: key, value: value}
}

// Map creates a map creation expression
func (b *Builder) Map(entries ...*MapEntry) *MapCreate {
	return &MapCreate{node: b.newNode(), entries: entries}
}
