// Package ir holds the intermediate representation consumed by the
// evaluator: class declarations with ordered formal parameters and
// field-defining expressions. The IR is assumed to be already verified;
// the evaluator reads it, never mutates it.
package ir

import (
	"github.com/lyraproj/om-evaluator/om"
)

// NodeID is a stable identifier assigned to every node when the IR is built.
// It is one half of the evaluator's memoization key.
type NodeID int

// Node is implemented by everything a diagnostic can point at. The location
// methods satisfy issue.Location.
type Node interface {
	ID() NodeID

	File() string

	Line() int

	Pos() int
}

// Expr is an expression in a class body. The expression grammar is closed;
// the evaluator matches it exhaustively.
type Expr interface {
	Node

	exprNode()
}

// Loader resolves class names to their declarations. It is supplied by the
// embedder; the loader package provides in-memory implementations.
type Loader interface {
	// LoadClass returns the declaration of the named class and true, or nil
	// and false when the name is not known
	LoadClass(name string) (*ClassDecl, bool)
}

type node struct {
	id   NodeID
	file string
	line int
	pos  int
}

func (n *node) ID() NodeID {
	return n.id
}

func (n *node) File() string {
	return n.file
}

func (n *node) Line() int {
	return n.line
}

func (n *node) Pos() int {
	return n.pos
}

// ClassDecl declares a class: a name, ordered formal parameters, and ordered
// field definitions.
type ClassDecl struct {
	node
	name       string
	parameters []string
	fields     []*Field
}

func (c *ClassDecl) Name() string {
	return c.name
}

// Parameters returns the formal parameter names in declaration order
func (c *ClassDecl) Parameters() []string {
	return c.parameters
}

// Fields returns the field definitions in declaration order
func (c *ClassDecl) Fields() []*Field {
	return c.fields
}

// Field binds a field name to its defining expression
type Field struct {
	name string
	expr Expr
}

func (f *Field) Name() string {
	return f.name
}

func (f *Field) Expr() Expr {
	return f.expr
}

// Param references a formal parameter of the enclosing class by position
type Param struct {
	node
	index int
	name  string
}

func (e *Param) Index() int {
	return e.index
}

func (e *Param) Name() string {
	return e.name
}

// Constant wraps an attribute known before evaluation starts
type Constant struct {
	node
	value om.Attr
}

func (e *Constant) Value() om.Attr {
	return e.value
}

// NewObject instantiates the named class with the given argument expressions
type NewObject struct {
	node
	class string
	args  []Expr
}

func (e *NewObject) Class() string {
	return e.class
}

func (e *NewObject) Args() []Expr {
	return e.args
}

// FieldAccess reads the named field of the object the target expression
// evaluates to
type FieldAccess struct {
	node
	target Expr
	field  string
}

func (e *FieldAccess) Target() Expr {
	return e.target
}

func (e *FieldAccess) Field() string {
	return e.field
}

// ListCreate builds a list from the element expressions
type ListCreate struct {
	node
	elements []Expr
}

func (e *ListCreate) Elements() []Expr {
	return e.elements
}

// TupleCreate builds a tuple from the element expressions
type TupleCreate struct {
	node
	elements []Expr
}

func (e *TupleCreate) Elements() []Expr {
	return e.elements
}

// TupleGet reads the element at a fixed position of the tuple the target
// expression evaluates to
type TupleGet struct {
	node
	tuple Expr
	index int
}

func (e *TupleGet) Tuple() Expr {
	return e.tuple
}

func (e *TupleGet) Index() int {
	return e.index
}

// MapEntry is one key/value pair of a MapCreate. The key expression must be
// a Constant; the evaluator rejects anything else.
type MapEntry struct {
	key   Expr
	value Expr
}

func (e *MapEntry) Key() Expr {
	return e.key
}

func (e *MapEntry) Value() Expr {
	return e.value
}

// MapCreate builds a map from the entries
type MapCreate struct {
	node
	entries []*MapEntry
}

func (e *MapCreate) Entries() []*MapEntry {
	return e.entries
}

func (e *Param) exprNode()       {}
func (e *Constant) exprNode()    {}
func (e *NewObject) exprNode()   {}
func (e *FieldAccess) exprNode() {}
func (e *ListCreate) exprNode()  {}
func (e *TupleCreate) exprNode() {}
func (e *TupleGet) exprNode()    {}
func (e *MapCreate) exprNode()   {}
