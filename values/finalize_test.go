package values

import (
	"testing"

	"github.com/lyraproj/om-evaluator/ir"
	"github.com/lyraproj/om-evaluator/om"
)

func decl(fieldNames ...string) *ir.ClassDecl {
	b := ir.NewBuilder(`test.om`)
	fields := make([]*ir.Field, len(fieldNames))
	for i, n := range fieldNames {
		fields[i] = b.Field(n, b.Constant(om.WrapInt(0)))
	}
	return b.Class(`T`, nil, fields...)
}

func TestStripValueChain(t *testing.T) {
	a := NewArena()
	h1 := a.NewCell()
	h2 := a.NewCell()
	a.Ground(h1, a.NewReference(h2))
	a.Ground(h2, WrapAttr(om.WrapInt(42)))

	v, err := a.StripValue(a.NewReference(h1))
	if err != nil {
		t.Fatal(err)
	}
	av, ok := v.(*AttributeValue)
	if !ok {
		t.Fatalf(`expected an Attribute, got %s`, v.Kind())
	}
	if !av.Attr().Equals(om.WrapInt(42)) {
		t.Errorf(`expected 42, got %s`, av.Attr())
	}
}

func TestStripValueCycle(t *testing.T) {
	a := NewArena()
	h1 := a.NewCell()
	h2 := a.NewCell()
	a.Ground(h1, a.NewReference(h2))
	a.Ground(h2, a.NewReference(h1))

	_, err := a.StripValue(a.NewReference(h1))
	if err == nil {
		t.Fatal(`reference cycle did not fail`)
	}
	if om.ErrorCode(err) != om.CyclicReference {
		t.Errorf(`expected %s, got '%s'`, om.CyclicReference, err)
	}
}

func TestStripValueUngrounded(t *testing.T) {
	a := NewArena()
	h := a.NewCell()
	_, err := a.StripValue(a.NewReference(h))
	if err == nil {
		t.Fatal(`reference into an empty cell did not fail`)
	}
	if om.ErrorCode(err) != om.CyclicReference {
		t.Errorf(`expected %s, got '%s'`, om.CyclicReference, err)
	}
}

func TestFinalizeList(t *testing.T) {
	a := NewArena()
	h := a.NewCell()
	a.Ground(h, WrapAttr(om.WrapInt(1)))

	l := NewList(2)
	l.SetElement(0, a.NewReference(h))
	l.SetElement(1, WrapAttr(om.WrapInt(2)))
	l.MarkFullyEvaluated()

	if err := Finalize(a, l); err != nil {
		t.Fatal(err)
	}
	if l.At(0).Kind() != om.AttributeKind {
		t.Errorf(`element slot still holds %s`, l.At(0).Kind())
	}
}

func TestFinalizeObjectFreezesFields(t *testing.T) {
	a := NewArena()
	h := a.NewCell()
	a.Ground(h, WrapAttr(om.WrapInt(1)))

	o := NewObject(decl(`f`))
	o.SetField(`f`, a.NewReference(h))
	o.MarkFullyEvaluated()

	if err := Finalize(a, o); err != nil {
		t.Fatal(err)
	}
	fv, _ := o.GetField(`f`)
	if fv.Kind() != om.AttributeKind {
		t.Errorf(`field slot still holds %s`, fv.Kind())
	}
	defer func() {
		if recover() == nil {
			t.Error(`assignment to a finalized object did not panic`)
		}
	}()
	o.SetField(`f`, WrapAttr(om.WrapInt(2)))
}

func TestFinalizeIdempotent(t *testing.T) {
	a := NewArena()
	h := a.NewCell()
	a.Ground(h, WrapAttr(om.WrapInt(1)))

	o := NewObject(decl(`f`))
	o.SetField(`f`, a.NewReference(h))
	o.MarkFullyEvaluated()

	if err := Finalize(a, o); err != nil {
		t.Fatal(err)
	}
	// a second pass must not touch the frozen field set
	if err := Finalize(a, o); err != nil {
		t.Fatal(err)
	}
}

func TestFinalizeSelfReferentialObject(t *testing.T) {
	a := NewArena()
	o := NewObject(decl(`me`))
	h := a.NewCell()
	a.Ground(h, o)
	o.SetField(`me`, a.NewReference(h))
	o.MarkFullyEvaluated()

	if err := Finalize(a, o); err != nil {
		t.Fatal(err)
	}
	me, _ := o.GetField(`me`)
	if me != om.Value(o) {
		t.Error(`self referential field is not identical to its object`)
	}
}

func TestPartialLifecycle(t *testing.T) {
	l := NewList(1)
	if l.FullyEvaluated() {
		t.Error(`fresh list claims to be fully evaluated`)
	}
	l.SetElement(0, WrapAttr(om.WrapInt(1)))
	l.MarkFullyEvaluated()
	if !l.FullyEvaluated() {
		t.Error(`marked list does not claim to be fully evaluated`)
	}
}

func TestReferenceObservesCell(t *testing.T) {
	a := NewArena()
	h := a.NewCell()
	r := a.NewReference(h)
	if r.FullyEvaluated() {
		t.Error(`reference to an empty cell claims to be fully evaluated`)
	}
	if r.Value() != nil {
		t.Error(`reference to an empty cell yields a value`)
	}
	a.Ground(h, WrapAttr(om.WrapInt(1)))
	if !r.FullyEvaluated() {
		t.Error(`reference to a grounded cell does not claim to be fully evaluated`)
	}
	if r.Value() == nil {
		t.Error(`reference to a grounded cell yields nil`)
	}
}

func TestIdentify(t *testing.T) {
	a := NewArena()
	l := WrapList(WrapAll([]om.Attr{om.WrapInt(1)}))
	h1 := a.Identify(l)
	h2 := a.Identify(l)
	if h1 != h2 {
		t.Error(`identity handle is not stable`)
	}
	if a.Identify(WrapList(nil)) == h1 {
		t.Error(`distinct values share an identity handle`)
	}
	if a.Load(h1) != om.Value(l) {
		t.Error(`identity cell is not grounded with its value`)
	}
}

func TestWrapSequences(t *testing.T) {
	l := WrapList(WrapAll([]om.Attr{om.WrapInt(1)}))
	if !l.FullyEvaluated() || l.Kind() != om.ListKind || l.Len() != 1 {
		t.Errorf(`unexpected wrapped list %s`, l)
	}
	tu := WrapTuple(WrapAll([]om.Attr{om.WrapInt(1), om.WrapInt(2)}))
	if !tu.FullyEvaluated() || tu.Kind() != om.TupleKind || tu.Len() != 2 {
		t.Errorf(`unexpected wrapped tuple %s`, tu)
	}
	if !tu.At(1).(*AttributeValue).Attr().Equals(om.WrapInt(2)) {
		t.Errorf(`expected 2, got %s`, tu.At(1))
	}
}

func TestWrapAll(t *testing.T) {
	vs := WrapAll([]om.Attr{om.WrapInt(1), om.WrapString(`a`)})
	if len(vs) != 2 {
		t.Fatalf(`expected 2 values, got %d`, len(vs))
	}
	for _, v := range vs {
		if v.Kind() != om.AttributeKind {
			t.Errorf(`expected an Attribute, got %s`, v.Kind())
		}
		if !v.FullyEvaluated() {
			t.Error(`wrapped attr is not fully evaluated`)
		}
	}
}
