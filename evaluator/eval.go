package evaluator

import (
	"fmt"

	"github.com/lyraproj/issue/issue"

	"github.com/lyraproj/om-evaluator/ir"
	"github.com/lyraproj/om-evaluator/om"
	"github.com/lyraproj/om-evaluator/values"
)

// dispatch evaluates one expression of the grammar against the actual
// parameters of the current instantiation
func (e *evaluator) dispatch(expr ir.Expr, f *frame) om.Value {
	switch x := expr.(type) {
	case *ir.Param:
		return f.values[x.Index()]
	case *ir.Constant:
		return values.WrapAttr(x.Value())
	case *ir.NewObject:
		return e.evalNewObject(x, f)
	case *ir.FieldAccess:
		return e.evalFieldAccess(x, f)
	case *ir.ListCreate:
		return e.evalListCreate(x, f)
	case *ir.TupleCreate:
		return e.evalTupleCreate(x, f)
	case *ir.TupleGet:
		return e.evalTupleGet(x, f)
	case *ir.MapCreate:
		return e.evalMapCreate(x, f)
	}
	panic(evalError(om.UnhandledExpression, expr, issue.H{`expression`: fmt.Sprintf(`%T`, expr)}))
}

func (e *evaluator) evalNewObject(x *ir.NewObject, f *frame) om.Value {
	args := make([]om.Value, len(x.Args()))
	for i, a := range x.Args() {
		args[i] = e.evaluateValue(a, f)
	}
	return e.allocateObjectInstance(x.Class(), e.internFrame(args), x)
}

func (e *evaluator) evalFieldAccess(x *ir.FieldAccess, f *frame) om.Value {
	target := e.groundValue(e.evaluateValue(x.Target(), f))
	if r, ok := target.(*values.ReferenceValue); ok {
		// target cannot be grounded yet; chain to its cell and let the
		// finalize pass judge the cycle
		return e.arena.NewReference(r.Target())
	}
	obj, ok := target.(*values.ObjectValue)
	if !ok {
		panic(evalError(om.TypeMismatch, x, issue.H{`expected`: `Object`, `actual`: target.Kind().String()}))
	}
	v, ok := obj.GetField(x.Field())
	if !ok {
		panic(evalError(om.UnknownField, x, issue.H{`class`: obj.ClassName(), `field`: x.Field()}))
	}
	return v
}

func (e *evaluator) evalListCreate(x *ir.ListCreate, f *frame) om.Value {
	l := values.NewList(len(x.Elements()))
	for i, el := range x.Elements() {
		l.SetElement(i, e.evaluateValue(el, f))
	}
	l.MarkFullyEvaluated()
	return l
}

func (e *evaluator) evalTupleCreate(x *ir.TupleCreate, f *frame) om.Value {
	t := values.NewTuple(len(x.Elements()))
	for i, el := range x.Elements() {
		t.SetElement(i, e.evaluateValue(el, f))
	}
	t.MarkFullyEvaluated()
	return t
}

func (e *evaluator) evalTupleGet(x *ir.TupleGet, f *frame) om.Value {
	target := e.groundValue(e.evaluateValue(x.Tuple(), f))
	if r, ok := target.(*values.ReferenceValue); ok {
		return e.arena.NewReference(r.Target())
	}
	tup, ok := target.(*values.TupleValue)
	if !ok {
		panic(evalError(om.TypeMismatch, x, issue.H{`expected`: `Tuple`, `actual`: target.Kind().String()}))
	}
	if x.Index() < 0 || x.Index() >= tup.Len() {
		panic(evalError(om.IndexOutOfBounds, x, issue.H{`index`: x.Index(), `size`: tup.Len()}))
	}
	return tup.At(x.Index())
}

func (e *evaluator) evalMapCreate(x *ir.MapCreate, f *frame) om.Value {
	m := values.NewMap(len(x.Entries()))
	for _, en := range x.Entries() {
		kc, ok := en.Key().(*ir.Constant)
		if !ok {
			panic(evalError(om.MapKeyNotConstant, en.Key(), issue.H{`expression`: fmt.Sprintf(`%T`, en.Key())}))
		}
		m.SetEntry(kc.Value(), e.evaluateValue(en.Value(), f))
	}
	m.MarkFullyEvaluated()
	return m
}

func evalError(code issue.Code, location issue.Location, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SeverityError, args, location)
}
