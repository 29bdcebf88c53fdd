package values

import (
	"github.com/lyraproj/issue/issue"

	"github.com/lyraproj/om-evaluator/om"
)

// Finalize strips all reference indirection from the value graph reachable
// from the given value. Every slot that holds a reference is overwritten
// with the value its chain grounds to; a chain that revisits a cell before
// grounding is an illegal construction and fails with EVAL_CYCLIC_REFERENCE.
// Finalize is idempotent: a value reachable from multiple parents is
// processed exactly once.
func Finalize(a *Arena, value om.Value) error {
	switch v := value.(type) {
	case *ReferenceValue:
		sv, err := a.StripValue(v)
		if err != nil {
			return err
		}
		return Finalize(a, sv)
	case *ObjectValue:
		if v.finalized {
			return nil
		}
		// mark before recursing so a self referential field terminates
		v.finalized = true
		for _, name := range v.fields.Keys() {
			slot, _ := v.fields.Get(name)
			sv, err := a.StripValue(slot)
			if err != nil {
				return err
			}
			v.fields.Put(name, sv)
			if err = Finalize(a, sv); err != nil {
				return err
			}
		}
		v.fields.Freeze()
	case *ListValue:
		if v.finalized {
			return nil
		}
		v.finalized = true
		if err := finalizeElements(a, v.elements); err != nil {
			return err
		}
	case *TupleValue:
		if v.finalized {
			return nil
		}
		v.finalized = true
		if err := finalizeElements(a, v.elements); err != nil {
			return err
		}
	case *MapValue:
		if v.finalized {
			return nil
		}
		v.finalized = true
		for _, hk := range v.entries.Keys() {
			slot, _ := v.entries.Get(hk)
			sv, err := a.StripValue(slot)
			if err != nil {
				return err
			}
			v.entries.Put(hk, sv)
			if err = Finalize(a, sv); err != nil {
				return err
			}
		}
	}
	return nil
}

func finalizeElements(a *Arena, elements []om.Value) error {
	for i, e := range elements {
		sv, err := a.StripValue(e)
		if err != nil {
			return err
		}
		elements[i] = sv
		if err = Finalize(a, sv); err != nil {
			return err
		}
	}
	return nil
}

// StripValue follows a reference chain until a non reference value is
// reached. A chain that revisits a cell, or ends in a cell that never
// grounded, yields a cyclic reference error.
func (a *Arena) StripValue(value om.Value) (om.Value, error) {
	visited := make(map[Handle]bool, 4)
	for {
		r, ok := value.(*ReferenceValue)
		if !ok {
			return value, nil
		}
		if visited[r.target] {
			return nil, cyclicError(value)
		}
		visited[r.target] = true
		next := a.Load(r.target)
		if next == nil {
			return nil, cyclicError(value)
		}
		value = next
	}
}

func cyclicError(value om.Value) issue.Reported {
	return issue.NewReported(om.CyclicReference, issue.SeverityError, issue.H{`value`: value.String()}, nil)
}
