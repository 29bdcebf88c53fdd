package evaluator_test

import (
	"testing"

	"github.com/lyraproj/om-evaluator/evaluator"
	"github.com/lyraproj/om-evaluator/om"
	"github.com/lyraproj/om-evaluator/values"
)

func TestInstantiateAll(t *testing.T) {
	l := testLoader(t)
	requests := make([]evaluator.Request, 20)
	for i := range requests {
		requests[i] = evaluator.Request{
			Class:  `Foo`,
			Params: values.WrapAll([]om.Attr{om.WrapInt(int64(i))}),
		}
	}
	results, err := evaluator.InstantiateAll(l, requests)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(requests) {
		t.Fatalf(`expected %d results, got %d`, len(requests), len(results))
	}
	for i, r := range results {
		if v := int64Of(t, field(t, r, `x`)); v != int64(i) {
			t.Errorf(`result %d holds %d`, i, v)
		}
	}
}

func TestInstantiateAllFailure(t *testing.T) {
	l := testLoader(t)
	requests := []evaluator.Request{
		{Class: `Foo`, Params: values.WrapAll([]om.Attr{om.WrapInt(1)})},
		{Class: `Nope`},
	}
	results, err := evaluator.InstantiateAll(l, requests)
	if err == nil {
		t.Fatal(`request for an unknown class did not fail the call`)
	}
	if om.ErrorCode(err) != om.UnknownClass {
		t.Errorf(`expected %s, got '%s'`, om.UnknownClass, err)
	}
	if results != nil {
		t.Error(`failed call returned partial results`)
	}
}
