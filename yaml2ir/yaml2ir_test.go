package yaml2ir_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lyraproj/issue/issue"

	"github.com/lyraproj/om-evaluator/evaluator"
	"github.com/lyraproj/om-evaluator/om"
	"github.com/lyraproj/om-evaluator/values"
	"github.com/lyraproj/om-evaluator/yaml2ir"
)

const sampleClasses = `
classes:
  Inner:
    parameters: [v]
    fields:
      r: $v
  Outer:
    parameters: [v]
    fields:
      o: {object: Inner, args: [$v]}
  Holder:
    parameters: [a]
    fields:
      l: {list: [$a, 2]}
      t: {tuple: [$a, hello]}
      first: {get: 0, of: {field: t, of: {object: Holder, args: [$a]}}}
      m:
        map:
          - one: $a
          - two: 2
      ver: {version: 1.2.3}
`

func codeOf(err error) issue.Code {
	if r, ok := err.(issue.Reported); ok {
		return r.Code()
	}
	return ``
}

func TestClasses(t *testing.T) {
	classes, err := yaml2ir.Classes(`sample.yaml`, []byte(sampleClasses))
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name()
	}
	if d := cmp.Diff([]string{`Holder`, `Inner`, `Outer`}, names); d != `` {
		t.Errorf(`unexpected class names (-want +got):%s`, d)
	}
}

func TestLoaderEvaluates(t *testing.T) {
	l, err := yaml2ir.Loader(`sample.yaml`, []byte(sampleClasses))
	if err != nil {
		t.Fatal(err)
	}
	v, err := evaluator.New(l).Instantiate(`Outer`, values.WrapAll([]om.Attr{om.WrapInt(36)}))
	if err != nil {
		t.Fatal(err)
	}
	inner, _ := v.(om.Object).GetField(`o`)
	r, _ := inner.(om.Object).GetField(`r`)
	if !r.(om.Attribute).Attr().Equals(om.WrapInt(36)) {
		t.Errorf(`expected 36, got %s`, r)
	}
}

func TestLoaderEvaluatesCompounds(t *testing.T) {
	l, err := yaml2ir.Loader(`sample.yaml`, []byte(sampleClasses))
	if err != nil {
		t.Fatal(err)
	}
	v, err := evaluator.New(l).Instantiate(`Holder`, values.WrapAll([]om.Attr{om.WrapInt(7)}))
	if err != nil {
		t.Fatal(err)
	}
	obj := v.(om.Object)

	lv, _ := obj.GetField(`l`)
	if lv.Kind() != om.ListKind || lv.(om.Sequence).Len() != 2 {
		t.Errorf(`unexpected list field %s`, lv)
	}

	tv, _ := obj.GetField(`t`)
	if tv.Kind() != om.TupleKind {
		t.Errorf(`unexpected tuple field %s`, tv)
	}

	first, _ := obj.GetField(`first`)
	if !first.(om.Attribute).Attr().Equals(om.WrapInt(7)) {
		t.Errorf(`expected 7, got %s`, first)
	}

	mv, _ := obj.GetField(`m`)
	m := mv.(om.Map)
	keys := make([]string, m.Len())
	for i, k := range m.Keys() {
		keys[i] = k.String()
	}
	if d := cmp.Diff([]string{`one`, `two`}, keys); d != `` {
		t.Errorf(`unexpected map keys (-want +got):%s`, d)
	}

	ver, _ := obj.GetField(`ver`)
	if _, ok := ver.(om.Attribute).Attr().(*om.VersionAttr); !ok {
		t.Errorf(`expected a version, got %s`, ver)
	}
}

func TestParseError(t *testing.T) {
	_, err := yaml2ir.Classes(`bad.yaml`, []byte("classes: [}{"))
	if err == nil {
		t.Fatal(`malformed YAML did not fail`)
	}
	if codeOf(err) != yaml2ir.ParseError {
		t.Errorf(`expected %s, got '%s'`, yaml2ir.ParseError, err)
	}
}

func TestUnknownParameter(t *testing.T) {
	_, err := yaml2ir.Classes(`bad.yaml`, []byte(`
classes:
  Foo:
    fields:
      x: $nope
`))
	if err == nil {
		t.Fatal(`reference to an undeclared parameter did not fail`)
	}
	if codeOf(err) != yaml2ir.UnknownParameter {
		t.Errorf(`expected %s, got '%s'`, yaml2ir.UnknownParameter, err)
	}
}

func TestBadVersion(t *testing.T) {
	_, err := yaml2ir.Classes(`bad.yaml`, []byte(`
classes:
  Foo:
    fields:
      x: {version: not.a.version}
`))
	if err == nil {
		t.Fatal(`malformed version did not fail`)
	}
	if codeOf(err) != yaml2ir.BadVersion {
		t.Errorf(`expected %s, got '%s'`, yaml2ir.BadVersion, err)
	}
}

func TestUnrecognizedExpression(t *testing.T) {
	_, err := yaml2ir.Classes(`bad.yaml`, []byte(`
classes:
  Foo:
    fields:
      x: {bogus: 1}
`))
	if err == nil {
		t.Fatal(`unrecognized expression mapping did not fail`)
	}
	if codeOf(err) != yaml2ir.UnrecognizedExpression {
		t.Errorf(`expected %s, got '%s'`, yaml2ir.UnrecognizedExpression, err)
	}
}

func TestIllegalType(t *testing.T) {
	_, err := yaml2ir.Classes(`bad.yaml`, []byte(`
classes:
  Foo:
    fields:
      x: [1, 2]
`))
	if err == nil {
		t.Fatal(`bare sequence as an expression did not fail`)
	}
	if codeOf(err) != yaml2ir.IllegalType {
		t.Errorf(`expected %s, got '%s'`, yaml2ir.IllegalType, err)
	}
}

func TestErrorNamesPath(t *testing.T) {
	_, err := yaml2ir.Classes(`bad.yaml`, []byte(`
classes:
  Foo:
    fields:
      x: $nope
`))
	if err == nil {
		t.Fatal(`reference to an undeclared parameter did not fail`)
	}
	if want := `Foo/x`; !strings.Contains(err.Error(), want) {
		t.Errorf(`diagnostic '%s' does not name path '%s'`, err, want)
	}
}
