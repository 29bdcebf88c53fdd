// Package yaml2ir builds class declarations from YAML documents. It is the
// convenient way for tests, examples and embedders to construct the input IR
// without writing builder calls by hand.
//
// The expected document shape:
//
//	classes:
//	  Outer:
//	    parameters: [v]
//	    fields:
//	      o: {object: Inner, args: [$v]}
//	  Inner:
//	    parameters: [v]
//	    fields:
//	      r: $v
//
// Scalars are constants, strings starting with $ reference a formal
// parameter, and mappings select an expression form by key: param, const,
// version, object/args, field/of, get/of, list, tuple, or map.
package yaml2ir

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/semver/semver"
	"gopkg.in/yaml.v2"

	"github.com/lyraproj/om-evaluator/ir"
	"github.com/lyraproj/om-evaluator/loader"
	"github.com/lyraproj/om-evaluator/om"
)

type document struct {
	Classes map[string]*classDoc `yaml:"classes"`
}

type classDoc struct {
	Parameters []string      `yaml:"parameters"`
	Fields     yaml.MapSlice `yaml:"fields"`
}

type transformer struct {
	b      *ir.Builder
	class  string
	params map[string]int
	p      []string
}

// Classes parses the given YAML content and builds the class declarations it
// defines. The filename appears in diagnostics only.
func Classes(filename string, content []byte) (classes []*ir.ClassDecl, err error) {
	defer func() {
		if r := recover(); r != nil {
			if reported, ok := r.(issue.Reported); ok {
				classes = nil
				err = reported
				return
			}
			panic(r)
		}
	}()

	doc := &document{}
	if ye := yaml.Unmarshal(content, doc); ye != nil {
		panic(issue.NewReported(ParseError, issue.SeverityError, issue.H{`detail`: ye.Error()}, nil))
	}
	t := &transformer{b: ir.NewBuilder(filename), p: make([]string, 0, 8)}
	names := make([]string, 0, len(doc.Classes))
	for name := range doc.Classes {
		names = append(names, name)
	}
	sort.Strings(names)
	classes = make([]*ir.ClassDecl, 0, len(names))
	for _, name := range names {
		classes = append(classes, t.transformClass(name, doc.Classes[name]))
	}
	return classes, nil
}

// Loader parses the given YAML content and returns a loader serving the
// classes it defines
func Loader(filename string, content []byte) (ir.Loader, error) {
	classes, err := Classes(filename, content)
	if err != nil {
		return nil, err
	}
	l := loader.New()
	l.SetClasses(classes)
	return l, nil
}

func (t *transformer) transformClass(name string, cd *classDoc) *ir.ClassDecl {
	t.pushPath(name)
	t.class = name
	t.params = make(map[string]int, len(cd.Parameters))
	for i, p := range cd.Parameters {
		t.params[p] = i
	}
	fields := make([]*ir.Field, 0, len(cd.Fields))
	for _, mi := range cd.Fields {
		fn := t.expectString(mi.Key)
		t.pushPath(fn)
		fields = append(fields, t.b.Field(fn, t.transformExpr(mi.Value)))
		t.popPath()
	}
	t.popPath()
	return t.b.Class(name, cd.Parameters, fields...)
}

func (t *transformer) transformExpr(v interface{}) ir.Expr {
	switch v := v.(type) {
	case string:
		if strings.HasPrefix(v, `$`) {
			return t.paramRef(v[1:])
		}
		return t.b.Constant(om.WrapString(v))
	case int:
		return t.b.Constant(om.WrapInt(int64(v)))
	case int64:
		return t.b.Constant(om.WrapInt(v))
	case float64:
		return t.b.Constant(om.WrapFloat(v))
	case bool:
		return t.b.Constant(om.WrapBool(v))
	case map[interface{}]interface{}:
		return t.transformCompound(v)
	case yaml.MapSlice:
		m := make(map[interface{}]interface{}, len(v))
		for _, mi := range v {
			m[mi.Key] = mi.Value
		}
		return t.transformCompound(m)
	}
	panic(t.illegalType(`scalar or mapping`, v))
}

func (t *transformer) transformCompound(m map[interface{}]interface{}) ir.Expr {
	if pv, ok := m[`param`]; ok {
		return t.paramRef(t.expectString(pv))
	}
	if cv, ok := m[`const`]; ok {
		return t.b.Constant(t.constAttr(cv))
	}
	if vv, ok := m[`version`]; ok {
		s := t.expectString(vv)
		ver, err := semver.ParseVersion(s)
		if err != nil {
			panic(issue.NewReported(BadVersion, issue.SeverityError, issue.H{`version`: s, `path`: t.path()}, nil))
		}
		return t.b.Constant(om.WrapVersion(ver))
	}
	if ov, ok := m[`object`]; ok {
		var args []ir.Expr
		if av, ok := m[`args`]; ok {
			args = t.transformAll(t.expectSlice(av))
		}
		return t.b.Object(t.expectString(ov), args...)
	}
	if fv, ok := m[`field`]; ok {
		return t.b.Access(t.transformOf(m), t.expectString(fv))
	}
	if gv, ok := m[`get`]; ok {
		return t.b.TupleGet(t.transformOf(m), t.expectInt(gv))
	}
	if lv, ok := m[`list`]; ok {
		return t.b.List(t.transformAll(t.expectSlice(lv))...)
	}
	if tv, ok := m[`tuple`]; ok {
		return t.b.Tuple(t.transformAll(t.expectSlice(tv))...)
	}
	if mv, ok := m[`map`]; ok {
		return t.transformMap(t.expectSlice(mv))
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, fmt.Sprintf(`%v`, k))
	}
	sort.Strings(keys)
	panic(issue.NewReported(UnrecognizedExpression, issue.SeverityError,
		issue.H{`keys`: strings.Join(keys, `, `), `path`: t.path()}, nil))
}

// transformMap builds a map creation expression from a sequence of single
// entry mappings. A sequence is used instead of one mapping so that the
// entry order survives unmarshaling.
func (t *transformer) transformMap(items []interface{}) ir.Expr {
	entries := make([]*ir.MapEntry, 0, len(items))
	for _, item := range items {
		var k, v interface{}
		switch em := item.(type) {
		case yaml.MapSlice:
			if len(em) != 1 {
				panic(t.illegalType(`single entry mapping`, item))
			}
			k = em[0].Key
			v = em[0].Value
		case map[interface{}]interface{}:
			if len(em) != 1 {
				panic(t.illegalType(`single entry mapping`, item))
			}
			for ek, ev := range em {
				k = ek
				v = ev
			}
		default:
			panic(t.illegalType(`single entry mapping`, item))
		}
		entries = append(entries, t.b.Entry(t.b.Constant(t.constAttr(k)), t.transformExpr(v)))
	}
	return t.b.Map(entries...)
}

func (t *transformer) transformOf(m map[interface{}]interface{}) ir.Expr {
	ov, ok := m[`of`]
	if !ok {
		panic(t.illegalType(`mapping with an 'of' key`, m))
	}
	return t.transformExpr(ov)
}

func (t *transformer) transformAll(items []interface{}) []ir.Expr {
	exprs := make([]ir.Expr, len(items))
	for i, item := range items {
		exprs[i] = t.transformExpr(item)
	}
	return exprs
}

func (t *transformer) constAttr(v interface{}) om.Attr {
	switch v := v.(type) {
	case string:
		return om.WrapString(v)
	case int:
		return om.WrapInt(int64(v))
	case int64:
		return om.WrapInt(v)
	case float64:
		return om.WrapFloat(v)
	case bool:
		return om.WrapBool(v)
	}
	panic(t.illegalType(`scalar`, v))
}

func (t *transformer) paramRef(name string) ir.Expr {
	if i, ok := t.params[name]; ok {
		return t.b.Param(i, name)
	}
	panic(issue.NewReported(UnknownParameter, issue.SeverityError,
		issue.H{`name`: name, `class`: t.class, `path`: t.path()}, nil))
}

func (t *transformer) expectString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	panic(t.illegalType(`string`, v))
}

func (t *transformer) expectInt(v interface{}) int {
	switch v := v.(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	panic(t.illegalType(`integer`, v))
}

func (t *transformer) expectSlice(v interface{}) []interface{} {
	if s, ok := v.([]interface{}); ok {
		return s
	}
	panic(t.illegalType(`sequence`, v))
}

func (t *transformer) illegalType(expected string, actual interface{}) issue.Reported {
	return issue.NewReported(IllegalType, issue.SeverityError,
		issue.H{`expected`: expected, `actual`: fmt.Sprintf(`%T`, actual), `path`: t.path()}, nil)
}

func (t *transformer) pushPath(s string) {
	t.p = append(t.p, s)
}

func (t *transformer) popPath() {
	t.p = t.p[:len(t.p)-1]
}

func (t *transformer) path() []string {
	p := make([]string, len(t.p))
	copy(p, t.p)
	return p
}
