package om

import (
	"errors"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/semver/semver"
)

func TestAttrEquality(t *testing.T) {
	if !WrapInt(42).Equals(WrapInt(42)) {
		t.Error(`equal ints are not Equals`)
	}
	if WrapInt(42).Equals(WrapInt(43)) {
		t.Error(`distinct ints are Equals`)
	}
	if WrapInt(1).Equals(WrapFloat(1)) {
		t.Error(`int equals float of same magnitude`)
	}
	if !WrapString(`a`).Equals(WrapString(`a`)) {
		t.Error(`equal strings are not Equals`)
	}
	if WrapString(`true`).Equals(WrapBool(true)) {
		t.Error(`string equals bool`)
	}
	if !WrapBool(false).Equals(WrapBool(false)) {
		t.Error(`equal bools are not Equals`)
	}
}

func TestAttrHashKey(t *testing.T) {
	if WrapInt(1).HashKey() == WrapFloat(1).HashKey() {
		t.Error(`int and float of same magnitude share a hash key`)
	}
	if WrapString(`true`).HashKey() == WrapBool(true).HashKey() {
		t.Error(`string 'true' and bool true share a hash key`)
	}
	if WrapInt(42).HashKey() != WrapInt(42).HashKey() {
		t.Error(`equal ints have distinct hash keys`)
	}
}

func TestVersionAttr(t *testing.T) {
	v1, err := semver.ParseVersion(`1.2.3`)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := semver.ParseVersion(`1.2.3`)
	if err != nil {
		t.Fatal(err)
	}
	a := WrapVersion(v1)
	b := WrapVersion(v2)
	if !a.Equals(b) {
		t.Error(`equal versions are not Equals`)
	}
	if a.HashKey() != b.HashKey() {
		t.Error(`equal versions have distinct hash keys`)
	}
	if a.String() != `1.2.3` {
		t.Errorf(`unexpected version string '%s'`, a.String())
	}
}

func TestInt64(t *testing.T) {
	i, ok := WrapInt(42).Int64()
	if !ok || i != 42 {
		t.Errorf(`expected 42, got %d (%v)`, i, ok)
	}
}

func TestErrorCode(t *testing.T) {
	r := issue.NewReported(UnknownClass, issue.SeverityError, issue.H{`name`: `Nope`}, nil)
	if ErrorCode(r) != UnknownClass {
		t.Errorf(`unexpected code '%s'`, ErrorCode(r))
	}
	if ErrorCode(errors.New(`plain`)) != `` {
		t.Error(`plain error yielded an issue code`)
	}
}

func TestKindString(t *testing.T) {
	names := map[Kind]string{
		AttributeKind: `Attribute`,
		ObjectKind:    `Object`,
		ListKind:      `List`,
		TupleKind:     `Tuple`,
		MapKind:       `Map`,
		ReferenceKind: `Reference`,
	}
	for k, n := range names {
		if k.String() != n {
			t.Errorf(`expected '%s', got '%s'`, n, k.String())
		}
	}
}
