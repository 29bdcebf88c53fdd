package om

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/lyraproj/semver/semver"
)

type (
	// Attr is a constant known before evaluation starts. Attrs appear as
	// constant expressions in class bodies, as map keys, and as the payload
	// of Attribute values. The set of implementations is closed.
	Attr interface {
		// Equals returns true when the other attr has the same type and
		// content as this attr
		Equals(other Attr) bool

		// HashKey returns a string that is equal for attrs that are Equals
		// and distinct between attrs of different types
		HashKey() string

		String() string
	}

	// IntAttr is an integer constant of arbitrary precision
	IntAttr struct {
		value *apd.Decimal
	}

	// FloatAttr is a decimal floating point constant
	FloatAttr struct {
		value *apd.Decimal
	}

	// BoolAttr is a boolean constant
	BoolAttr struct {
		value bool
	}

	// StringAttr is a string constant
	StringAttr struct {
		value string
	}

	// VersionAttr is a semantic version constant
	VersionAttr struct {
		version semver.Version
	}
)

// WrapInt returns an IntAttr for the given int64
func WrapInt(value int64) *IntAttr {
	return &IntAttr{apd.New(value, 0)}
}

// WrapDecimal returns an IntAttr backed by the given decimal. The decimal is
// not copied and must not be mutated after the call.
func WrapDecimal(value *apd.Decimal) *IntAttr {
	return &IntAttr{value}
}

func (a *IntAttr) Decimal() *apd.Decimal {
	return a.value
}

// Int64 returns the value as an int64 and true, or zero and false when the
// value does not fit
func (a *IntAttr) Int64() (int64, bool) {
	i, err := a.value.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

func (a *IntAttr) Equals(other Attr) bool {
	if o, ok := other.(*IntAttr); ok {
		return a.value.Cmp(o.value) == 0
	}
	return false
}

func (a *IntAttr) HashKey() string {
	return `i:` + a.value.String()
}

func (a *IntAttr) String() string {
	return a.value.String()
}

// WrapFloat returns a FloatAttr for the given float64
func WrapFloat(value float64) *FloatAttr {
	d, _, err := apd.NewFromString(strconv.FormatFloat(value, 'g', -1, 64))
	if err != nil {
		// FormatFloat never produces a string that apd rejects
		panic(err)
	}
	return &FloatAttr{d}
}

func (a *FloatAttr) Decimal() *apd.Decimal {
	return a.value
}

func (a *FloatAttr) Equals(other Attr) bool {
	if o, ok := other.(*FloatAttr); ok {
		return a.value.Cmp(o.value) == 0
	}
	return false
}

func (a *FloatAttr) HashKey() string {
	return `f:` + a.value.String()
}

func (a *FloatAttr) String() string {
	return a.value.String()
}

// WrapBool returns a BoolAttr for the given bool
func WrapBool(value bool) *BoolAttr {
	return &BoolAttr{value}
}

func (a *BoolAttr) Bool() bool {
	return a.value
}

func (a *BoolAttr) Equals(other Attr) bool {
	if o, ok := other.(*BoolAttr); ok {
		return a.value == o.value
	}
	return false
}

func (a *BoolAttr) HashKey() string {
	return `b:` + strconv.FormatBool(a.value)
}

func (a *BoolAttr) String() string {
	return strconv.FormatBool(a.value)
}

// WrapString returns a StringAttr for the given string
func WrapString(value string) *StringAttr {
	return &StringAttr{value}
}

func (a *StringAttr) Equals(other Attr) bool {
	if o, ok := other.(*StringAttr); ok {
		return a.value == o.value
	}
	return false
}

func (a *StringAttr) HashKey() string {
	return `s:` + a.value
}

func (a *StringAttr) String() string {
	return a.value
}

// WrapVersion returns a VersionAttr for the given version
func WrapVersion(version semver.Version) *VersionAttr {
	return &VersionAttr{version}
}

func (a *VersionAttr) Version() semver.Version {
	return a.version
}

func (a *VersionAttr) Equals(other Attr) bool {
	if o, ok := other.(*VersionAttr); ok {
		return a.version.Equals(o.version)
	}
	return false
}

func (a *VersionAttr) HashKey() string {
	return `v:` + a.version.String()
}

func (a *VersionAttr) String() string {
	return a.version.String()
}
