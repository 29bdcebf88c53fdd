package values

import (
	"strconv"

	"github.com/lyraproj/om-evaluator/hash"
	"github.com/lyraproj/om-evaluator/om"
)

// MapValue maps constant attribute keys to values. Keys must be known at
// construction time; only the values participate in the partial evaluation
// lifecycle. Enumeration order is insertion order.
type MapValue struct {
	valueBase
	keys    []om.Attr
	entries *hash.StringHash
}

// NewMap returns a partially evaluated map with the given capacity
func NewMap(capacity int) *MapValue {
	return &MapValue{keys: make([]om.Attr, 0, capacity), entries: hash.NewStringHash(capacity)}
}

func (v *MapValue) Kind() om.Kind {
	return om.MapKind
}

// SetEntry assigns the value for a key, replacing any previous assignment
func (v *MapValue) SetEntry(key om.Attr, value om.Value) {
	hk := key.HashKey()
	if !v.entries.Includes(hk) {
		v.keys = append(v.keys, key)
	}
	v.entries.Put(hk, value)
}

func (v *MapValue) Len() int {
	return len(v.keys)
}

func (v *MapValue) Keys() []om.Attr {
	return v.keys
}

func (v *MapValue) Get(key om.Attr) (om.Value, bool) {
	return v.entries.Get(key.HashKey())
}

func (v *MapValue) String() string {
	return `Map(` + strconv.Itoa(len(v.keys)) + ` entries)`
}
