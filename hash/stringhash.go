package hash

import (
	"fmt"

	"github.com/lyraproj/om-evaluator/om"
)

// Mutable and order preserving hash with string keys and evaluator values.
// Used by the Object value to store its fields and by the Map value to store
// its entries keyed by attribute hash key.

type (
	stringEntry struct {
		key   string
		value om.Value
	}

	StringHash struct {
		entries []*stringEntry
		index   map[string]int
		frozen  bool
	}

	frozenError struct {
		key string
	}
)

func (f *frozenError) Error() string {
	return fmt.Sprintf("attempt to add or modify key '%s' in a frozen StringHash", f.key)
}

// NewStringHash returns an empty *StringHash initialized with given capacity
func NewStringHash(capacity int) *StringHash {
	return &StringHash{make([]*stringEntry, 0, capacity), make(map[string]int, capacity), false}
}

// Copy returns a shallow copy of this hash, i.e. each key and value is not cloned
func (h *StringHash) Copy() *StringHash {
	entries := make([]*stringEntry, len(h.entries))
	for i, e := range h.entries {
		entries[i] = &stringEntry{e.key, e.value}
	}
	index := make(map[string]int, len(h.index))
	for k, v := range h.index {
		index[k] = v
	}
	return &StringHash{entries, index, false}
}

// EachKey calls the given consumer function once for each key in this hash
func (h *StringHash) EachKey(consumer func(key string)) {
	for _, e := range h.entries {
		consumer(e.key)
	}
}

// EachValue calls the given consumer function once for each value in this hash
func (h *StringHash) EachValue(consumer func(value om.Value)) {
	for _, e := range h.entries {
		consumer(e.value)
	}
}

// EachPair calls the given consumer function once for each key/value pair in this hash
func (h *StringHash) EachPair(consumer func(key string, value om.Value)) {
	for _, e := range h.entries {
		consumer(e.key, e.value)
	}
}

// AllPair calls the given function once for each key/value pair in this hash. Return
// true if all invocations returned true. False otherwise.
// The method returns true if the hash is empty.
func (h *StringHash) AllPair(f func(key string, value om.Value) bool) bool {
	for _, e := range h.entries {
		if !f(e.key, e.value) {
			return false
		}
	}
	return true
}

// Freeze prevents further changes to the hash
func (h *StringHash) Freeze() {
	h.frozen = true
}

// Get returns a value from the hash or nil together with a boolean to indicate if the key was present or not
func (h *StringHash) Get(key string) (om.Value, bool) {
	if p, ok := h.index[key]; ok {
		return h.entries[p].value, true
	}
	return nil, false
}

// Includes returns true if the hash contains the given key
func (h *StringHash) Includes(key string) bool {
	_, ok := h.index[key]
	return ok
}

// IsEmpty returns true if the hash has no entries
func (h *StringHash) IsEmpty() bool {
	return len(h.entries) == 0
}

// Keys returns the keys of the hash in the order that they were first entered
func (h *StringHash) Keys() []string {
	keys := make([]string, len(h.entries))
	for i, e := range h.entries {
		keys[i] = e.key
	}
	return keys
}

// Put adds a new key/value association to the hash or replace the value of an existing association
func (h *StringHash) Put(key string, value om.Value) (oldValue om.Value) {
	if h.frozen {
		panic(&frozenError{key})
	}
	if p, ok := h.index[key]; ok {
		e := h.entries[p]
		oldValue = e.value
		e.value = value
	} else {
		oldValue = nil
		h.index[key] = len(h.entries)
		h.entries = append(h.entries, &stringEntry{key, value})
	}
	return
}

// Len returns the number of entries in the hash
func (h *StringHash) Len() int {
	return len(h.entries)
}

// Values returns the values of the hash in the order that their respective keys were first entered
func (h *StringHash) Values() []om.Value {
	values := make([]om.Value, len(h.entries))
	for i, e := range h.entries {
		values[i] = e.value
	}
	return values
}
