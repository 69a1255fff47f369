package dataset

import "maps"

// Record is one generated row: a mapping from field name to value.
// Keys keep the order in which they were first set.
// A value is a string, a number, or nil for a field that could not be resolved.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty Record with room for size keys.
func NewRecord(size int) Record {
	return Record{
		keys:   make([]string, 0, size),
		values: make(map[string]any, size),
	}
}

// Set stores val under key. Setting an existing key
// overwrites the value but keeps the key's position.
func (r *Record) Set(key string, val any) {
	if r.values == nil {
		*r = NewRecord(0)
	}

	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}

	r.values[key] = val
}

// Get returns the value of key and if the Record has such a key.
// A key with a nil value is present.
func (r Record) Get(key string) (any, bool) {
	val, ok := r.values[key]

	return val, ok
}

// Keys returns the keys in insertion order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)

	return keys
}

// Len returns the number of unique keys.
func (r Record) Len() int {
	return len(r.keys)
}

// Map returns a copy of the Record as a plain map.
func (r Record) Map() map[string]any {
	return maps.Clone(r.values)
}

// Dataset is the ordered list of generated Records.
type Dataset []Record
