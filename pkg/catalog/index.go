package catalog

import (
	"iter"
	"slices"
)

// Index is a string-keyed registry that remembers first-insertion order.
// Setting an existing key replaces its value in place. The zero value is
// ready for use.
type Index[V any] struct {
	keys  []string
	items map[string]V
}

// Set stores v under key.
func (x *Index[V]) Set(key string, v V) {
	if x.items == nil {
		x.items = make(map[string]V)
	}
	if _, ok := x.items[key]; !ok {
		x.keys = append(x.keys, key)
	}
	x.items[key] = v
}

// Get returns the value stored under key.
func (x *Index[V]) Get(key string) (V, bool) {
	v, ok := x.items[key]
	return v, ok
}

// Has reports whether key is present.
func (x *Index[V]) Has(key string) bool {
	_, ok := x.items[key]
	return ok
}

// Len returns the number of distinct keys.
func (x *Index[V]) Len() int { return len(x.keys) }

// Keys returns the keys in first-insertion order.
func (x *Index[V]) Keys() []string { return slices.Clone(x.keys) }

// Values returns the values in first-insertion order of their keys.
func (x *Index[V]) Values() []V {
	out := make([]V, 0, len(x.keys))
	for _, k := range x.keys {
		out = append(out, x.items[k])
	}
	return out
}

// All iterates key/value pairs in first-insertion order.
func (x *Index[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range x.keys {
			if !yield(k, x.items[k]) {
				return
			}
		}
	}
}
