package model

import (
	"iter"
	"slices"
)

// Table is an insertion-ordered mapping. Overwriting a key keeps its original
// position; deleting a key drops it from the order.
type Table[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewTable creates an empty Table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{values: make(map[K]V)}
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int {
	return len(t.keys)
}

// Has reports whether key is present.
func (t *Table[K, V]) Has(key K) bool {
	_, ok := t.values[key]
	return ok
}

// Get returns the value stored under key.
func (t *Table[K, V]) Get(key K) (V, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Set inserts or overwrites key.
func (t *Table[K, V]) Set(key K, value V) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Delete removes key and reports whether it was present.
func (t *Table[K, V]) Delete(key K) bool {
	if _, ok := t.values[key]; !ok {
		return false
	}
	delete(t.values, key)
	t.keys = slices.DeleteFunc(t.keys, func(k K) bool { return k == key })
	return true
}

// DeleteFunc removes every entry for which del returns true and returns how
// many were removed.
func (t *Table[K, V]) DeleteFunc(del func(K, V) bool) int {
	before := len(t.keys)
	t.keys = slices.DeleteFunc(t.keys, func(k K) bool {
		if del(k, t.values[k]) {
			delete(t.values, k)
			return true
		}
		return false
	})
	return before - len(t.keys)
}

// All returns the entries in insertion order. The sequence can be ranged over
// any number of times; each pass sees the table's current contents.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}

// Keys returns a copy of the keys in insertion order.
func (t *Table[K, V]) Keys() []K {
	return slices.Clone(t.keys)
}
