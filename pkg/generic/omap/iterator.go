package omap

import "iter"

// Iterator points at an entry of an OrderedMap, or past the last entry.
// The zero Iterator is the end position. Iterators compare equal with ==
// when they point at the same entry. Any Insert or Erase on the map
// invalidates outstanding iterators.
type Iterator[K any, V any] struct {
	node *node[K, V]
}

// Begin returns an iterator at the entry with the smallest key.
func (m *OrderedMap[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{node: minimum(m.root)}
}

// Last returns an iterator at the entry with the largest key.
func (m *OrderedMap[K, V]) Last() Iterator[K, V] {
	return Iterator[K, V]{node: maximum(m.root)}
}

// End returns the past-the-end iterator.
func (m *OrderedMap[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// Valid reports whether it points at an entry.
func (it Iterator[K, V]) Valid() bool {
	return it.node != nil
}

// Entry returns the current entry, or nil at the end position.
func (it Iterator[K, V]) Entry() *Entry[K, V] {
	if it.node == nil {
		return nil
	}
	return &it.node.entry
}

// Key returns the current key. It panics at the end position.
func (it Iterator[K, V]) Key() K {
	return it.node.entry.key
}

// Value returns a pointer to the current value. It panics at the end
// position.
func (it Iterator[K, V]) Value() *V {
	return &it.node.entry.Value
}

// Next returns an iterator at the following entry.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{node: successor(it.node)}
}

// Prev returns an iterator at the preceding entry, or End when it is at
// the first entry.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	return Iterator[K, V]{node: predecessor(it.node)}
}

// Min returns the entry with the smallest key.
func (m *OrderedMap[K, V]) Min() (*Entry[K, V], bool) {
	x := minimum(m.root)
	if x == nil {
		return nil, false
	}
	return &x.entry, true
}

// Max returns the entry with the largest key.
func (m *OrderedMap[K, V]) Max() (*Entry[K, V], bool) {
	x := maximum(m.root)
	if x == nil {
		return nil, false
	}
	return &x.entry, true
}

// Range calls fn for each entry in ascending key order until fn
// returns false.
func (m *OrderedMap[K, V]) Range(fn func(key K, value *V) bool) {
	for x := minimum(m.root); x != nil; x = successor(x) {
		if !fn(x.entry.key, &x.entry.Value) {
			return
		}
	}
}

// All returns an iterator over key value pairs in ascending key order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := minimum(m.root); x != nil; x = successor(x) {
			if !yield(x.entry.key, x.entry.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m *OrderedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for x := minimum(m.root); x != nil; x = successor(x) {
			if !yield(x.entry.key) {
				return
			}
		}
	}
}
