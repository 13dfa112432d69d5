// Package omap implements an ordered map backed by an unbalanced binary
// search tree with parent-linked nodes.
//
// Keys are ordered by a user supplied Less function, which must be a strict
// weak ordering. Two keys a and b are considered equal when neither
// less(a, b) nor less(b, a) holds. The tree is never rebalanced, so
// inserting keys in sorted order produces a tree of linear depth.
//
// An OrderedMap is not safe for concurrent use. Callers that share a map
// between goroutines must serialize access themselves.
package omap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Less reports whether a orders before b.
type Less[K any] func(a, b K) bool

// Entry is a key value pair stored in an OrderedMap. The key is fixed
// once stored; the value may be updated in place through the pointer
// returned by the lookup methods.
type Entry[K any, V any] struct {
	key   K
	Value V
}

// MakeEntry returns a detached entry, suitable for FromEntries and Assign.
func MakeEntry[K any, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{key: key, Value: value}
}

// Key returns the entry's key.
func (e *Entry[K, V]) Key() K {
	return e.key
}

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("%v:%v", e.key, e.Value)
}

// OrderedMap is an ordered key value container. The zero value is not
// ready for use; create one with New or NewOrdered.
type OrderedMap[K any, V any] struct {
	root  *node[K, V]
	count int
	less  Less[K]
}

// New returns an empty map ordered by less. It panics if less is nil.
func New[K any, V any](less Less[K]) *OrderedMap[K, V] {
	if less == nil {
		panic("omap: nil comparator")
	}
	return &OrderedMap[K, V]{less: less}
}

// NewOrdered returns an empty map ordered by the < operator.
func NewOrdered[K constraints.Ordered, V any]() *OrderedMap[K, V] {
	return New[K, V](func(a, b K) bool {
		return a < b
	})
}

// FromEntries returns a map ordered by less holding the given entries.
// Entries are inserted one at a time in order, so when a key repeats the
// first occurrence wins.
func FromEntries[K any, V any](less Less[K], entries ...Entry[K, V]) *OrderedMap[K, V] {
	m := New[K, V](less)
	for i := range entries {
		m.insert(entries[i].key, entries[i].Value)
	}
	return m
}

// NewOrderedFrom is FromEntries using the < operator.
func NewOrderedFrom[K constraints.Ordered, V any](entries ...Entry[K, V]) *OrderedMap[K, V] {
	m := NewOrdered[K, V]()
	for i := range entries {
		m.insert(entries[i].key, entries[i].Value)
	}
	return m
}

// Len returns the number of entries in the map.
func (m *OrderedMap[K, V]) Len() int {
	return m.count
}

// Empty reports whether the map holds no entries.
func (m *OrderedMap[K, V]) Empty() bool {
	return m.count == 0
}

// Find returns the entry stored under key.
func (m *OrderedMap[K, V]) Find(key K) (*Entry[K, V], bool) {
	n := m.search(key)
	if n == nil {
		return nil, false
	}
	return &n.entry, true
}

// Seek returns an iterator positioned at key, or End if key is absent.
func (m *OrderedMap[K, V]) Seek(key K) Iterator[K, V] {
	return Iterator[K, V]{node: m.search(key)}
}

// Contains reports whether key is present.
func (m *OrderedMap[K, V]) Contains(key K) bool {
	return m.search(key) != nil
}

// Count returns 1 if key is present and 0 otherwise.
func (m *OrderedMap[K, V]) Count(key K) int {
	if m.search(key) != nil {
		return 1
	}
	return 0
}

// Insert adds key with value if key is not already present. It returns the
// entry now stored under key and whether it was inserted. An existing entry
// is returned unchanged.
func (m *OrderedMap[K, V]) Insert(key K, value V) (*Entry[K, V], bool) {
	n, ok := m.insert(key, value)
	return &n.entry, ok
}

// InsertEntry is Insert taking an entry built with MakeEntry.
func (m *OrderedMap[K, V]) InsertEntry(e Entry[K, V]) (*Entry[K, V], bool) {
	return m.Insert(e.key, e.Value)
}

// Index returns a pointer to the value stored under key, inserting the zero
// value first if key is absent.
func (m *OrderedMap[K, V]) Index(key K) *V {
	if n := m.search(key); n != nil {
		return &n.entry.Value
	}
	var zero V
	n, _ := m.insert(key, zero)
	return &n.entry.Value
}

// Set stores value under key, overwriting the value of an existing entry.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	*m.Index(key) = value
}

// At returns a pointer to the value stored under key. It returns an error
// wrapping ErrKeyNotFound if key is absent and never modifies the map.
func (m *OrderedMap[K, V]) At(key K) (*V, error) {
	n := m.search(key)
	if n == nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return &n.entry.Value, nil
}

// Erase removes key and reports whether it was present. Entries and
// iterators obtained before the call must not be used afterwards.
func (m *OrderedMap[K, V]) Erase(key K) bool {
	n := m.search(key)
	if n == nil {
		return false
	}
	m.remove(n)
	m.count--
	return true
}

// EraseIter removes the entry at it and returns an iterator to the entry
// that followed it. It must be an iterator of m. Erasing at End is a no-op.
func (m *OrderedMap[K, V]) EraseIter(it Iterator[K, V]) Iterator[K, V] {
	n := it.node
	if n == nil {
		return it
	}
	next := n
	if n.left == nil || n.right == nil {
		next = successor(n)
	}
	m.remove(n)
	m.count--
	return Iterator[K, V]{node: next}
}

// Clear removes every entry.
func (m *OrderedMap[K, V]) Clear() {
	if m.root != nil {
		stack := []*node[K, V]{m.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if n.left != nil {
				stack = append(stack, n.left)
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
			n.unlink()
			n.entry = Entry[K, V]{}
		}
	}
	m.root = nil
	m.count = 0
}

// Assign replaces the contents of the map with entries, inserted in order.
func (m *OrderedMap[K, V]) Assign(entries ...Entry[K, V]) {
	m.Clear()
	for i := range entries {
		m.insert(entries[i].key, entries[i].Value)
	}
}

// Clone returns a deep copy of the map. The copy shares no nodes with m.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	c := New[K, V](m.less)
	for n := minimum(m.root); n != nil; n = successor(n) {
		c.insert(n.entry.key, n.entry.Value)
	}
	return c
}

// Move transfers the contents of m to a new map and leaves m empty.
func (m *OrderedMap[K, V]) Move() *OrderedMap[K, V] {
	dst := &OrderedMap[K, V]{
		root:  m.root,
		count: m.count,
		less:  m.less,
	}
	m.root = nil
	m.count = 0
	return dst
}

func (m *OrderedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := minimum(m.root)
	for n := first; n != nil; n = successor(n) {
		if n != first {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.entry.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// search walks down from the root and returns the node holding key.
func (m *OrderedMap[K, V]) search(key K) *node[K, V] {
	x := m.root
	for x != nil {
		if m.less(key, x.entry.key) {
			x = x.left
		} else if m.less(x.entry.key, key) {
			x = x.right
		} else {
			return x
		}
	}
	return nil
}

// insert returns the node holding key and true if it had to be created.
func (m *OrderedMap[K, V]) insert(key K, value V) (*node[K, V], bool) {
	if m.root == nil {
		m.root = &node[K, V]{entry: Entry[K, V]{key: key, Value: value}}
		m.count = 1
		return m.root, true
	}
	var y *node[K, V]
	left := false
	for x := m.root; x != nil; {
		y = x
		if m.less(key, x.entry.key) {
			x, left = x.left, true
		} else if m.less(x.entry.key, key) {
			x, left = x.right, false
		} else {
			return x, false
		}
	}
	z := &node[K, V]{
		entry:  Entry[K, V]{key: key, Value: value},
		parent: y,
	}
	if left {
		y.left = z
	} else {
		y.right = z
	}
	m.count++
	return z, true
}

// remove unlinks the entry held by n. The count is left to the caller.
func (m *OrderedMap[K, V]) remove(n *node[K, V]) {
	switch {
	case n.left == nil:
		m.splice(n, n.right)
	case n.right == nil:
		m.splice(n, n.left)
	default:
		// n keeps its place in the tree and takes over the entry of its
		// in-order successor, which is then removed instead.
		s := minimum(n.right)
		if s.left != nil {
			panic("omap: successor has a left child")
		}
		n.entry = Entry[K, V]{key: s.entry.key, Value: s.entry.Value}
		m.remove(s)
	}
}

// splice replaces n with child (which may be nil) in n's parent, or at
// the root, and detaches n.
func (m *OrderedMap[K, V]) splice(n, child *node[K, V]) {
	if child != nil {
		child.parent = n.parent
	}
	switch {
	case n.parent == nil:
		m.root = child
	case n.parent.left == n:
		n.parent.left = child
	default:
		n.parent.right = child
	}
	n.unlink()
}
