package omap

import (
	"math/rand"
	"testing"

	"github.com/scottcagno/storage/pkg/util"
)

func TestIterator_Empty(t *testing.T) {
	m := NewOrdered[int, int]()
	util.AssertTrue(t, m.Begin() == m.End())
	util.AssertTrue(t, m.Last() == m.End())
	util.AssertFalse(t, m.Begin().Valid())
	util.AssertNil(t, m.Begin().Entry())
	util.AssertTrue(t, m.End().Next() == m.End())
	_, ok := m.Min()
	util.AssertFalse(t, ok)
	_, ok = m.Max()
	util.AssertFalse(t, ok)
}

func TestIterator_Forward(t *testing.T) {
	m := makeIntMap(5, 3, 8, 1, 4, 7, 9)
	var got []int
	for it := m.Begin(); it.Valid(); it = it.Next() {
		util.AssertEqual(t, it.Key(), it.Entry().Key())
		util.AssertEqual(t, it.Key()*10, *it.Value())
		got = append(got, it.Key())
	}
	util.AssertEqual(t, []int{1, 3, 4, 5, 7, 8, 9}, got)

	// restarting from Begin yields the same sequence
	util.AssertEqual(t, got, keysOf(m))
}

func TestIterator_Backward(t *testing.T) {
	m := makeIntMap(5, 3, 8, 1, 4, 7, 9)
	var got []int
	for it := m.Last(); it != m.End(); it = it.Prev() {
		got = append(got, it.Key())
	}
	util.AssertEqual(t, []int{9, 8, 7, 5, 4, 3, 1}, got)

	lo, _ := m.Min()
	hi, _ := m.Max()
	util.AssertEqual(t, 1, lo.Key())
	util.AssertEqual(t, 9, hi.Key())
}

func TestIterator_UpdateValue(t *testing.T) {
	m := makeIntMap(3, 1, 2)
	for it := m.Begin(); it.Valid(); it = it.Next() {
		*it.Value() += 1
	}
	for _, k := range []int{1, 2, 3} {
		v, err := m.At(k)
		util.AssertNoError(t, err)
		util.AssertEqual(t, k*10+1, *v)
	}
}

func TestOrderedMap_Seek(t *testing.T) {
	m := makeIntMap(5, 3, 8, 1, 4, 7, 9)
	var got []int
	for it := m.Seek(4); it.Valid(); it = it.Next() {
		got = append(got, it.Key())
	}
	util.AssertEqual(t, []int{4, 5, 7, 8, 9}, got)
	util.AssertTrue(t, m.Seek(6) == m.End())
}

func TestOrderedMap_EraseIter(t *testing.T) {
	const n = 64
	rnd := rand.New(rand.NewSource(7))
	m := NewOrdered[int, int]()
	for _, k := range rnd.Perm(n) {
		m.Insert(k, k)
	}
	for it := m.Begin(); it.Valid(); {
		if it.Key()%2 == 0 {
			it = m.EraseIter(it)
			continue
		}
		it = it.Next()
	}
	checkTree(t, m)
	util.AssertLen(t, n/2, m.Len())
	for i, k := range keysOf(m) {
		util.AssertEqual(t, 2*i+1, k)
	}

	util.AssertTrue(t, m.EraseIter(m.End()) == m.End())
	util.AssertLen(t, n/2, m.Len())
}

func TestOrderedMap_Range(t *testing.T) {
	m := makeIntMap(5, 3, 8, 1, 4, 7, 9)
	var got []int
	m.Range(func(key int, value *int) bool {
		got = append(got, key)
		return len(got) < 3
	})
	util.AssertEqual(t, []int{1, 3, 4}, got)

	m.Range(func(key int, value *int) bool {
		*value = -key
		return true
	})
	v, _ := m.At(8)
	util.AssertEqual(t, -8, *v)
}

func TestOrderedMap_All(t *testing.T) {
	m := makeIntMap(2, 1, 3, 4)
	var keys, vals []int
	for k, v := range m.All() {
		if k == 4 {
			break
		}
		keys = append(keys, k)
		vals = append(vals, v)
	}
	util.AssertEqual(t, []int{1, 2, 3}, keys)
	util.AssertEqual(t, []int{10, 20, 30}, vals)

	keys = keys[:0]
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	util.AssertEqual(t, []int{1, 2, 3, 4}, keys)
}

func TestOrderedMap_SizeMatchesTraversal(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	m := NewOrdered[int, struct{}]()
	for i := 0; i < 2000; i++ {
		k := rnd.Intn(300)
		if rnd.Intn(3) == 0 {
			m.Erase(k)
		} else {
			m.Insert(k, struct{}{})
		}
	}
	checkTree(t, m)
	keys := keysOf(m)
	util.AssertLen(t, m.Len(), len(keys))
	for i := 1; i < len(keys); i++ {
		util.AssertTrue(t, keys[i-1] < keys[i])
	}
}
