package omap

// node is a tree node. Child pointers define the tree; parent pointers are
// only used to walk back up during iteration and removal.
type node[K any, V any] struct {
	entry  Entry[K, V]
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

func (n *node[K, V]) unlink() {
	n.left = nil
	n.right = nil
	n.parent = nil
}

// minimum returns the leftmost node of the subtree rooted at x
func minimum[K any, V any](x *node[K, V]) *node[K, V] {
	if x == nil {
		return nil
	}
	for x.left != nil {
		x = x.left
	}
	return x
}

// maximum returns the rightmost node of the subtree rooted at x
func maximum[K any, V any](x *node[K, V]) *node[K, V] {
	if x == nil {
		return nil
	}
	for x.right != nil {
		x = x.right
	}
	return x
}

// successor returns the in-order successor of x, or nil if x is the last
// node in the tree.
func successor[K any, V any](x *node[K, V]) *node[K, V] {
	if x == nil {
		return nil
	}
	if x.right != nil {
		return minimum(x.right)
	}
	y := x.parent
	for y != nil && x == y.right {
		x = y
		y = y.parent
	}
	return y
}

// predecessor is the mirror of successor.
func predecessor[K any, V any](x *node[K, V]) *node[K, V] {
	if x == nil {
		return nil
	}
	if x.left != nil {
		return maximum(x.left)
	}
	y := x.parent
	for y != nil && x == y.left {
		x = y
		y = y.parent
	}
	return y
}
