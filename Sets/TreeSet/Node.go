package TreeSet

// A node in the TreeSet. A node exclusively owns its children; a nil child
// is an absent one. There's no parent pointer, a parent is found again by
// descending from the root.
type node[E any] struct {
	v    E
	l, r *node[E]
}

// leftmost node of the subtree rooting at n, n mustn't be nil.
// Time: O(D); Space: O(1)
func (n *node[E]) leftmost() *node[E] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the subtree rooting at n, n mustn't be nil.
// Time: O(D); Space: O(1)
func (n *node[E]) rightmost() *node[E] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// height of the subtree rooting at n. Recursive.
func (n *node[E]) height() int {
	if n == nil {
		return 0
	}
	return max(n.l.height(), n.r.height()) + 1
}
