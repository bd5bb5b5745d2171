package TreeSet

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered set backed by a binary search tree with no repeated
// values. It does no balancing, so the height D of the tree depends only on
// the order of insertions and removals: on average D=O(log n), but inserting
// elements in sorted order makes D=n.
// The order is fixed at creation, either by a given Comparator or by the
// natural order of E.
// A TreeSet isn't safe for concurrent use.
type TreeSet[E any] struct {
	root *node[E]
	sz   int
	cmp  Comparator[E]
	// nil values of pointer, interface, map, slice, func and chan types are never in the set.
	nilable bool
}

// New TreeSet ordered by the natural order of E. See Comparable for what a natural order is.
// If E has no natural order, the first comparison panics with ConfigurationError.
func New[E any]() *TreeSet[E] {
	return &TreeSet[E]{cmp: natural[E](), nilable: nilable[E]()}
}

// NewWith returns a TreeSet ordered by cmp. If cmp is nil, it's the same as New.
func NewWith[E any](cmp Comparator[E]) *TreeSet[E] {
	if cmp == nil {
		return New[E]()
	}
	return &TreeSet[E]{cmp: cmp, nilable: nilable[E]()}
}

// NewOrdered returns a TreeSet of a builtin ordered type, ordered by < .
func NewOrdered[E constraints.Ordered]() *TreeSet[E] {
	return &TreeSet[E]{cmp: ordered[E, E](), nilable: false}
}

func (u *TreeSet[E]) absent(v E) bool {
	return u.nilable && reflect.ValueOf(&v).Elem().IsNil()
}

// Size of the set.
// Time: O(1)
func (u *TreeSet[E]) Size() int {
	return u.sz
}

// IsEmpty set.
// Time: O(1)
func (u *TreeSet[E]) IsEmpty() bool {
	return u.root == nil
}

// Contains v.
// Time: O(D); Space: O(1)
func (u *TreeSet[E]) Contains(v E) bool {
	if u.absent(v) {
		return false
	}
	for cur := u.root; cur != nil; {
		if c := u.cmp(cur.v, v); c < 0 {
			cur = cur.r
		} else if c > 0 {
			cur = cur.l
		} else {
			return true
		}
	}
	return false
}

// ContainsAll is true if every element of vs is contained.
func (u *TreeSet[E]) ContainsAll(vs ...E) bool {
	all := true
	for _, v := range vs {
		if !u.Contains(v) {
			all = false
		}
	}
	return all
}

// Minimum element. Returns (zero value, false) if the set is empty.
// Time: O(D); Space: O(1)
func (u *TreeSet[E]) Minimum() (E, bool) {
	if u.root == nil {
		return *new(E), false
	}
	return u.root.leftmost().v, true
}

// Maximum element. Returns (zero value, false) if the set is empty.
// Time: O(D); Space: O(1)
func (u *TreeSet[E]) Maximum() (E, bool) {
	if u.root == nil {
		return *new(E), false
	}
	return u.root.rightmost().v, true
}

// Add v as a new leaf. Returns false if v is already in the set, in which case
// the set is unchanged.
// Time: O(D); Space: O(1)
func (u *TreeSet[E]) Add(v E) bool {
	if u.absent(v) {
		return false
	}
	// slot is the link that will hold the new leaf: u.root or the l/r of the last visited node.
	slot := &u.root
	for cur := *slot; cur != nil; cur = *slot {
		if c := u.cmp(cur.v, v); c < 0 {
			slot = &cur.r
		} else if c > 0 {
			slot = &cur.l
		} else {
			return false
		}
	}
	*slot = &node[E]{v: v}
	u.sz++
	return true
}

// AddAll adds every element of vs. Returns true if at least one was added.
func (u *TreeSet[E]) AddAll(vs ...E) bool {
	changed := false
	for _, v := range vs {
		if u.Add(v) {
			changed = true
		}
	}
	return changed
}

// Remove v. Returns false if v isn't in the set.
// A node with 2 children isn't unlinked; its value is replaced by that of its
// in-order successor, and the successor node, which has no left child, is
// unlinked instead.
// Time: O(D); Space: O(1)
func (u *TreeSet[E]) Remove(v E) bool {
	if u.absent(v) {
		return false
	}
	// slot is the link holding cur: u.root, or the l or r of cur's parent.
	for slot := &u.root; *slot != nil; {
		cur := *slot
		if c := u.cmp(cur.v, v); c < 0 {
			slot = &cur.r
		} else if c > 0 {
			slot = &cur.l
		} else {
			if cur.l == nil {
				*slot = cur.r
			} else if cur.r == nil {
				*slot = cur.l
			} else {
				// when cur.r has no left child, succ is cur.r and it's unlinked from cur.r directly.
				succ := &cur.r
				for (*succ).l != nil {
					succ = &(*succ).l
				}
				cur.v = (*succ).v
				*succ = (*succ).r
			}
			u.sz--
			return true
		}
	}
	return false
}

// RemoveAll removes every element of vs. Returns true if at least one was removed.
func (u *TreeSet[E]) RemoveAll(vs ...E) bool {
	changed := false
	for _, v := range vs {
		if u.Remove(v) {
			changed = true
		}
	}
	return changed
}

// Clear the set.
// Time: O(1)
func (u *TreeSet[E]) Clear() {
	u.root, u.sz = nil, 0
}

// Height of the tree, the number of nodes on the longest path from the root to a leaf. Recursive.
// Time: O(n)
func (u *TreeSet[E]) Height() int {
	return u.root.height()
}
