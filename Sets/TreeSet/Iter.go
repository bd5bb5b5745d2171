package TreeSet

import (
	"fmt"
	"iter"

	"github.com/g-m-twostay/go-treeset/Arrays"
)

// walk the tree in-order with an explicit stack and call f on each value. Stops when f returns false.
// Time: O(n); Space: O(D)
func (u *TreeSet[E]) walk(f func(E) bool) {
	st := Arrays.New[*node[E]](0)
	for cur := u.root; cur != nil; cur = cur.l {
		st.Append(cur)
	}
	for !st.IsEmpty() {
		cur, _ := st.Pop()
		if !f(cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st.Append(cur)
		}
	}
}

// All elements in ascending order. The sequence walks the live tree, so the
// set must not be modified during the iteration; what the sequence yields
// after a modification is undefined, but the tree itself won't be corrupted.
func (u *TreeSet[E]) All() iter.Seq[E] {
	return u.walk
}

// Slice of all elements in ascending order.
// Time: O(n); Space: O(n)
func (u *TreeSet[E]) Slice() []E {
	vs := make([]E, 0, u.sz)
	u.walk(func(v E) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// InOrder returns a closure f over a snapshot of the set taken when InOrder is called.
// Calling f is like calling "Next()" of iterators: val, valid=f().
// val is meaningful only if valid is true. When valid==false, f is exhausted.
// Later modifications of the set aren't visible to f.
// Time: O(n) for InOrder, O(1) at each call to f.
func (u *TreeSet[E]) InOrder() func() (E, bool) {
	vs, i := u.Slice(), 0
	return func() (r E, has bool) {
		if i < len(vs) {
			r, has = vs[i], true
			i++
		}
		return
	}
}

// String of the elements in ascending order, like [10 20 30].
func (u *TreeSet[E]) String() string {
	return fmt.Sprint(u.Slice())
}
