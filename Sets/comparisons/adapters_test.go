package comparisons

import (
	"iter"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-treeset/Sets"
)

// membership is the part of Sets.Set that the hash maps can serve.
type membership interface {
	Add(int) bool
	Contains(int) bool
	Remove(int) bool
	Size() int
}

// https://github.com/emirpasic/gods red-black tree set.
type godsSet struct {
	s *treeset.Set
}

func newGods() Sets.Set[int] {
	return godsSet{treeset.NewWithIntComparator()}
}

func (u godsSet) Add(v int) bool {
	had := u.s.Contains(v)
	u.s.Add(v)
	return !had
}
func (u godsSet) Contains(v int) bool { return u.s.Contains(v) }
func (u godsSet) Remove(v int) bool {
	had := u.s.Contains(v)
	u.s.Remove(v)
	return had
}
func (u godsSet) Size() int     { return u.s.Size() }
func (u godsSet) IsEmpty() bool { return u.s.Empty() }
func (u godsSet) Clear()        { u.s.Clear() }
func (u godsSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for it := u.s.Iterator(); it.Next(); {
			if !yield(it.Value().(int)) {
				return
			}
		}
	}
}

// https://github.com/google/btree B-tree.
type bTreeSet struct {
	t *btree.BTreeG[int]
}

func newBTree() Sets.Set[int] {
	return bTreeSet{btree.NewOrderedG[int](32)}
}

func (u bTreeSet) Add(v int) bool {
	_, replaced := u.t.ReplaceOrInsert(v)
	return !replaced
}
func (u bTreeSet) Contains(v int) bool { return u.t.Has(v) }
func (u bTreeSet) Remove(v int) bool {
	_, had := u.t.Delete(v)
	return had
}
func (u bTreeSet) Size() int     { return u.t.Len() }
func (u bTreeSet) IsEmpty() bool { return u.t.Len() == 0 }
func (u bTreeSet) Clear()        { u.t.Clear(false) }
func (u bTreeSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		u.t.Ascend(yield)
	}
}

// https://github.com/petar/GoLLRB left-leaning red-black tree.
type llrbSet struct {
	t *llrb.LLRB
}

func newLLRB() Sets.Set[int] {
	return &llrbSet{llrb.New()}
}

func (u *llrbSet) Add(v int) bool {
	return u.t.ReplaceOrInsert(llrb.Int(v)) == nil
}
func (u *llrbSet) Contains(v int) bool { return u.t.Has(llrb.Int(v)) }
func (u *llrbSet) Remove(v int) bool {
	return u.t.Delete(llrb.Int(v)) != nil
}
func (u *llrbSet) Size() int     { return u.t.Len() }
func (u *llrbSet) IsEmpty() bool { return u.t.Len() == 0 }
func (u *llrbSet) Clear()        { u.t = llrb.New() }
func (u *llrbSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if lo := u.t.Min(); lo != nil {
			u.t.AscendGreaterOrEqual(lo, func(i llrb.Item) bool {
				return yield(int(i.(llrb.Int)))
			})
		}
	}
}

// https://github.com/alphadose/haxmap as an unordered baseline.
type haxSet struct {
	m *haxmap.Map[int, struct{}]
}

func newHax() membership {
	return haxSet{haxmap.New[int, struct{}]()}
}

func (u haxSet) Add(v int) bool {
	if _, had := u.m.Get(v); had {
		return false
	}
	u.m.Set(v, struct{}{})
	return true
}
func (u haxSet) Contains(v int) bool {
	_, had := u.m.Get(v)
	return had
}
func (u haxSet) Remove(v int) bool {
	if _, had := u.m.Get(v); !had {
		return false
	}
	u.m.Del(v)
	return true
}
func (u haxSet) Size() int { return int(u.m.Len()) }

// https://github.com/cornelk/hashmap as an unordered baseline.
type cornelkSet struct {
	m *hashmap.Map[int, struct{}]
}

func newCornelk() membership {
	return cornelkSet{hashmap.New[int, struct{}]()}
}

func (u cornelkSet) Add(v int) bool { return u.m.Insert(v, struct{}{}) }
func (u cornelkSet) Contains(v int) bool {
	_, had := u.m.Get(v)
	return had
}
func (u cornelkSet) Remove(v int) bool { return u.m.Del(v) }
func (u cornelkSet) Size() int         { return u.m.Len() }
