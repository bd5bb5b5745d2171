package Sets

import "iter"

// Set of unique elements. Operations that can change the set return
// whether they did; asking for a missing element or adding a duplicate is
// never an error.
type Set[E any] interface {
	//Add e to the Set. Returns true if e wasn't already present.
	Add(e E) bool
	//Contains e.
	Contains(e E) bool
	//Remove e from the Set. Returns true if e was present.
	Remove(e E) bool
	Size() int
	IsEmpty() bool
	Clear()
	//All elements. Order depends on implementation.
	All() iter.Seq[E]
}

// BulkSet applies the corresponding single element operation once per
// argument, always processing every argument.
type BulkSet[E any] interface {
	//ContainsAll is true if every element is contained.
	ContainsAll(es ...E) bool
	//AddAll is true if at least one element was added.
	AddAll(es ...E) bool
	//RemoveAll is true if at least one element was removed.
	RemoveAll(es ...E) bool
}

// OrderedSet is a Set whose elements are totally ordered.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined, like calling Minimum on an empty set.
type OrderedSet[E any] interface {
	Set[E]
	BulkSet[E]
	//Minimum element of the set.
	Minimum() (E, bool)
	//Maximum element of the set.
	Maximum() (E, bool)
	//InOrder returns a closure f acting like an iterator over a snapshot
	//of the set in ascending order. val, valid=f(); val is meaningful only
	//if valid is true, and valid never turns true again after it became false.
	InOrder() func() (E, bool)
	//Slice of all elements in ascending order.
	Slice() []E
}
