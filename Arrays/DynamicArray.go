package Arrays

import (
	"slices"

	"github.com/pkg/errors"
)

// DefaultCapacity is the initial capacity used by Make.
const DefaultCapacity uint = 10

// DynamicArray is a growable array. The capacity doubles when an element is
// appended to a full array and is halved when the array becomes a quarter full,
// but it never shrinks below the initial capacity.
// It can be used as a stack through Append, Peek and Pop.
// The zero value is an empty array with initial capacity 0.
type DynamicArray[T any] struct {
	vs   []T // len(vs) is the capacity.
	sz   int
	init int
}

// Make a DynamicArray with DefaultCapacity.
func Make[T any]() *DynamicArray[T] {
	return New[T](DefaultCapacity)
}

// New DynamicArray with initial capacity initCap.
func New[T any](initCap uint) *DynamicArray[T] {
	return &DynamicArray[T]{vs: make([]T, initCap), init: int(initCap)}
}

// From copies vs into a new DynamicArray whose initial capacity is len(vs).
func From[T any](vs ...T) *DynamicArray[T] {
	u := New[T](uint(len(vs)))
	u.sz = copy(u.vs, vs)
	return u
}

func (u *DynamicArray[T]) Size() int {
	return u.sz
}

func (u *DynamicArray[T]) IsEmpty() bool {
	return u.sz == 0
}

func (u *DynamicArray[T]) Cap() int {
	return len(u.vs)
}

func (u *DynamicArray[T]) check(i int) error {
	if i < 0 || i >= u.sz {
		return errors.WithStack(&IndexError{i, u.sz})
	}
	return nil
}

// Get the element at index i.
func (u *DynamicArray[T]) Get(i int) (T, error) {
	if err := u.check(i); err != nil {
		return *new(T), err
	}
	return u.vs[i], nil
}

// Set the element at index i to v. Returns the element previously at i.
func (u *DynamicArray[T]) Set(i int, v T) (T, error) {
	if err := u.check(i); err != nil {
		return *new(T), err
	}
	old := u.vs[i]
	u.vs[i] = v
	return old, nil
}

// Append v to the end.
// Time: amortized O(1)
func (u *DynamicArray[T]) Append(v T) {
	if u.sz == len(u.vs) {
		u.resize(max(1, len(u.vs)<<1))
	}
	u.vs[u.sz] = v
	u.sz++
}

// AppendAll appends vs in order. Returns true if the array changed.
func (u *DynamicArray[T]) AppendAll(vs ...T) bool {
	for _, v := range vs {
		u.Append(v)
	}
	return len(vs) > 0
}

// Insert v at index i, shifting the elements at i and after it to the right.
// i may equal Size(), in which case Insert is Append.
// Time: O(n)
func (u *DynamicArray[T]) Insert(i int, v T) error {
	if i < 0 || i > u.sz {
		return errors.WithStack(&IndexError{i, u.sz})
	}
	if u.sz == len(u.vs) {
		u.resize(max(1, len(u.vs)<<1))
	}
	copy(u.vs[i+1:u.sz+1], u.vs[i:u.sz])
	u.vs[i] = v
	u.sz++
	return nil
}

// RemoveAt removes and returns the element at index i, shifting the later elements to the left.
// Time: O(n)
func (u *DynamicArray[T]) RemoveAt(i int) (T, error) {
	if err := u.check(i); err != nil {
		return *new(T), err
	}
	v := u.vs[i]
	copy(u.vs[i:u.sz-1], u.vs[i+1:u.sz])
	u.sz--
	u.vs[u.sz] = *new(T)
	u.shrink()
	return v, nil
}

// Pop removes and returns the last element.
// Time: amortized O(1)
func (u *DynamicArray[T]) Pop() (T, error) {
	if u.sz == 0 {
		return *new(T), errors.WithStack(&EmptyError{})
	}
	u.sz--
	v := u.vs[u.sz]
	u.vs[u.sz] = *new(T)
	u.shrink()
	return v, nil
}

// Peek the last element without removing it.
func (u *DynamicArray[T]) Peek() (T, error) {
	if u.sz == 0 {
		return *new(T), errors.WithStack(&EmptyError{})
	}
	return u.vs[u.sz-1], nil
}

// Clear removes all elements and shrinks back to the initial capacity.
func (u *DynamicArray[T]) Clear() {
	clear(u.vs[:u.sz])
	u.sz = 0
	u.shrink()
}

// Sort the elements in ascending order according to cmp.
func (u *DynamicArray[T]) Sort(cmp func(a, b T) int) {
	slices.SortFunc(u.vs[:u.sz], cmp)
}

// Slice returns a copy of the elements in order.
func (u *DynamicArray[T]) Slice() []T {
	return slices.Clone(u.vs[:u.sz])
}

func (u *DynamicArray[T]) shrink() {
	if u.sz == 0 && len(u.vs) > u.init {
		u.resize(u.init)
	} else if u.sz >= u.init && u.sz<<2 == len(u.vs) {
		u.resize(len(u.vs) >> 1)
	}
}

func (u *DynamicArray[T]) resize(newCap int) {
	nvs := make([]T, newCap)
	copy(nvs, u.vs[:u.sz])
	u.vs = nvs
}
