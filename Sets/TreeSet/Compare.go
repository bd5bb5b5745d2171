package TreeSet

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Comparator returns a negative number if a<b, 0 if a==b and a positive number if a>b.
// It must be a total order. Two elements are the same element of a TreeSet iff the
// Comparator returns 0 for them, even if == or Equals would say otherwise.
type Comparator[E any] func(a, b E) int

// Comparable is implemented by element types that know their own natural order,
// time.Time for example.
type Comparable[E any] interface {
	Compare(E) int
}

// ConfigurationError means that a TreeSet had to compare two elements but neither
// a Comparator was given nor the element type has a natural order.
// It's raised as a panic by the first comparison, wrapped with a stack trace.
// With is set when the elements have different dynamic types, possible only if E is an interface.
type ConfigurationError struct {
	Type, With reflect.Type
}

func (e *ConfigurationError) Error() string {
	if e.With != nil {
		return fmt.Sprintf("TreeSet: no Comparator given and %v can't be compared with %v", e.Type, e.With)
	}
	return fmt.Sprintf("TreeSet: no Comparator given and %v has no natural order", e.Type)
}

func unordered(t, with reflect.Type) error {
	return errors.WithStack(&ConfigurationError{t, with})
}

func ordered[T constraints.Ordered, E any]() Comparator[E] {
	return func(a, b E) int {
		return cmp.Compare(any(a).(T), any(b).(T))
	}
}

// byKind compares two values of the same ordered kind, nil if k isn't ordered.
func byKind(k reflect.Kind) func(a, b reflect.Value) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b reflect.Value) int { return cmp.Compare(a.Int(), b.Int()) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b reflect.Value) int { return cmp.Compare(a.Uint(), b.Uint()) }
	case reflect.Float32, reflect.Float64:
		return func(a, b reflect.Value) int { return cmp.Compare(a.Float(), b.Float()) }
	case reflect.String:
		return func(a, b reflect.Value) int { return cmp.Compare(a.String(), b.String()) }
	}
	return nil
}

// dynamic resolves the order from the dynamic types of a and b, used when E is an interface.
func dynamic[E any](a, b E) int {
	if c, ok := any(a).(Comparable[E]); ok {
		return c.Compare(b)
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		panic(unordered(va.Type(), vb.Type()))
	}
	if c := byKind(va.Kind()); c != nil {
		return c(va, vb)
	}
	panic(unordered(va.Type(), nil))
}

// natural order of E, resolved once. If E has none, the returned Comparator panics
// with ConfigurationError when called.
func natural[E any]() Comparator[E] {
	t := reflect.TypeFor[E]()
	if t.Implements(reflect.TypeFor[Comparable[E]]()) {
		return func(a, b E) int {
			return any(a).(Comparable[E]).Compare(b)
		}
	}
	switch any(*new(E)).(type) {
	case int:
		return ordered[int, E]()
	case int8:
		return ordered[int8, E]()
	case int16:
		return ordered[int16, E]()
	case int32:
		return ordered[int32, E]()
	case int64:
		return ordered[int64, E]()
	case uint:
		return ordered[uint, E]()
	case uint8:
		return ordered[uint8, E]()
	case uint16:
		return ordered[uint16, E]()
	case uint32:
		return ordered[uint32, E]()
	case uint64:
		return ordered[uint64, E]()
	case uintptr:
		return ordered[uintptr, E]()
	case float32:
		return ordered[float32, E]()
	case float64:
		return ordered[float64, E]()
	case string:
		return ordered[string, E]()
	}
	if t.Kind() == reflect.Interface {
		return dynamic[E]
	}
	if c := byKind(t.Kind()); c != nil {
		return func(a, b E) int {
			return c(reflect.ValueOf(a), reflect.ValueOf(b))
		}
	}
	return func(E, E) int {
		panic(unordered(t, nil))
	}
}

// nilable reports whether E has a nil value, which is treated as an element that can't be in a set.
func nilable[E any]() bool {
	switch reflect.TypeFor[E]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
