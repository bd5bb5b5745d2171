package Arrays

import "fmt"

// IndexError is returned when an index falls outside [0, Size()) (or [0, Size()] for Insert).
type IndexError struct {
	Index, Size int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for size %d", e.Index, e.Size)
}

type EmptyError struct {
}

func (e *EmptyError) Error() string {
	return "DynamicArray is Empty: cannot Pop or Peek."
}
