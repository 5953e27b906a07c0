package lists

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// ArrayList is a growable, random-access buffer.
// Its Size always equals the number of realized elements.
type ArrayList[T any] struct {
	data []T
}

// Vector is the buffer used for heterogeneous sequence values.
type Vector = ArrayList[any]

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// NewVector returns a vector holding a copy of values.
func NewVector(values ...any) *Vector {
	return &Vector{data: slices.Clone(values)}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	removed := al.data[index]
	copy(al.data[index:], al.data[index+1:])
	// clear the vacated slot, let it be GCed
	clear(al.data[len(al.data)-1:])
	al.data = al.data[:len(al.data)-1]
	return removed, nil
}

// RemoveRange removes elements from index 'start' (inclusive) to 'end' (exclusive).
func (al *ArrayList[T]) RemoveRange(start, end int) error {
	if start < 0 || end > len(al.data) || start > end {
		return ErrIndexOutOfBounds
	}
	if start == end {
		return nil
	}

	copy(al.data[start:], al.data[end:])

	newLen := len(al.data) - (end - start)
	clear(al.data[newLen:])
	al.data = al.data[:newLen]
	return nil
}

func (al *ArrayList[T]) Swap(i, j int) {
	if i < 0 || i >= len(al.data) || j < 0 || j >= len(al.data) {
		return
	}
	al.data[i], al.data[j] = al.data[j], al.data[i]
}

// Reverse reverses the buffer in place.
func (al *ArrayList[T]) Reverse() {
	slices.Reverse(al.data)
}

// Slice returns a new buffer holding a copy of [start, end).
func (al *ArrayList[T]) Slice(start, end int) (*ArrayList[T], error) {
	if start < 0 || end > len(al.data) || start > end {
		return nil, ErrIndexOutOfBounds
	}
	return &ArrayList[T]{data: slices.Clone(al.data[start:end])}, nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

// Clone returns a shallow copy of the buffer.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (al *ArrayList[T]) Clone() *ArrayList[T] {
	return &ArrayList[T]{data: slices.Clone(al.data)}
}

// ToSlice copies the buffer into a native slice.
func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

func (al *ArrayList[T]) All() iter.Seq2[int, T] {
	return slices.All(al.data)
}
