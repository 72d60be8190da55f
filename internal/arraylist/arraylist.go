package arraylist

import "fmt"

// DefaultCapacity is the backing store capacity used by [New].
const DefaultCapacity = 10

// GrowthObserver is notified after the backing store has been replaced by a
// larger one.
type GrowthObserver interface {
	OnGrow(oldCap, newCap, size int)
}

// ArrayList is a dynamic array. The zero value is not usable; construct
// lists with [New] or [NewWithCapacity].
type ArrayList[T any] struct {
	elements []T
	size     int
	observer GrowthObserver
}

func New[T any]() *ArrayList[T] {
	return &ArrayList[T]{elements: make([]T, DefaultCapacity)}
}

func NewWithCapacity[T any](capacity int) (*ArrayList[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d must be positive", ErrInvalidArgument, capacity)
	}
	return &ArrayList[T]{elements: make([]T, capacity)}, nil
}

// SetGrowthObserver registers o to be called after every growth event.
// A nil observer disables notifications.
func (l *ArrayList[T]) SetGrowthObserver(o GrowthObserver) {
	l.observer = o
}

// Add appends value to the end of the list.
func (l *ArrayList[T]) Add(value T) {
	l.grow()
	l.elements[l.size] = value
	l.size++
}

// Insert places value at index, shifting the elements at index and after one
// position to the right. An index equal to Size appends.
func (l *ArrayList[T]) Insert(value T, index int) error {
	if index == l.size {
		l.Add(value)
		return nil
	}
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.grow()
	copy(l.elements[index+1:l.size+1], l.elements[index:l.size])
	l.elements[index] = value
	l.size++
	return nil
}

// AddAll appends every element of other in order. The size of other is read
// once; if reading any element fails the list is left unchanged.
func (l *ArrayList[T]) AddAll(other Sequence[T]) error {
	n := other.Size()
	if n == 0 {
		return nil
	}
	values := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := other.Get(i)
		if err != nil {
			return fmt.Errorf("add all: element %d: %w", i, err)
		}
		values[i] = v
	}
	for _, v := range values {
		l.Add(v)
	}
	return nil
}

func (l *ArrayList[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.elements[index], nil
}

func (l *ArrayList[T]) Set(value T, index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.elements[index] = value
	return nil
}

// RemoveAt removes and returns the element at index, shifting the following
// elements one position to the left.
func (l *ArrayList[T]) RemoveAt(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	removed := l.elements[index]
	copy(l.elements[index:l.size-1], l.elements[index+1:l.size])
	l.size--
	var zero T
	l.elements[l.size] = zero
	return removed, nil
}

// Remove removes and returns the first element matching element. See
// [Equaler] for the matching rule.
func (l *ArrayList[T]) Remove(element T) (T, error) {
	if i := l.IndexOf(element); i >= 0 {
		return l.RemoveAt(i)
	}
	var zero T
	return zero, notFound(element)
}

// RemoveFunc removes and returns the first element for which match reports
// true.
func (l *ArrayList[T]) RemoveFunc(match func(T) bool) (T, error) {
	for i := 0; i < l.size; i++ {
		if match(l.elements[i]) {
			return l.RemoveAt(i)
		}
	}
	var zero T
	return zero, ErrElementNotFound
}

// IndexOf returns the index of the first element matching element, or -1.
func (l *ArrayList[T]) IndexOf(element T) int {
	for i := 0; i < l.size; i++ {
		if matches(element, l.elements[i]) {
			return i
		}
	}
	return -1
}

func (l *ArrayList[T]) Contains(element T) bool {
	return l.IndexOf(element) >= 0
}

func (l *ArrayList[T]) Size() int { return l.size }

func (l *ArrayList[T]) IsEmpty() bool { return l.size == 0 }

// Cap returns the capacity of the backing store.
func (l *ArrayList[T]) Cap() int { return len(l.elements) }

// grow replaces a full backing store with one half again as large.
func (l *ArrayList[T]) grow() {
	oldCap := len(l.elements)
	if l.size < oldCap {
		return
	}
	newCap := nextCapacity(oldCap)
	next := make([]T, newCap)
	copy(next, l.elements[:l.size])
	l.elements = next
	if l.observer != nil {
		l.observer.OnGrow(oldCap, newCap, l.size)
	}
}

func (l *ArrayList[T]) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return &IndexError{Index: index, Size: l.size}
	}
	return nil
}

// NextCapacity returns the capacity the backing store grows to when a store
// of capacity c is full.
func NextCapacity(c int) int {
	return nextCapacity(c)
}

func nextCapacity(c int) int {
	step := c >> 1
	if step < 1 {
		step = 1
	}
	return c + step
}
