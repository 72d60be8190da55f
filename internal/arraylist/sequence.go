package arraylist

// Sequence is a read-only indexed source of elements.
type Sequence[T any] interface {
	Get(index int) (T, error)
	Size() int
}

// SliceSequence adapts a slice to [Sequence].
type SliceSequence[T any] []T

func (s SliceSequence[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(s) {
		var zero T
		return zero, &IndexError{Index: index, Size: len(s)}
	}
	return s[index], nil
}

func (s SliceSequence[T]) Size() int { return len(s) }

// Values copies the elements of seq into a new slice.
func Values[T any](seq Sequence[T]) []T {
	n := seq.Size()
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := seq.Get(i)
		if err != nil {
			break
		}
		out = append(out, v)
	}
	return out
}
