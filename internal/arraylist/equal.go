package arraylist

import "reflect"

// Equaler is implemented by element types that define their own notion of
// equality for value removal.
//
// A candidate slot matches an argument when the two are identical, or when
// the argument is non-nil and equal to the candidate. Identity is == for
// comparable values and same-backing-store for slices and maps. Equality is
// the argument's Equal method when it implements Equaler, otherwise
// [reflect.DeepEqual]. A nil argument therefore only matches a nil slot.
type Equaler[T any] interface {
	Equal(other T) bool
}

func matches[T any](element, candidate T) bool {
	a, b := any(element), any(candidate)
	if identical(a, b) {
		return true
	}
	if isNil(a) {
		return false
	}
	if eq, ok := a.(Equaler[T]); ok {
		return eq.Equal(candidate)
	}
	return reflect.DeepEqual(a, b)
}

func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	case reflect.Func:
		return va.IsNil() && vb.IsNil()
	}
	return false
}

func isNil(a any) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
