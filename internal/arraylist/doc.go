// Package arraylist provides a generic, resizable, index-addressable
// sequence container.
//
// The package defines:
//
//   - [ArrayList]: dynamic array over a contiguous backing store
//   - [Sequence]: read-only indexed source accepted by [ArrayList.AddAll]
//   - [GrowthObserver]: hook notified whenever the backing store grows
//   - [Equaler]: custom equality used by value removal
//
// # Example
//
//	list := arraylist.New[string]()
//	list.Add("a")
//	list.Add("c")
//	_ = list.Insert("b", 1)
//	v, _ := list.Get(1) // "b"
//
// # Growth
//
// The backing store grows only when it is full. The new capacity is
// old + old/2, with a minimum step of one slot.
//
// # Thread Safety
//
// ArrayList instances are NOT thread-safe. Callers sharing a list across
// goroutines must synchronize access themselves.
package arraylist
