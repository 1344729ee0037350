/*
Package dlist defines an indexed, unsorted sequence with a bidirectional cursor
that can edit the sequence in place.

The list package provides the doubly linked implementation.
*/
package dlist

// Iterator is a forward-only cursor.
type Iterator[T any] interface {
	// HasNext reports whether Next would return an element.
	HasNext() (bool, error)
	// Next returns the next element and advances the cursor.
	Next() (T, error)
	// Remove removes the element last returned by the cursor.
	Remove() error
}

// ListIterator is a bidirectional cursor positioned in the gap between two elements.
//
// All methods fail with ErrStaleCursor once the underlying list
// has been modified by anything other than the cursor itself.
type ListIterator[T any] interface {
	Iterator[T]

	// HasPrevious reports whether Previous would return an element.
	HasPrevious() (bool, error)
	// Previous returns the previous element and moves the cursor backwards.
	Previous() (T, error)
	// NextIndex returns the index of the element Next would return.
	NextIndex() (int, error)
	// PreviousIndex returns the index of the element Previous would return.
	PreviousIndex() (int, error)
	// Set replaces the element last returned by Next or Previous.
	Set(v T) error
	// Add inserts an element into the gap before the cursor.
	Add(v T) error
}

// IndexedList is an ordered sequence of possibly equal elements
// addressable by position and by value.
type IndexedList[T any] interface {
	AddToFront(v T)
	AddToRear(v T)
	Add(v T)
	AddAfter(v, target T) error
	Insert(index int, v T) error

	RemoveFirst() (T, error)
	RemoveLast() (T, error)
	Remove(v T) (T, error)
	RemoveAt(index int) (T, error)

	Set(index int, v T) error
	Get(index int) (T, error)
	IndexOf(v T) int
	First() (T, error)
	Last() (T, error)
	Contains(v T) bool
	IsEmpty() bool
	Len() int
	String() string

	// Iterator returns a forward cursor positioned before the first element.
	Iterator() Iterator[T]
	// ListIterator returns a cursor positioned before the first element.
	ListIterator() ListIterator[T]
	// ListIteratorAt returns a cursor positioned before index.
	ListIteratorAt(index int) (ListIterator[T], error)
}
