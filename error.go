package dlist

import "errors"

var (
	// ErrOutOfBounds indicates an index outside the valid range of an operation.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrEmpty indicates an operation that requires at least one element was called on an empty list.
	ErrEmpty = errors.New("list is empty")

	// ErrNotFound indicates no element equal to the given value was found.
	ErrNotFound = errors.New("element not found")

	// ErrNoSuchElement indicates a cursor step past either end of the list.
	ErrNoSuchElement = errors.New("no such element")

	// ErrInvalidCursorState indicates Set or Remove was called on a cursor
	// that has not returned an element since its last mutation.
	ErrInvalidCursorState = errors.New("cursor has no current element")

	// ErrStaleCursor indicates the list was modified by something other than the cursor.
	ErrStaleCursor = errors.New("stale cursor: list was modified")
)
