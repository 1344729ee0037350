package list

import (
	"github.com/mgnsk/dlist"
	"go.uber.org/zap"
)

// Cursor is a bidirectional list cursor.
//
// A cursor sits in the gap between two elements. Next and Previous
// step over an element and remember it so that Set or Remove can act on it.
// Changes made through the cursor keep it valid; any other change to the
// list makes every method fail with dlist.ErrStaleCursor.
type Cursor[T any] struct {
	list *List[T]
	// next is the node returned by Next, nil past the back of the list.
	next *Node[T]
	// last is the node returned by the latest Next or Previous.
	last      *Node[T]
	nextIndex int
	version   uint64
}

// Cursor returns a cursor positioned before the first element.
func (l *List[T]) Cursor() *Cursor[T] {
	return l.cursorAt(0)
}

// CursorAt returns a cursor positioned before the element at index.
// An index equal to Len positions the cursor after the last element.
func (l *List[T]) CursorAt(index int) (*Cursor[T], error) {
	if index < 0 || index > l.len {
		return nil, l.fail("CursorAt", outOfBounds(index, l.len+1), zap.Int("index", index))
	}

	return l.cursorAt(index), nil
}

func (l *List[T]) cursorAt(index int) *Cursor[T] {
	c := &Cursor[T]{
		list:      l,
		nextIndex: index,
		version:   l.version,
	}

	if index < l.len {
		c.next = l.nodeAt(index)
	}

	return c
}

// HasNext reports whether Next would return an element.
func (c *Cursor[T]) HasNext() (bool, error) {
	if err := c.validate("HasNext"); err != nil {
		return false, err
	}

	return c.nextIndex < c.list.len, nil
}

// Next returns the next element and advances the cursor.
func (c *Cursor[T]) Next() (T, error) {
	var zero T

	ok, err := c.HasNext()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, c.list.fail("Cursor.Next", dlist.ErrNoSuchElement, zap.Int("next_index", c.nextIndex))
	}

	c.last = c.next
	c.next = c.next.next
	c.nextIndex++

	return c.last.Value, nil
}

// HasPrevious reports whether Previous would return an element.
func (c *Cursor[T]) HasPrevious() (bool, error) {
	if err := c.validate("HasPrevious"); err != nil {
		return false, err
	}

	return c.nextIndex > 0, nil
}

// Previous returns the previous element and moves the cursor backwards.
func (c *Cursor[T]) Previous() (T, error) {
	var zero T

	ok, err := c.HasPrevious()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, c.list.fail("Cursor.Previous", dlist.ErrNoSuchElement, zap.Int("next_index", c.nextIndex))
	}

	if c.next == nil {
		c.next = c.list.tail
	} else {
		c.next = c.next.prev
	}
	c.last = c.next
	c.nextIndex--

	return c.last.Value, nil
}

// NextIndex returns the index of the element Next would return.
func (c *Cursor[T]) NextIndex() (int, error) {
	if err := c.validate("NextIndex"); err != nil {
		return 0, err
	}

	return c.nextIndex, nil
}

// PreviousIndex returns the index of the element Previous would return.
// It is -1 at the front of the list.
func (c *Cursor[T]) PreviousIndex() (int, error) {
	if err := c.validate("PreviousIndex"); err != nil {
		return 0, err
	}

	return c.nextIndex - 1, nil
}

// Remove removes the element last returned by Next or Previous.
func (c *Cursor[T]) Remove() error {
	if err := c.validate("Cursor.Remove"); err != nil {
		return err
	}

	if c.last == nil {
		return c.list.fail("Cursor.Remove", dlist.ErrInvalidCursorState, zap.Int("next_index", c.nextIndex))
	}

	if c.last == c.next {
		// Reached by Previous: the gap stays, the cursor now faces the successor.
		c.next = c.last.next
	} else {
		// Reached by Next: one element fewer precedes the gap.
		c.nextIndex--
	}

	c.list.remove(c.last)
	c.last = nil
	c.version = c.list.version

	return nil
}

// Set replaces the element last returned by Next or Previous.
func (c *Cursor[T]) Set(v T) error {
	if err := c.validate("Cursor.Set"); err != nil {
		return err
	}

	if c.last == nil {
		return c.list.fail("Cursor.Set", dlist.ErrInvalidCursorState, zap.Int("next_index", c.nextIndex))
	}

	c.last.Value = v
	c.last = nil
	c.list.version++
	c.version = c.list.version

	return nil
}

// Add inserts v into the gap before the cursor.
// A following Next is unaffected, a following Previous returns v.
func (c *Cursor[T]) Add(v T) error {
	if err := c.validate("Cursor.Add"); err != nil {
		return err
	}

	c.list.insertBefore(&Node[T]{Value: v}, c.next)
	c.nextIndex++
	c.last = nil
	c.version = c.list.version

	return nil
}

func (c *Cursor[T]) validate(op string) error {
	if c.version != c.list.version {
		return c.list.fail(op, dlist.ErrStaleCursor,
			zap.Uint64("cursor_version", c.version),
			zap.Int("next_index", c.nextIndex),
		)
	}
	return nil
}
