/*
Package list implements a doubly linked list with a fail-fast bidirectional cursor.
*/
package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/mgnsk/dlist"
	"go.uber.org/zap"
)

var nopLogger = zap.NewNop()

var (
	_ dlist.IndexedList[int]  = (*List[int])(nil)
	_ dlist.ListIterator[int] = (*Cursor[int])(nil)
)

// List is a doubly linked list.
//
// Every insertion, removal and replacement increments the list version.
// Cursors remember the version they last observed and fail with
// dlist.ErrStaleCursor once it no longer matches.
//
// The zero value is a ready to use empty list that compares elements
// with ==. Comparing elements whose dynamic type is not comparable panics.
type List[T any] struct {
	head, tail *Node[T]
	eq         func(a, b T) bool
	log        *zap.Logger
	len        int
	version    uint64
}

// New creates an empty list of comparable elements.
func New[T comparable](opts ...Option) *List[T] {
	return NewFunc(func(a, b T) bool {
		return a == b
	}, opts...)
}

// NewFunc creates an empty list that uses eq to compare elements.
func NewFunc[T any](eq func(a, b T) bool, opts ...Option) *List[T] {
	o := newDefaultListOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	log := o.logger
	if o.name != "" {
		log = log.With(zap.String("list", o.name))
	}

	return &List[T]{
		eq:  eq,
		log: log,
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// Version returns the modification count of the list.
func (l *List[T]) Version() uint64 {
	return l.version
}

// Front returns the first node of the list or nil.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Back returns the last node of the list or nil.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

// AddToFront inserts a value at the front of the list.
func (l *List[T]) AddToFront(v T) {
	l.pushFront(&Node[T]{Value: v})
}

// AddToRear inserts a value at the back of the list.
func (l *List[T]) AddToRear(v T) {
	l.pushBack(&Node[T]{Value: v})
}

// Add inserts a value at the back of the list.
func (l *List[T]) Add(v T) {
	l.AddToRear(v)
}

// AddAfter inserts v immediately after the first element equal to target.
func (l *List[T]) AddAfter(v, target T) error {
	mark, _ := l.find(target)
	if mark == nil {
		return l.fail("AddAfter", dlist.ErrNotFound)
	}

	l.insertAfter(&Node[T]{Value: v}, mark)

	return nil
}

// Insert inserts v before the element currently at index.
// An index equal to Len appends v.
func (l *List[T]) Insert(index int, v T) error {
	if index < 0 || index > l.len {
		return l.fail("Insert", outOfBounds(index, l.len+1), zap.Int("index", index))
	}

	switch index {
	case 0:
		l.AddToFront(v)
	case l.len:
		l.AddToRear(v)
	default:
		l.insertBefore(&Node[T]{Value: v}, l.nodeAt(index))
	}

	return nil
}

// RemoveFirst removes and returns the first element.
func (l *List[T]) RemoveFirst() (T, error) {
	if l.head == nil {
		var zero T
		return zero, l.fail("RemoveFirst", dlist.ErrEmpty)
	}

	return l.remove(l.head), nil
}

// RemoveLast removes and returns the last element.
func (l *List[T]) RemoveLast() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, l.fail("RemoveLast", dlist.ErrEmpty)
	}

	return l.remove(l.tail), nil
}

// Remove removes and returns the first element equal to v.
func (l *List[T]) Remove(v T) (T, error) {
	var zero T

	if l.head == nil {
		return zero, l.fail("Remove", dlist.ErrEmpty)
	}

	n, _ := l.find(v)
	if n == nil {
		return zero, l.fail("Remove", dlist.ErrNotFound)
	}

	return l.remove(n), nil
}

// RemoveAt removes and returns the element at index.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.len {
		var zero T
		return zero, l.fail("RemoveAt", outOfBounds(index, l.len), zap.Int("index", index))
	}

	return l.remove(l.nodeAt(index)), nil
}

// Set replaces the element at index.
func (l *List[T]) Set(index int, v T) error {
	if index < 0 || index >= l.len {
		return l.fail("Set", outOfBounds(index, l.len), zap.Int("index", index))
	}

	l.nodeAt(index).Value = v
	l.version++

	return nil
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.len {
		var zero T
		return zero, l.fail("Get", outOfBounds(index, l.len), zap.Int("index", index))
	}

	return l.nodeAt(index).Value, nil
}

// IndexOf returns the index of the first element equal to v or -1.
func (l *List[T]) IndexOf(v T) int {
	_, i := l.find(v)
	return i
}

// Contains reports whether an element equal to v is in the list.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) != -1
}

// First returns the first element.
func (l *List[T]) First() (T, error) {
	if l.head == nil {
		var zero T
		return zero, l.fail("First", dlist.ErrEmpty)
	}

	return l.head.Value, nil
}

// Last returns the last element.
func (l *List[T]) Last() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, l.fail("Last", dlist.ErrEmpty)
	}

	return l.tail.Value, nil
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	if l.head == nil {
		return
	}

	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n.prev = nil
		n = next
	}

	l.head = nil
	l.tail = nil
	l.len = 0
	l.version++
}

// Values returns the elements of the list in order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.Value)
	}
	return values
}

// String formats the list as [e0, e1, ..., en].
func (l *List[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, n.Value)
	}
	sb.WriteByte(']')

	return sb.String()
}

// All returns an iterator over the elements in forward order.
//
// Modifying the list during iteration panics with dlist.ErrStaleCursor.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := l.Cursor()
		for {
			ok, err := c.HasNext()
			if err != nil {
				panic(err)
			}
			if !ok {
				return
			}

			v, err := c.Next()
			if err != nil {
				panic(err)
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in reverse order.
//
// Modifying the list during iteration panics with dlist.ErrStaleCursor.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := l.cursorAt(l.len)
		for {
			ok, err := c.HasPrevious()
			if err != nil {
				panic(err)
			}
			if !ok {
				return
			}

			v, err := c.Previous()
			if err != nil {
				panic(err)
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Iterator returns a forward cursor positioned before the first element.
func (l *List[T]) Iterator() dlist.Iterator[T] {
	return l.Cursor()
}

// ListIterator returns a cursor positioned before the first element.
func (l *List[T]) ListIterator() dlist.ListIterator[T] {
	return l.Cursor()
}

// ListIteratorAt returns a cursor positioned before index.
func (l *List[T]) ListIteratorAt(index int) (dlist.ListIterator[T], error) {
	c, err := l.CursorAt(index)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (l *List[T]) equal(a, b T) bool {
	if l.eq != nil {
		return l.eq(a, b)
	}
	return any(a) == any(b)
}

func (l *List[T]) logger() *zap.Logger {
	if l.log == nil {
		return nopLogger
	}
	return l.log
}

// fail logs a failed operation and returns err.
func (l *List[T]) fail(op string, err error, fields ...zap.Field) error {
	if ce := l.logger().Check(zap.DebugLevel, "list operation failed"); ce != nil {
		ce.Write(append(fields,
			zap.String("op", op),
			zap.Int("len", l.len),
			zap.Uint64("version", l.version),
			zap.Error(err),
		)...)
	}
	return err
}

func outOfBounds(index, limit int) error {
	return fmt.Errorf("%w: index %d, valid range [0, %d)", dlist.ErrOutOfBounds, index, limit)
}

// find returns the first node equal to v and its index, or nil and -1.
func (l *List[T]) find(v T) (*Node[T], int) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if l.equal(n.Value, v) {
			return n, i
		}
		i++
	}
	return nil, -1
}

// nodeAt walks from the front to the node at index.
// index must be in [0, l.len].
func (l *List[T]) nodeAt(index int) *Node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

func (l *List[T]) pushFront(n *Node[T]) {
	if l.head == nil {
		l.tail = n
	} else {
		l.head.linkBefore(n)
	}
	l.head = n
	l.len++
	l.version++
}

func (l *List[T]) pushBack(n *Node[T]) {
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.linkAfter(n)
	}
	l.tail = n
	l.len++
	l.version++
}

// insertBefore inserts n before mark. A nil mark appends n.
func (l *List[T]) insertBefore(n, mark *Node[T]) {
	switch mark {
	case nil:
		l.pushBack(n)
	case l.head:
		l.pushFront(n)
	default:
		mark.linkBefore(n)
		l.len++
		l.version++
	}
}

func (l *List[T]) insertAfter(n, mark *Node[T]) {
	if mark == l.tail {
		l.pushBack(n)
		return
	}
	mark.linkAfter(n)
	l.len++
	l.version++
}

// remove unlinks n and returns its value.
func (l *List[T]) remove(n *Node[T]) T {
	if n == l.head {
		l.head = n.next
	}
	if n == l.tail {
		l.tail = n.prev
	}
	n.unlink()
	l.len--
	l.version++
	return n.Value
}
