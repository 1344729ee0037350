package list

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	errLenMismatch = errors.New("length does not match head and tail")
	errHeadPrev    = errors.New("head has a previous node")
	errTailNext    = errors.New("tail has a next node")
)

// Check verifies the structure of the list and returns every violation found.
//
// The length must agree with the presence of head and tail, a forward walk from
// the head must reach the tail in exactly Len steps and every node must point
// back to its predecessor.
func (l *List[T]) Check() error {
	var err error

	if (l.len == 0) != (l.head == nil) || (l.head == nil) != (l.tail == nil) {
		err = multierr.Append(err, fmt.Errorf("%w: len %d", errLenMismatch, l.len))
	}

	if l.head != nil && l.head.prev != nil {
		err = multierr.Append(err, errHeadPrev)
	}

	if l.tail != nil && l.tail.next != nil {
		err = multierr.Append(err, errTailNext)
	}

	var (
		prev  *Node[T]
		count int
	)

	// Bounded by len so that a cycle cannot hang the walk.
	for n := l.head; n != nil && count <= l.len; n = n.next {
		if n.prev != prev {
			err = multierr.Append(err, fmt.Errorf("node %d: broken back link", count))
		}
		prev = n
		count++
	}

	if count != l.len {
		err = multierr.Append(err, fmt.Errorf("forward walk visited %d nodes, len is %d", count, l.len))
	}

	if prev != l.tail {
		err = multierr.Append(err, errors.New("forward walk does not end at tail"))
	}

	return err
}
