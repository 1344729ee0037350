package list

import "github.com/emirpasic/gods/containers"

var _ containers.Container = containerView[int]{}

// Container returns a view of the list as a gods container.
// The view shares the list, Clear on the view clears the list.
func (l *List[T]) Container() containers.Container {
	return containerView[T]{list: l}
}

type containerView[T any] struct {
	list *List[T]
}

func (v containerView[T]) Empty() bool {
	return v.list.IsEmpty()
}

func (v containerView[T]) Size() int {
	return v.list.Len()
}

func (v containerView[T]) Clear() {
	v.list.Clear()
}

func (v containerView[T]) Values() []interface{} {
	values := make([]interface{}, 0, v.list.Len())
	for n := v.list.head; n != nil; n = n.next {
		values = append(values, n.Value)
	}
	return values
}

func (v containerView[T]) String() string {
	return v.list.String()
}
