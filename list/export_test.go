package list

// BreakBackLink clears the back link of the node at index.
func BreakBackLink[T any](l *List[T], index int) {
	l.nodeAt(index).prev = nil
}

// SetLen overwrites the stored length without touching the nodes.
func SetLen[T any](l *List[T], n int) {
	l.len = n
}
