package list

// IndexOfFirstLessThanAverage returns the position of the first element
// strictly below the arithmetic mean, or -1 if there is none. An empty list
// has no mean and yields -1.
func (l *List[T]) IndexOfFirstLessThanAverage() int {
	if l.len == 0 {
		return -1
	}
	var sum float64
	for value := range l.All() {
		sum += float64(value)
	}
	average := sum / float64(l.len)
	var index int
	for value := range l.All() {
		if float64(value) < average {
			return index
		}
		index++
	}
	return -1
}

// SumAfterMax sums every element after the first maximum. It returns 0 for
// an empty list.
func (l *List[T]) SumAfterMax() float64 {
	maxNode := l.maxNode()
	if maxNode == nil {
		return 0
	}
	var sum float64
	for entry := maxNode.next; entry != nil; entry = entry.next {
		sum += float64(entry.value)
	}
	return sum
}

// GetElementsGreaterThan copies every element greater than threshold into a
// new list. Matches are added with AddFirst while walking from the head, so
// the result holds them in reverse source order.
func (l *List[T]) GetElementsGreaterThan(threshold T) *List[T] {
	result := New[T]()
	for value := range l.All() {
		if value > threshold {
			result.AddFirst(value)
		}
	}
	return result
}

// RemoveBeforeMax drops every element in front of the first maximum, which
// becomes the new head. Count is reduced by the number of dropped elements.
func (l *List[T]) RemoveBeforeMax() {
	maxNode := l.maxNode()
	if maxNode == nil || maxNode == l.head {
		return
	}
	var dropped int
	for entry := l.head; entry != maxNode; {
		next := entry.next
		entry.next = nil
		entry.prev = nil
		entry = next
		dropped++
	}
	maxNode.prev = nil
	l.head = maxNode
	l.len -= dropped
}

// maxNode returns the first node holding the largest value, or nil.
func (l *List[T]) maxNode() *node[T] {
	maxNode := l.head
	for entry := l.head; entry != nil; entry = entry.next {
		if entry.value > maxNode.value {
			maxNode = entry
		}
	}
	return maxNode
}
