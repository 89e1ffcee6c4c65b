package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/sagernet/sing-dlist/common"
	E "github.com/sagernet/sing-dlist/common/exceptions"
	"github.com/sagernet/sing-dlist/common/x/constraints"
)

var ErrIndexOutOfRange = E.New("index out of range")

type node[T constraints.Number] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// List is a doubly-linked list of numbers. The zero value is an empty list
// ready to use.
//
// List is not safe for concurrent use. Mutating a list while ranging over
// All or Backward leaves the iteration result unspecified.
type List[T constraints.Number] struct {
	head *node[T]
	tail *node[T]
	len  int
}

func New[T constraints.Number]() *List[T] {
	return new(List[T])
}

func (l *List[T]) Count() int {
	return l.len
}

func (l *List[T]) IsEmpty() bool {
	return l.len == 0
}

// AddFirst inserts value at the head of the list.
func (l *List[T]) AddFirst(value T) {
	entry := &node[T]{value: value}
	if l.head == nil {
		l.head = entry
		l.tail = entry
	} else {
		entry.next = l.head
		l.head.prev = entry
		l.head = entry
	}
	l.len++
}

func (l *List[T]) Get(index int) (T, error) {
	entry, err := l.at(index)
	if err != nil {
		return common.DefaultValue[T](), err
	}
	return entry.value, nil
}

func (l *List[T]) RemoveAt(index int) error {
	entry, err := l.at(index)
	if err != nil {
		return err
	}
	l.remove(entry)
	return nil
}

func (l *List[T]) at(index int) (*node[T], error) {
	if index < 0 || index >= l.len {
		return nil, E.Cause(ErrIndexOutOfRange, "index ", index, " with count ", l.len)
	}
	entry := l.head
	for i := 0; i < index; i++ {
		entry = entry.next
	}
	return entry, nil
}

func (l *List[T]) remove(entry *node[T]) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		l.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		l.tail = entry.prev
	}
	entry.next = nil
	entry.prev = nil
	l.len--
}

// All returns a lazy head-to-tail sequence. Each call starts a new walk;
// the list must not be modified until the walk ends.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for entry := l.head; entry != nil; entry = entry.next {
			if !yield(entry.value) {
				return
			}
		}
	}
}

// Backward returns a lazy tail-to-head sequence following prev links.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for entry := l.tail; entry != nil; entry = entry.prev {
			if !yield(entry.value) {
				return
			}
		}
	}
}

func (l *List[T]) Array() []T {
	if l.len == 0 {
		return nil
	}
	array := make([]T, 0, l.len)
	for value := range l.All() {
		array = append(array, value)
	}
	return array
}

func (l *List[T]) String() string {
	return "[" + strings.Join(common.Map(l.Array(), func(it T) string {
		return fmt.Sprint(it)
	}), " ") + "]"
}
