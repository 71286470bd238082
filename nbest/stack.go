package nbest

import "sort"

// item is one prioritized element of a Stack.
type item[T any] struct {
	priority float64
	value    T
}

// Stack is a capacity-bounded multiset ordered by descending priority.
//
// Equal priorities keep insertion order, so Pop returns them FIFO. When a
// Push exceeds the capacity the last element is evicted: the lowest
// priority and, among equal lowest priorities, the most recently inserted.
// A capacity <= 0 means unbounded.
//
// Push is O(n) (binary search plus shift); Top and Pop are O(1) amortized.
type Stack[T any] struct {
	items    []item[T]
	head     int
	capacity int
	evicted  int
}

// NewStack returns an empty Stack holding at most capacity elements.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{capacity: capacity}
}

// Push inserts value with the given priority, evicting on overflow.
// It reports whether value is still stored after the call.
func (s *Stack[T]) Push(priority float64, value T) bool {
	live := s.items[s.head:]
	// first position whose priority is strictly lower
	pos := sort.Search(len(live), func(i int) bool { return live[i].priority < priority })

	if s.capacity > 0 && len(live) >= s.capacity && pos == len(live) {
		s.evicted++
		return false
	}

	s.compact() // pos is relative to the live window, which now starts at 0
	s.items = append(s.items, item[T]{})
	copy(s.items[pos+1:], s.items[pos:])
	s.items[pos] = item[T]{priority: priority, value: value}

	if s.capacity > 0 && len(s.items) > s.capacity {
		var zero item[T]
		s.items[len(s.items)-1] = zero
		s.items = s.items[:len(s.items)-1]
		s.evicted++
	}

	return true
}

// Top returns the highest-priority element without removing it.
func (s *Stack[T]) Top() (float64, T, bool) {
	if s.Empty() {
		var zero T
		return 0, zero, false
	}
	it := s.items[s.head]

	return it.priority, it.value, true
}

// Pop removes and returns the highest-priority element.
func (s *Stack[T]) Pop() (float64, T, bool) {
	p, v, ok := s.Top()
	if ok {
		var zero item[T]
		s.items[s.head] = zero
		s.head++
	}

	return p, v, ok
}

// Len returns the number of stored elements.
func (s *Stack[T]) Len() int { return len(s.items) - s.head }

// Empty reports whether the stack holds no element.
func (s *Stack[T]) Empty() bool { return s.Len() == 0 }

// Evicted returns how many elements were dropped by overflow so far.
func (s *Stack[T]) Evicted() int { return s.evicted }

// Capacity returns the configured capacity (<= 0: unbounded).
func (s *Stack[T]) Capacity() int { return s.capacity }

// compact drops the popped prefix so indices are relative to the live window.
func (s *Stack[T]) compact() {
	if s.head == 0 {
		return
	}
	n := copy(s.items, s.items[s.head:])
	var zero item[T]
	for i := n; i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = s.items[:n]
	s.head = 0
}
