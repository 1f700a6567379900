package frontier

// Queue is a FIFO Frontier.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue with room for capacity elements.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Push appends x to the back.
func (q *Queue[T]) Push(x T) {
	q.items = append(q.items, x)
}

// Pop removes the front element.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmpty
	}
	x := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	// reclaim the consumed prefix once it dominates the buffer
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return x, nil
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// IsEmpty reports whether the queue is empty.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }

// Stack is a LIFO Frontier.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack with room for capacity elements.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places x on top.
func (s *Stack[T]) Push(x T) {
	s.items = append(s.items, x)
}

// Pop removes the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmpty
	}
	x := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return x, nil
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack is empty.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
