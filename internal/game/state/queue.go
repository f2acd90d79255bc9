package state

// Queue is a bounded FIFO backed by a ring buffer.
// The zero value is not usable; construct with NewQueue.
type Queue[T any] struct {
	buf   []T
	head  int
	count int
}

// NewQueue returns an empty Queue holding at most capacity items.
//
// Precondition: capacity must be > 0.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		panic("state.NewQueue: capacity must be > 0")
	}
	return &Queue[T]{buf: make([]T, capacity)}
}

// Push appends v to the tail.
//
// Postcondition: Returns false and leaves the queue unchanged when it is full.
func (q *Queue[T]) Push(v T) bool {
	if q.count == len(q.buf) {
		return false
	}
	q.buf[(q.head+q.count)%len(q.buf)] = v
	q.count++
	return true
}

// Pop removes and returns the head item.
//
// Postcondition: Returns (zero, false) when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return v, true
}

// Drain removes every item and returns them in FIFO order.
//
// Postcondition: Len() == 0; the result is non-nil.
func (q *Queue[T]) Drain() []T {
	out := make([]T, 0, q.count)
	for {
		v, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Items returns a copy of the queued items in FIFO order without removing them.
func (q *Queue[T]) Items() []T {
	out := make([]T, 0, q.count)
	for i := 0; i < q.count; i++ {
		out = append(out, q.buf[(q.head+i)%len(q.buf)])
	}
	return out
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.count }

// Cap returns the maximum number of items.
func (q *Queue[T]) Cap() int { return len(q.buf) }
