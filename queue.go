package roundrobin

import "github.com/gammazero/deque"

// Queue is an unbounded FIFO that tasks on the same Scheduler use to
// hand values to each other. Pop suspends the calling task while the
// queue is empty; consumers are served in the order they arrived.
type Queue[T any] struct {
	noCopy noCopy
	buf    deque.Deque[T]
	recv   sema
	closed bool
}

// Push appends v. Pushing to a closed queue panics.
func (q *Queue[T]) Push(v T) {
	if q.closed {
		panic("roundrobin: push on closed queue")
	}
	q.buf.PushBack(v)
}

// TryPop removes and returns the oldest value without suspending.
func (q *Queue[T]) TryPop() (T, bool) {
	if q.buf.Len() == 0 {
		var z T
		return z, false
	}
	return q.buf.PopFront(), true
}

// Pop removes and returns the oldest value, suspending task while the
// queue is empty. It returns false once the queue is closed and
// drained.
func (q *Queue[T]) Pop(task TaskBase) (T, bool) {
	q.recv.wait(task, func() bool { return q.buf.Len() > 0 || q.closed })
	return q.TryPop()
}

// Close marks the queue as finished. Values already pushed can still
// be popped.
func (q *Queue[T]) Close() {
	q.closed = true
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int {
	return q.buf.Len()
}
