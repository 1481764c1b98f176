package roundrobin

import "github.com/gammazero/deque"

// sema queues tasks waiting for a condition. Waiters are admitted in
// arrival order: a task only proceeds once it is at the head of the
// queue and its condition holds.
type sema struct {
	noCopy noCopy
	w      deque.Deque[TaskBase]
}

// wait suspends t until ready reports true and every task that
// started waiting before t has been admitted. When nobody is queued
// and ready already holds it returns without suspending.
func (s *sema) wait(t TaskBase, ready func() bool) {
	if s.w.Len() == 0 && ready() {
		return
	}

	s.w.PushBack(t)
	t.Log("WAIT")

	for s.w.Front() != t || !ready() {
		t.Suspend()
	}

	s.w.PopFront()
}

// len returns the number of queued tasks.
func (s *sema) len() int {
	return s.w.Len()
}
