package roundrobin

// Mutex provides mutual exclusion for tasks on the same Scheduler.
// Only one task holds the lock at a time; the others suspend until it
// is their turn, in the order they called Lock.
type Mutex struct {
	noCopy noCopy   // Prevents copying of the mutex
	r      TaskBase // Task currently holding the lock
	sema   sema     // Queue of tasks waiting for the lock
}

// Lock acquires the mutex for the given task, suspending the task
// while another task holds it.
func (m *Mutex) Lock(task TaskBase) {
	m.sema.wait(task, func() bool { return m.r == nil })
	m.r = task
}

// Unlock releases the mutex. The longest waiting task acquires it the
// next time it is resumed.
func (m *Mutex) Unlock() {
	if m.r == nil {
		panic("roundrobin: unlock of unlocked mutex")
	}
	m.r = nil
}

// WaitCount returns the number of tasks waiting to acquire the mutex.
func (m *Mutex) WaitCount() int {
	return m.sema.len()
}
