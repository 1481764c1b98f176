package roundrobin

// WaitGroup is used to wait for a collection of tasks to finish.
// Tasks call Add(1) when they start and Done() when they finish.
// Other tasks can call Wait() to suspend until all tasks have
// finished.
type WaitGroup struct {
	noCopy noCopy // Prevents copying of the WaitGroup
	v      int32  // Counter for the number of tasks
	w      uint32 // Number of tasks waiting
}

// Add adds delta to the WaitGroup counter. If the counter goes
// negative, Add panics.
func (wg *WaitGroup) Add(delta int) {
	wg.v += int32(delta)

	if wg.v < 0 {
		panic("roundrobin: negative WaitGroup counter")
	}
}

// Done decrements the WaitGroup counter by one. It's a convenience
// method equivalent to Add(-1).
func (wg *WaitGroup) Done() {
	wg.Add(-1)
}

// Wait suspends the calling task until the WaitGroup counter is zero.
// If the counter is already zero, it returns immediately.
func (wg *WaitGroup) Wait(task TaskBase) {
	if wg.v == 0 {
		return
	}

	wg.w++
	defer func() { wg.w-- }()

	task.Log("WAIT GROUP")
	for wg.v > 0 {
		task.Suspend()
	}
}

// WaitCount returns the number of tasks suspended in Wait.
func (wg *WaitGroup) WaitCount() int {
	return int(wg.w)
}
