package roundrobin

import "context"

// ErrGroup runs a group of tasks on a Scheduler and collects the
// first error that occurs.
type ErrGroup struct {
	sched  *Scheduler              // Scheduler the group's tasks are added to
	ctx    context.Context         // Context shared by all tasks in the group
	cancel context.CancelCauseFunc // Cancels ctx with the first error
	wg     WaitGroup               // Tracks unfinished tasks
	err    error                   // The first error encountered by any task
}

// NewErrGroup creates a group whose tasks are added to sched. The
// returned context is cancelled with the first error any task in the
// group returns, or when Wait returns.
func NewErrGroup(ctx context.Context, sched *Scheduler) (*ErrGroup, context.Context) {
	ctx, cancel := context.WithCancelCause(ctx)
	return &ErrGroup{sched: sched, ctx: ctx, cancel: cancel}, ctx
}

// Go adds a task running f to the Scheduler. The task starts on the
// Scheduler's next visit. An error from f is recorded by the group
// and does not propagate out of the Scheduler's Tick.
func (g *ErrGroup) Go(f func(context.Context) error) {
	g.wg.Add(1)
	g.sched.Add(NewFunc(g.ctx, func(ctx context.Context) error {
		defer g.wg.Done()
		if err := f(ctx); err != nil && g.err == nil {
			g.err = err
			g.cancel(err)
		}
		return nil
	}))
}

// Wait suspends task until all tasks in the group have finished. It
// returns the first error encountered by any task, or nil.
func (g *ErrGroup) Wait(task TaskBase) error {
	g.wg.Wait(task)
	g.cancel(g.err)
	return g.err
}

// Err returns the first error recorded so far without waiting.
func (g *ErrGroup) Err() error {
	return g.err
}
