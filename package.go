// Package roundrobin provides a cooperative, single-threaded
// round-robin scheduler for resumable tasks. A task runs until it
// suspends itself or returns; the scheduler only decides which task
// runs next.
//
// Key components:
//
//   - Scheduler: Holds an ordered sequence of Runners. Tick advances
//     every live Runner by exactly one step in insertion order, Run
//     ticks until every Runner has terminated.
//
//   - Runner: The contract the Scheduler consumes. Anything that can
//     report its Status and be started or resumed can be scheduled.
//
//   - Task: A coroutine-backed Runner. The task body calls Suspend to
//     hand control back to whoever started or resumed it, and its
//     return value is available through Result once it terminates.
//
//   - Stepper: A Runner built from an explicit step function, for
//     computations that keep their own state between steps.
//
//   - Synchronization primitives: Mutex, WaitGroup, Queue and
//     ErrGroup let tasks on the same Scheduler coordinate. They never
//     block the thread; a waiting task suspends and checks again when
//     the Scheduler next resumes it.
//
// A Scheduler is not safe for concurrent use. Tasks, the Scheduler and
// its caller all take turns on a single logical thread of control.
package roundrobin
