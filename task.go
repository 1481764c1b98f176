package roundrobin

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"
	"strings"

	"github.com/google/uuid"
	"github.com/webriots/coro"
)

const (
	taskTraceTaskType   = "roundrobin-run"
	taskTraceRegionType = "roundrobin-task"
	taskTraceCategory   = "roundrobin"
)

var (
	// ErrTaskState is returned when a Runner is started or resumed in
	// a state that does not allow it.
	ErrTaskState = errors.New("roundrobin: invalid task state")

	// ErrNotTerminated is returned by Result before the task has
	// finished.
	ErrNotTerminated = errors.New("roundrobin: task has not terminated")
)

// Status is the lifecycle state of a Runner.
type Status uint8

const (
	NotStarted Status = iota
	Running
	Suspended
	Terminated
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// TaskBase is the part of a task that synchronization primitives and
// task bodies need: an identity, its state and a way to give control
// back.
type TaskBase interface {
	ID() string
	Status() Status
	Suspend()

	Log(string)
	Logf(string, ...any)
}

// Task is a coroutine-backed Runner producing a value of type R.
type Task[R any] struct {
	ctx     context.Context
	id      uuid.UUID
	status  Status
	suspend func() struct{}
	resume  func(struct{}) (struct{}, bool)
	result  R
	err     error
}

// NewTask creates a task that will run fn when it is first started.
// The context passed to fn carries the task, so helpers such as
// Suspend and TaskFromContext work from inside the body.
func NewTask[R any](
	ctx context.Context,
	fn func(context.Context, *Task[R]) (R, error),
) *Task[R] {
	task := &Task[R]{id: uuid.New()}
	task.ctx = withTaskContext(ctx, task)

	task.resume, _ = coro.New(
		func(_ func(struct{}) struct{}, suspend func() struct{}) (z struct{}) {
			region := trace.StartRegion(task.ctx, taskTraceRegionType)
			defer region.End()

			task.suspend = suspend
			task.result, task.err = fn(task.ctx, task)

			return
		},
	)

	return task
}

// NewFunc creates a task from a body that only needs a context. The
// body suspends through Suspend(ctx).
func NewFunc(ctx context.Context, fn func(context.Context) error) *Task[struct{}] {
	return NewTask(ctx, func(ctx context.Context, _ *Task[struct{}]) (z struct{}, err error) {
		err = fn(ctx)
		return
	})
}

// ID returns the unique identifier of the task.
func (t *Task[R]) ID() string {
	return t.id.String()
}

// Status reports the current state of the task. It has no side
// effects.
func (t *Task[R]) Status() Status {
	return t.status
}

// Start runs the body of a task that has not started yet until it
// suspends or returns.
func (t *Task[R]) Start() error {
	if t.status != NotStarted {
		return fmt.Errorf("%w: start %v task", ErrTaskState, t.status)
	}
	t.Log("START")
	return t.step()
}

// Resume continues a suspended task from its last suspension point
// until it suspends again or returns.
func (t *Task[R]) Resume() error {
	if t.status != Suspended {
		return fmt.Errorf("%w: resume %v task", ErrTaskState, t.status)
	}
	t.Log("RESUME")
	return t.step()
}

// Suspend gives control back to the Start or Resume call driving the
// task. It must only be called from the task's own body.
func (t *Task[R]) Suspend() {
	if t.status != Running {
		panic("roundrobin: suspend of task that is not running")
	}
	t.Log("SUSPEND")
	t.suspend()
}

// Result returns the value and error the body returned. It fails with
// ErrNotTerminated until the task has finished.
func (t *Task[R]) Result() (R, error) {
	if t.status != Terminated {
		var z R
		return z, ErrNotTerminated
	}
	return t.result, t.err
}

func (t *Task[R]) step() error {
	t.status = Running

	// A panic in the body unwinds through resume and leaves the
	// coroutine dead.
	defer func() {
		if t.status == Running {
			t.status = Terminated
		}
	}()

	if _, ok := t.resume(struct{}{}); ok {
		t.status = Suspended
		return nil
	}

	t.status = Terminated
	if t.err != nil {
		t.Logf("FAILED %v", t.err)
	} else {
		t.Log("DONE")
	}
	return t.err
}

func (t *Task[R]) Log(msg string) {
	if trace.IsEnabled() {
		var sb strings.Builder
		sb.WriteString(t.ID())
		sb.WriteRune(' ')
		sb.WriteString(msg)
		trace.Log(t.ctx, taskTraceCategory, sb.String())
	}
}

func (t *Task[R]) Logf(format string, args ...any) {
	if trace.IsEnabled() {
		var sb strings.Builder
		sb.WriteString(t.ID())
		sb.WriteRune(' ')
		fmt.Fprintf(&sb, format, args...)
		trace.Log(t.ctx, taskTraceCategory, sb.String())
	}
}
