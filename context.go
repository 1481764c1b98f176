package roundrobin

import (
	"context"
)

// taskContextKey is a unique type used as a key for storing task
// values in a context.
type taskContextKey struct{}

// withTaskContext creates a new context with the task value stored in
// it. This allows the task to be retrieved from the context later.
func withTaskContext[R any](ctx context.Context, task *Task[R]) context.Context {
	return context.WithValue(ctx, taskContextKey{}, task)
}

// TaskFromContext retrieves a Task from a context with the specified
// result type. Returns the task and a boolean indicating whether the
// task was found and had the correct type.
func TaskFromContext[R any](ctx context.Context) (*Task[R], bool) {
	val, ok := ctx.Value(taskContextKey{}).(*Task[R])
	return val, ok
}

// TaskBaseFromContext retrieves a TaskBase from a context. Returns
// the task base and a boolean indicating whether a task was found in
// the context.
func TaskBaseFromContext(ctx context.Context) (TaskBase, bool) {
	val, ok := ctx.Value(taskContextKey{}).(TaskBase)
	return val, ok
}

// MustTaskBaseFromContext retrieves a TaskBase from a context,
// panicking if not found.
func MustTaskBaseFromContext(ctx context.Context) TaskBase {
	val, ok := ctx.Value(taskContextKey{}).(TaskBase)
	if !ok {
		panic("roundrobin: task base not found in context")
	}
	return val
}

// Suspend suspends the task carried by ctx.
func Suspend(ctx context.Context) {
	MustTaskBaseFromContext(ctx).Suspend()
}
