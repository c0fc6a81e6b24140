package client

import "context"

// Executor schedules the work of non-blocking calls. The default executor
// spawns a goroutine per task; applications with their own worker pools
// can plug one in via WithExecutor.
type Executor interface {
	Go(task func())
}

// goroutineExecutor is the default Executor.
type goroutineExecutor struct{}

func (goroutineExecutor) Go(task func()) { go task() }

// Task is a scheduled, in-flight call that completes with a value of T.
// It is created by RequestBuilder.Submit after parameter resolution has
// already happened, so a pending task never touches shared client state.
type Task[T any] struct {
	done   chan struct{}
	result T
	err    error
	cancel context.CancelFunc
}

// Wait blocks until the task completes or ctx expires, and returns the
// task's outcome. It may be called any number of times.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		var zero T
		return zero, NewTimeoutError(ctx.Err())
	}
}

// Done returns a channel closed when the task completes.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Cancel aborts the in-flight call. The transport operation is torn down
// through context cancellation; no partial parsing or state mutation
// happens for a cancelled task.
func (t *Task[T]) Cancel() { t.cancel() }
