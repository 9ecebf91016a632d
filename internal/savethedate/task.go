// internal/savethedate/task.go
package savethedate

import (
	"context"
	"errors"
	"sync"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskSucceeded TaskStatus = "succeeded"
	TaskFailed    TaskStatus = "failed"
	TaskCancelled TaskStatus = "cancelled"
)

// Task runs one long operation (a render or a share) in the background.
// Cancelling a task, or its parent context, finishes it at once; a result the
// function produces afterwards is dropped.
type Task[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}

	once   sync.Once
	mu     sync.Mutex
	status TaskStatus
	value  T
	err    error
}

// Start runs fn on its own goroutine with a context derived from ctx.
func Start[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{cancel: cancel, done: make(chan struct{}), status: TaskPending}

	go func() {
		v, err := fn(ctx)
		if err != nil {
			t.finish(v, err, statusFor(ctx, err))
			return
		}
		t.finish(v, nil, TaskSucceeded)
	}()
	go func() {
		<-ctx.Done()
		var zero T
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			t.finish(zero, ctx.Err(), TaskFailed)
			return
		}
		t.finish(zero, ctx.Err(), TaskCancelled)
	}()
	return t
}

func statusFor(ctx context.Context, err error) TaskStatus {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return TaskCancelled
	}
	return TaskFailed
}

// finish records the first outcome only.
func (t *Task[T]) finish(v T, err error, status TaskStatus) {
	t.once.Do(func() {
		t.mu.Lock()
		t.value, t.err, t.status = v, err, status
		t.mu.Unlock()
		t.cancel()
		close(t.done)
	})
}

// Cancel stops the task. It is a no-op once the task has finished.
func (t *Task[T]) Cancel() { t.cancel() }

func (t *Task[T]) Done() <-chan struct{} { return t.done }

func (t *Task[T]) Status() TaskStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Wait blocks until the task finishes or ctx is done.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
