// Package worker runs units of work in the background and hands their
// results back through a Task.
package worker

import (
	"context"
	"fmt"
)

// Task is the pending result of a function started with Run.
//
// A Task settles exactly once. After Done is closed, Wait and Await return
// the same value and error on every call.
type Task[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Run starts fn in its own goroutine and returns immediately.
// A panic in fn settles the task with an error instead of crashing the
// process.
func Run[T any](fn func() (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.err = fmt.Errorf("task panicked: %v", r)
			}
		}()

		t.val, t.err = fn()
	}()

	return t
}

// FromResult returns an already settled task.
func FromResult[T any](val T, err error) *Task[T] {
	t := &Task[T]{done: make(chan struct{}), val: val, err: err}
	close(t.done)
	return t
}

// Done is closed once the task has settled.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks the calling goroutine until the task settles.
func (t *Task[T]) Wait() (T, error) {
	<-t.done
	return t.val, t.err
}

// Await waits for the task or for ctx, whichever comes first. When ctx wins,
// the task keeps running; only the caller stops waiting.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// ContinueWith schedules fn to run once t has settled. fn receives the
// settled task, so it sees failures as well as results.
func ContinueWith[T, U any](t *Task[T], fn func(*Task[T]) (U, error)) *Task[U] {
	return Run(func() (U, error) {
		<-t.done
		return fn(t)
	})
}
