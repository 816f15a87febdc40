package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation. A Future is
// resolved exactly once; all readers observe the same result.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the computation completes and returns its result and
// error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for completion up to the given duration. If the
// timeout elapses first it returns ErrTimeout; the underlying computation is
// not interrupted and its eventual result is simply never read.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Resolved returns an already-completed Future carrying the given result.
// Useful for synchronous fast paths that share an asynchronous signature.
func Resolved[U any](result U, err error) *Future[U] {
	f := &Future[U]{result: result, err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Go executes fn in a new goroutine and returns a Future for its result.
// fn receives the context and the parameter; a context canceled before the
// goroutine starts resolves the Future with the context's error without
// calling fn.
func Go[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}
