package userapi

import (
	"context"
	"sync"
)

// Result is the outcome of a single request: Value is meaningful only when
// Err is nil.
type Result[T any] struct {
	Value T
	Err   error
}

// Pending is the handle of an in-flight request. Exactly one [Result] is
// produced, whether or not Cancel was called.
type Pending[T any] struct {
	done   chan Result[T]
	ready  chan struct{}
	result Result[T]

	cancelOnce sync.Once
	cancel     context.CancelFunc
}

func newPending[T any](cancel context.CancelFunc) *Pending[T] {
	return &Pending[T]{
		done:   make(chan Result[T], 1),
		ready:  make(chan struct{}),
		cancel: cancel,
	}
}

// complete publishes the result. It must be called exactly once.
func (p *Pending[T]) complete(r Result[T]) {
	p.result = r
	close(p.ready)
	p.done <- r
	p.Cancel()
}

// Cancel requests best-effort cancellation of the in-flight request. If the
// transport has not finished, the result is a recoverable error. Calling
// Cancel more than once, or after completion, is a no-op.
func (p *Pending[T]) Cancel() {
	p.cancelOnce.Do(p.cancel)
}

// Done returns a channel that yields the result once. It is never closed.
func (p *Pending[T]) Done() <-chan Result[T] {
	return p.done
}

// Wait blocks until the result is available or ctx is done. Giving up on
// ctx does not cancel the request. Wait may be called any number of times,
// from any goroutine, independently of Done.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.ready:
		return p.result.Value, p.result.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Resolved returns a Pending that already holds the given outcome. It is
// meant for fakes and for short-circuiting invalid input.
func Resolved[T any](value T, err error) *Pending[T] {
	p := newPending[T](func() {})
	if err != nil {
		var zero T
		value = zero
	}
	p.complete(Result[T]{Value: value, Err: err})
	return p
}
