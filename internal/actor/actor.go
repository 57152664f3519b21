// Package actor provides the single-goroutine mailbox every per-entity worker
// in the ledger is built on. An Actor owns a state value and executes
// submitted closures against it strictly one at a time, in arrival order, so
// no two operations on the same entity ever run concurrently.
package actor

import (
	"errors"
	"sync"
	"time"
)

const (
	defaultTimeout  = time.Second
	defaultQueueCap = 64
)

var (
	// ErrStopped is returned when the actor no longer accepts requests.
	ErrStopped = errors.New("actor stopped")
	// ErrTimeout is returned when a request could not be enqueued or did
	// not complete within the caller's deadline. The request may still run
	// inside the actor; its effect is then silently discarded.
	ErrTimeout = errors.New("actor timeout")
)

type request[S any] struct {
	fn   func(*S)
	done chan struct{} // nil for fire-and-forget
}

// Actor owns one state value of type S. All access goes through Do, DoTimeout
// or Tell; the state itself never escapes the backing goroutine except by
// copies taken inside submitted closures.
type Actor[S any] struct {
	requests chan request[S]
	quit     chan struct{}
	stopOnce sync.Once
	timeout  time.Duration
}

// Option configures an Actor at start.
type Option func(*settings)

type settings struct {
	timeout  time.Duration
	queueCap int
}

// WithTimeout sets the default deadline for Do and Tell.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithQueueCap sets the capacity of the request queue.
func WithQueueCap(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.queueCap = n
		}
	}
}

// Go starts an actor owning the given state.
func Go[S any](state S, opts ...Option) *Actor[S] {
	cfg := settings{
		timeout:  defaultTimeout,
		queueCap: defaultQueueCap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Actor[S]{
		requests: make(chan request[S], cfg.queueCap),
		quit:     make(chan struct{}),
		timeout:  cfg.timeout,
	}
	go a.loop(state)
	return a
}

func (a *Actor[S]) loop(state S) {
	for {
		select {
		case <-a.quit:
			return
		case req := <-a.requests:
			req.fn(&state)
			if req.done != nil {
				close(req.done)
			}
		}
	}
}

// Do submits fn and waits for its completion using the actor's default
// deadline.
func (a *Actor[S]) Do(fn func(*S)) error {
	return a.DoTimeout(fn, a.timeout)
}

// DoTimeout submits fn and waits for its completion. The deadline covers both
// enqueueing and execution.
func (a *Actor[S]) DoTimeout(fn func(*S), timeout time.Duration) error {
	done := make(chan struct{})
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case a.requests <- request[S]{fn: fn, done: done}:
	case <-a.quit:
		return ErrStopped
	case <-timer.C:
		return ErrTimeout
	}

	select {
	case <-done:
		return nil
	case <-a.quit:
		// The loop may have finished the request right before stopping.
		select {
		case <-done:
			return nil
		default:
		}
		return ErrStopped
	case <-timer.C:
		return ErrTimeout
	}
}

// Tell enqueues fn without waiting for execution. Delivery is confirmed,
// completion is not.
func (a *Actor[S]) Tell(fn func(*S)) error {
	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	select {
	case a.requests <- request[S]{fn: fn}:
		return nil
	case <-a.quit:
		return ErrStopped
	case <-timer.C:
		return ErrTimeout
	}
}

// Stop terminates the actor. Pending requests are dropped; subsequent Do and
// Tell calls fail with ErrStopped. Stop is idempotent.
func (a *Actor[S]) Stop() {
	a.stopOnce.Do(func() {
		close(a.quit)
	})
}
