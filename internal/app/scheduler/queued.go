package scheduler

import (
	"sync"
	"time"
)

// Queued hands due callbacks to a single consumer instead of running them on
// timer goroutines. The terminal UI drains C from its update loop.
type Queued struct {
	inner Scheduler
	ch    chan func()
	done  chan struct{}
	once  sync.Once
}

func NewQueued(inner Scheduler) *Queued {
	return &Queued{
		inner: inner,
		ch:    make(chan func()),
		done:  make(chan struct{}),
	}
}

// C delivers due callbacks. Run them in the order received.
func (q *Queued) C() <-chan func() {
	return q.ch
}

// Done is closed once the queue is shut down
func (q *Queued) Done() <-chan struct{} {
	return q.done
}

// Close releases any timer goroutine blocked on delivery
func (q *Queued) Close() {
	q.once.Do(func() { close(q.done) })
}

func (q *Queued) deliver(g *guard, fn func()) func() {
	return func() {
		if g.canceled.Load() {
			return
		}
		select {
		case q.ch <- func() {
			if !g.canceled.Load() {
				fn()
			}
		}:
		case <-g.stop:
		case <-q.done:
		}
	}
}

func (q *Queued) AfterFunc(d time.Duration, fn func()) Task {
	g := newGuard()
	return bind(g, q.inner.AfterFunc(d, q.deliver(g, fn)))
}

func (q *Queued) Every(d time.Duration, fn func()) Task {
	g := newGuard()
	return bind(g, q.inner.Every(d, q.deliver(g, fn)))
}
