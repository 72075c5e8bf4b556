package scheduler

import (
	"sync"
	"sync/atomic"
	"time"
)

// Locked runs every callback while holding mu. A callback whose task was
// canceled while it waited for the lock is dropped, so an owner that
// cancels its tasks under mu never sees one fire afterwards.
type Locked struct {
	inner Scheduler
	mu    sync.Locker
}

func NewLocked(inner Scheduler, mu sync.Locker) *Locked {
	return &Locked{inner: inner, mu: mu}
}

type guard struct {
	mu       sync.Mutex
	task     Task
	canceled atomic.Bool
	stop     chan struct{}
	once     sync.Once
}

func newGuard() *guard {
	return &guard{stop: make(chan struct{})}
}

func (g *guard) Cancel() {
	g.canceled.Store(true)
	g.once.Do(func() { close(g.stop) })
	g.mu.Lock()
	task := g.task
	g.mu.Unlock()
	if task != nil {
		task.Cancel()
	}
}

func (l *Locked) wrap(g *guard, fn func()) func() {
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if g.canceled.Load() {
			return
		}
		fn()
	}
}

func bind(g *guard, task Task) Task {
	g.mu.Lock()
	g.task = task
	g.mu.Unlock()
	if g.canceled.Load() {
		task.Cancel()
	}
	return g
}

func (l *Locked) AfterFunc(d time.Duration, fn func()) Task {
	g := newGuard()
	return bind(g, l.inner.AfterFunc(d, l.wrap(g, fn)))
}

func (l *Locked) Every(d time.Duration, fn func()) Task {
	g := newGuard()
	return bind(g, l.inner.Every(d, l.wrap(g, fn)))
}
