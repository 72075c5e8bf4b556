package scheduler

import (
	"sync"
	"sync/atomic"
	"time"
)

// Task is a pending timer or ticker
type Task interface {
	Cancel()
}

// Scheduler runs callbacks after a delay or on a fixed interval.
// Cancel must be safe to call from inside the callback it cancels.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
	Every(d time.Duration, fn func()) Task
}

// Real is backed by the runtime timers
type Real struct{}

func New() Real {
	return Real{}
}

type timerTask struct {
	timer    *time.Timer
	canceled atomic.Bool
}

func (t *timerTask) Cancel() {
	t.canceled.Store(true)
	t.timer.Stop()
}

func (Real) AfterFunc(d time.Duration, fn func()) Task {
	t := &timerTask{}
	t.timer = time.AfterFunc(d, func() {
		if t.canceled.Load() {
			return
		}
		fn()
	})
	return t
}

type tickerTask struct {
	stop chan struct{}
	once sync.Once
}

func (t *tickerTask) Cancel() {
	t.once.Do(func() { close(t.stop) })
}

// Every starts a ticker goroutine. It exits once the task is canceled.
func (Real) Every(d time.Duration, fn func()) Task {
	if d <= 0 {
		panic("scheduler: non-positive interval for Every")
	}
	t := &tickerTask{stop: make(chan struct{})}
	ticker := time.NewTicker(d)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				select {
				case <-t.stop:
					return
				default:
				}
				fn()
			}
		}
	}()

	return t
}
