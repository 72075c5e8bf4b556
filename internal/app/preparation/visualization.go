package preparation

import (
	"time"

	"github.com/YelzhanWeb/aquave/internal/app/scheduler"
	"github.com/YelzhanWeb/aquave/internal/domain"
)

const (
	// DefaultTick is the interval between progress steps
	DefaultTick = 50 * time.Millisecond
	Complete    = 100
)

// Visualization is the decorative preparation view opened for a selected drink.
// Like the checkout sequencer it relies on its owner for serialisation.
type Visualization struct {
	drink    domain.Drink
	progress int
	tick     time.Duration
	sched    scheduler.Scheduler
	task     scheduler.Task
	open     bool
}

func New(sched scheduler.Scheduler, tick time.Duration) *Visualization {
	if sched == nil {
		sched = scheduler.New()
	}
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Visualization{sched: sched, tick: tick}
}

// Show opens the view for drink and restarts the progress from zero
func (v *Visualization) Show(drink domain.Drink) {
	v.stop()
	v.drink = drink
	v.progress = 0
	v.open = true
	v.task = v.sched.Every(v.tick, v.step)
}

func (v *Visualization) step() {
	if v.progress >= Complete {
		v.stop()
		return
	}
	v.progress++
	if v.progress >= Complete {
		v.stop()
	}
}

func (v *Visualization) stop() {
	if v.task != nil {
		v.task.Cancel()
		v.task = nil
	}
}

// Close hides the view and cancels the ticker
func (v *Visualization) Close() {
	v.stop()
	v.open = false
}

func (v *Visualization) Dispose() {
	v.Close()
}

func (v *Visualization) IsOpen() bool {
	return v.open
}

func (v *Visualization) Running() bool {
	return v.task != nil
}

type State struct {
	Open     bool          `json:"open"`
	Drink    *domain.Drink `json:"drink,omitempty"`
	Progress int           `json:"progress"`
	Done     bool          `json:"done"`
}

func (v *Visualization) State() State {
	st := State{Open: v.open, Progress: v.progress, Done: v.progress >= Complete}
	if v.open {
		d := v.drink.Clone()
		st.Drink = &d
	}
	return st
}
