package view

import (
	"sync"
	"time"
)

// AsideDelay is how long the pin affordance stays visible after the most
// recent Show. Showing again restarts the delay; earlier hides never fire.
const AsideDelay = 3 * time.Second

// Timer is the subset of *time.Timer used by Aside.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules fn after d. time.AfterFunc satisfies it once wrapped.
type AfterFunc func(d time.Duration, fn func()) Timer

// RealAfterFunc wraps time.AfterFunc.
func RealAfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Aside is the pin affordance shown briefly after a mode change on devices
// that cannot hover.
type Aside struct {
	mu       sync.Mutex
	visible  bool
	timer    Timer
	gen      uint64
	after    AfterFunc
	dispatch func(func())
	onChange func(visible bool)
}

// NewAside creates a hidden aside. dispatch delivers the hide callback onto
// the owner's event loop; onChange, if set, observes visibility changes.
func NewAside(after AfterFunc, dispatch func(func()), onChange func(bool)) *Aside {
	if after == nil {
		after = RealAfterFunc
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Aside{after: after, dispatch: dispatch, onChange: onChange}
}

// Show makes the aside visible and schedules it to hide after AsideDelay.
// A pending hide is cancelled so the aside always stays up for the full
// delay after the latest Show.
func (a *Aside) Show() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.gen++
	gen := a.gen
	a.timer = a.after(AsideDelay, func() {
		a.dispatch(func() { a.expire(gen) })
	})
	a.mu.Unlock()

	a.setVisible(true)
}

// Stop hides the aside and cancels a pending hide.
func (a *Aside) Stop() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.gen++
	a.mu.Unlock()

	a.setVisible(false)
}

// Visible reports whether the aside is shown.
func (a *Aside) Visible() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.visible
}

func (a *Aside) expire(gen uint64) {
	a.mu.Lock()
	// A stale timer that fired after being replaced does nothing.
	if a.gen != gen {
		a.mu.Unlock()
		return
	}
	a.timer = nil
	a.mu.Unlock()

	a.setVisible(false)
}

func (a *Aside) setVisible(v bool) {
	a.mu.Lock()
	changed := a.visible != v
	a.visible = v
	onChange := a.onChange
	a.mu.Unlock()

	if changed && onChange != nil {
		onChange(v)
	}
}
