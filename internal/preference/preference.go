// Package preference delivers the operating system's light/dark preference
// to the control and notifies it of changes.
package preference

import (
	"context"
	"sync"
	"time"

	"github.com/Haocen/dark-mode-toggle/internal/platform"
	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/rs/zerolog"
)

// DefaultInterval is how often a Watcher polls the platform.
const DefaultInterval = 2 * time.Second

// Source is the OS color-scheme preference signal.
type Source interface {
	// Current returns the preference and whether one is known.
	Current() (scheme.Mode, bool)

	// Subscribe registers fn for preference changes and returns a function
	// that removes it.
	Subscribe(fn func(scheme.Mode)) (unsubscribe func())
}

// FromPlatform converts a platform theme to a mode.
func FromPlatform(t platform.Theme) scheme.Mode {
	if t == platform.ThemeDark {
		return scheme.Dark
	}
	return scheme.Light
}

type callbackWrapper struct {
	fn func(scheme.Mode)
}

// listeners is the subscriber list shared by Watcher and Manual.
type listeners struct {
	mu        sync.Mutex
	callbacks []*callbackWrapper
}

func (l *listeners) subscribe(fn func(scheme.Mode)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	wrapper := &callbackWrapper{fn: fn}
	l.callbacks = append(l.callbacks, wrapper)

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()

		for i, cb := range l.callbacks {
			if cb == wrapper {
				l.callbacks = append(l.callbacks[:i:i], l.callbacks[i+1:]...)
				return
			}
		}
	}
}

func (l *listeners) notify(m scheme.Mode) {
	l.mu.Lock()
	callbacks := make([]*callbackWrapper, len(l.callbacks))
	copy(callbacks, l.callbacks)
	l.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(m)
	}
}

func (l *listeners) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.callbacks)
}

// Watcher polls a platform theme service and reports changes.
type Watcher struct {
	svc      platform.ThemeService
	interval time.Duration
	dispatch func(func())
	log      zerolog.Logger

	mu      sync.Mutex
	current scheme.Mode
	subs    listeners
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithInterval sets the poll interval.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithDispatcher delivers change notifications through dispatch, typically
// a loop's Post, instead of on the polling goroutine.
func WithDispatcher(dispatch func(func())) WatcherOption {
	return func(w *Watcher) {
		if dispatch != nil {
			w.dispatch = dispatch
		}
	}
}

// WithLogger sets the watcher's logger.
func WithLogger(log zerolog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.log = log
	}
}

// NewWatcher creates a watcher and reads the initial preference.
func NewWatcher(svc platform.ThemeService, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		svc:      svc,
		interval: DefaultInterval,
		dispatch: func(fn func()) { fn() },
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.current = FromPlatform(svc.Detect())
	return w
}

// Current implements Source.
func (w *Watcher) Current() (scheme.Mode, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current, true
}

// Subscribe implements Source.
func (w *Watcher) Subscribe(fn func(scheme.Mode)) func() {
	return w.subs.subscribe(fn)
}

// Subscribers returns the number of registered callbacks.
func (w *Watcher) Subscribers() int {
	return w.subs.len()
}

// Refresh re-reads the platform preference and notifies subscribers if it
// changed. It returns the new preference.
func (w *Watcher) Refresh() scheme.Mode {
	next := FromPlatform(w.svc.Detect())

	w.mu.Lock()
	changed := next != w.current
	w.current = next
	w.mu.Unlock()

	if changed {
		w.log.Debug().Str("preference", string(next)).Msg("system color scheme changed")
		w.dispatch(func() { w.subs.notify(next) })
	}
	return next
}

// Run polls until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.Refresh()
		}
	}
}

// Manual is a Source whose value is set explicitly.
type Manual struct {
	mu    sync.Mutex
	mode  scheme.Mode
	known bool
	subs  listeners
}

// NewManual creates a source reporting mode. An empty mode means unknown.
func NewManual(mode scheme.Mode) *Manual {
	return &Manual{mode: mode, known: mode != ""}
}

// Current implements Source.
func (m *Manual) Current() (scheme.Mode, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode, m.known
}

// Subscribe implements Source.
func (m *Manual) Subscribe(fn func(scheme.Mode)) func() {
	return m.subs.subscribe(fn)
}

// Subscribers returns the number of registered callbacks.
func (m *Manual) Subscribers() int {
	return m.subs.len()
}

// Set changes the preference and notifies subscribers synchronously when it
// differs from the previous value.
func (m *Manual) Set(mode scheme.Mode) {
	m.mu.Lock()
	changed := !m.known || m.mode != mode
	m.mode, m.known = mode, true
	m.mu.Unlock()

	if changed {
		m.subs.notify(mode)
	}
}
