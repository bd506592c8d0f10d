package widget

import (
	"github.com/Haocen/dark-mode-toggle/internal/bus"
	"github.com/Haocen/dark-mode-toggle/internal/persist"
	"github.com/Haocen/dark-mode-toggle/internal/preference"
	"github.com/Haocen/dark-mode-toggle/internal/stylesheet"
	"github.com/Haocen/dark-mode-toggle/internal/view"
	"github.com/rs/zerolog"
)

// Option configures a Widget.
type Option func(*Widget)

// WithID sets the instance identifier used as the event origin.
func WithID(id string) Option {
	return func(w *Widget) {
		if id != "" {
			w.id = id
		}
	}
}

// WithBus connects the widget to a shared page-wide bus. Without it the
// widget publishes to a private bus.
func WithBus(b *bus.Bus) Option {
	return func(w *Widget) {
		if b != nil {
			w.bus = b
		}
	}
}

// WithStore sets the persistence adapter for the pinned mode.
func WithStore(a *persist.Adapter) Option {
	return func(w *Widget) {
		w.store = a
	}
}

// WithPreference sets the OS preference source.
func WithPreference(src preference.Source) Option {
	return func(w *Widget) {
		w.pref = src
	}
}

// WithStylesheets sets the switcher for the host page's stylesheets.
func WithStylesheets(s *stylesheet.Switcher) Option {
	return func(w *Widget) {
		w.sheets = s
	}
}

// WithDispatcher sets how timer callbacks re-enter the widget. Pass the
// owning loop's Dispatch so they run serially with everything else.
func WithDispatcher(dispatch func(func())) Option {
	return func(w *Widget) {
		if dispatch != nil {
			w.dispatch = dispatch
		}
	}
}

// WithCoarsePointer marks the device as unable to hover, which enables the
// pin affordance after mode changes.
func WithCoarsePointer(coarse bool) Option {
	return func(w *Widget) {
		w.coarsePointer = coarse
	}
}

// WithAfterFunc replaces the timer used by the pin affordance.
func WithAfterFunc(after view.AfterFunc) Option {
	return func(w *Widget) {
		w.after = after
	}
}

// WithLogger sets the widget's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(w *Widget) {
		w.log = log
	}
}
