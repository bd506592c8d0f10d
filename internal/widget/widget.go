// Package widget implements the light/dark control: it keeps the canonical
// state, validates attribute writes, renders every representation, switches
// the host's stylesheets, persists pinned choices and keeps sibling
// instances in step through the shared bus.
//
// A Widget is not safe for concurrent use. Hosts that receive callbacks on
// other goroutines post them to a single loop (see package loop) and pass
// the loop's Dispatch to WithDispatcher.
package widget

import (
	"fmt"
	"sync/atomic"

	"github.com/Haocen/dark-mode-toggle/internal/attrs"
	"github.com/Haocen/dark-mode-toggle/internal/bus"
	"github.com/Haocen/dark-mode-toggle/internal/persist"
	"github.com/Haocen/dark-mode-toggle/internal/preference"
	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/Haocen/dark-mode-toggle/internal/stylesheet"
	"github.com/Haocen/dark-mode-toggle/internal/view"
	"github.com/rs/zerolog"
)

var instances atomic.Uint64

// Widget is one control instance.
type Widget struct {
	id     string
	attrs  *attrs.Attributes
	state  state
	views  view.Views
	aside  *view.Aside
	bus    *bus.Bus
	store  *persist.Adapter
	pref   preference.Source
	sheets *stylesheet.Switcher
	log    zerolog.Logger

	dispatch      func(func())
	after         view.AfterFunc
	coarsePointer bool

	attached    bool
	unsubscribe []func()
}

// New creates a detached widget. Attributes may be set before Attach; they
// are validated but trigger no notifications until the widget is attached.
func New(opts ...Option) *Widget {
	w := &Widget{
		id:       fmt.Sprintf("%s-%d", persist.Key, instances.Add(1)),
		attrs:    attrs.New(),
		state:    newState(),
		log:      zerolog.Nop(),
		dispatch: func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.bus == nil {
		w.bus = bus.New()
	}
	if w.store == nil {
		w.store = persist.NewAdapter(nil)
	}
	if w.sheets == nil {
		w.sheets = stylesheet.NewSwitcher(nil)
	}
	w.log = w.log.With().Str("widget", w.id).Logger()
	w.aside = view.NewAside(w.after, w.dispatch, nil)
	w.attrs.Observe(w.attributeChanged)
	w.views = view.Compute(w.state.snapshot())
	return w
}

// ID returns the instance identifier.
func (w *Widget) ID() string {
	return w.id
}

// Bus returns the bus the widget publishes to.
func (w *Widget) Bus() *bus.Bus {
	return w.bus
}

// Attached reports whether the widget is attached.
func (w *Widget) Attached() bool {
	return w.attached
}

// Attach resolves the initial state and starts listening. The mode comes
// from the remembered record, then the OS preference, then a mode attribute
// set before attaching, and finally light. A permanent attribute set before
// attaching keeps its mode over the OS preference.
func (w *Widget) Attach() error {
	if w.attached {
		return nil
	}

	presetMode := w.state.mode
	presetPermanent := w.state.permanent

	mode, permanent := scheme.Light, presetPermanent
	remembered, res := w.store.Read()
	osMode, osKnown := w.currentPreference()

	switch {
	case res == persist.OK:
		mode, permanent = remembered, true
	case presetPermanent && presetMode.Valid():
		mode = presetMode
	case osKnown:
		mode = osMode
	case presetMode.Valid():
		mode = presetMode
	}

	if err := w.attrs.SetString(attrs.Mode, string(mode)); err != nil {
		return err
	}
	if err := w.attrs.SetBool(attrs.Permanent, permanent); err != nil {
		return err
	}

	w.attached = true
	if w.pref != nil {
		w.unsubscribe = append(w.unsubscribe, w.pref.Subscribe(w.preferenceChanged))
	}
	w.unsubscribe = append(w.unsubscribe, w.bus.Subscribe(w.busEvent))

	w.log.Debug().
		Str("mode", string(mode)).
		Bool("permanent", permanent).
		Str("remembered", res.String()).
		Msg("attached")

	w.render()
	w.sheets.Apply(mode)
	w.emit(bus.ColorSchemeChange{ColorScheme: mode})
	if permanent {
		// Pinned is a change from the unpinned default; unpinned is not
		// announced so a pinned sibling is left alone.
		w.emit(bus.PermanentColorScheme{Permanent: true})
		w.persist()
	}
	return nil
}

// Detach releases the OS preference and bus subscriptions and stops the
// pin affordance timer. The persisted record is left in place.
func (w *Widget) Detach() {
	if !w.attached {
		return
	}
	for _, unsubscribe := range w.unsubscribe {
		unsubscribe()
	}
	w.unsubscribe = nil
	w.aside.Stop()
	w.attached = false
	w.log.Debug().Msg("detached")
}

// Sync re-renders every representation and re-applies the stylesheets from
// the current state without publishing anything.
func (w *Widget) Sync() {
	w.render()
	if w.state.mode.Valid() {
		w.sheets.Apply(w.state.mode)
	}
}

// Views returns the current state of every representation.
func (w *Widget) Views() view.Views {
	return w.views
}

// State returns a copy of the canonical state.
func (w *Widget) State() view.State {
	return w.state.snapshot()
}

// AsideVisible reports whether the pin affordance is shown.
func (w *Widget) AsideVisible() bool {
	return w.aside.Visible()
}

// ColorScheme returns the value the host should use for its color-scheme
// meta tag.
func (w *Widget) ColorScheme() string {
	return w.sheets.ColorScheme()
}

func (w *Widget) currentPreference() (scheme.Mode, bool) {
	if w.pref == nil {
		return "", false
	}
	m, ok := w.pref.Current()
	if !ok || !m.Valid() {
		return "", false
	}
	return m, true
}

// attributeChanged validates writes to observed attributes and runs the
// cascade for accepted changes.
func (w *Widget) attributeChanged(c attrs.Change) error {
	switch c.Name {
	case attrs.Mode:
		// Removing the attribute arrives as an empty value and is rejected.
		mode, err := scheme.ParseMode(c.New)
		if err != nil {
			return err
		}
		if w.state.setMode(mode) && w.attached {
			w.modeChanged()
		}

	case attrs.Appearance:
		appearance := scheme.DefaultAppearance
		if c.Has {
			a, err := scheme.ParseAppearance(c.New)
			if err != nil {
				return err
			}
			appearance = a
		}
		if w.state.setAppearance(appearance) {
			w.render()
		}

	case attrs.Permanent:
		if w.state.setPermanent(c.Has) && w.attached {
			w.permanentChanged()
		}
	}
	return nil
}

func (w *Widget) modeChanged() {
	mode := w.state.mode
	w.log.Debug().Str("mode", string(mode)).Msg("mode changed")

	w.render()
	w.sheets.Apply(mode)
	if w.coarsePointer && w.state.labels.Remember != "" {
		w.aside.Show()
	}
	w.emit(bus.ColorSchemeChange{ColorScheme: mode})
	if w.state.permanent {
		w.persist()
	}
}

func (w *Widget) permanentChanged() {
	w.log.Debug().Bool("permanent", w.state.permanent).Msg("permanent changed")

	w.render()
	w.emit(bus.PermanentColorScheme{Permanent: w.state.permanent})
	w.persist()
}

// persist records the mode while pinned and clears the record otherwise.
func (w *Widget) persist() {
	var res persist.Result
	if w.state.permanent {
		res = w.store.Write(w.state.mode)
	} else {
		res = w.store.Clear()
	}
	if res == persist.Unavailable {
		w.log.Debug().Msg("persistence unavailable, continuing without it")
	}
}

func (w *Widget) render() {
	w.state.labels = view.Labels{
		Legend:   w.attrs.String(attrs.Legend),
		Light:    w.attrs.String(attrs.Light),
		Dark:     w.attrs.String(attrs.Dark),
		Remember: w.attrs.String(attrs.Remember),
	}
	w.views = view.Compute(w.state.snapshot())
}

func (w *Widget) emit(p bus.Payload) {
	w.bus.Publish(bus.Event{Origin: w.id, Payload: p})
}

func (w *Widget) preferenceChanged(m scheme.Mode) {
	if !w.attached || w.state.permanent {
		return
	}
	if err := w.SetMode(string(m)); err != nil {
		w.log.Warn().Err(err).Msg("ignoring system preference")
	}
}

func (w *Widget) busEvent(e bus.Event) {
	if !w.attached || e.Origin == w.id {
		return
	}

	switch p := e.Payload.(type) {
	case bus.ColorSchemeChange:
		if err := w.SetMode(string(p.ColorScheme)); err != nil {
			w.log.Warn().Err(err).Str("origin", e.Origin).Msg("ignoring remote color scheme")
		}
	case bus.PermanentColorScheme:
		w.SetPermanent(p.Permanent)
	}
}
