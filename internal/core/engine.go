package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Haocen/dark-mode-toggle/internal/bus"
	"github.com/Haocen/dark-mode-toggle/internal/config"
	"github.com/Haocen/dark-mode-toggle/internal/loop"
	"github.com/Haocen/dark-mode-toggle/internal/markup"
	"github.com/Haocen/dark-mode-toggle/internal/persist"
	"github.com/Haocen/dark-mode-toggle/internal/platform"
	"github.com/Haocen/dark-mode-toggle/internal/preference"
	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/Haocen/dark-mode-toggle/internal/stylesheet"
	"github.com/Haocen/dark-mode-toggle/internal/widget"
)

// Engine wires a configured widget to its storage, OS preference source
// and stylesheets.
type Engine struct {
	config   *config.Config
	platform platform.Platform
	log      zerolog.Logger

	store   persist.Store
	closer  io.Closer
	adapter *persist.Adapter
	pref    preference.Source
	watcher *preference.Watcher
	sheets  *stylesheet.Switcher
	bus     *bus.Bus
	loop    *loop.Loop
	widget  *widget.Widget

	// Options
	appearanceOverride string
	preferOverride     string
	handlers           []bus.Handler
}

// Option is a function that configures the Engine.
type Option func(*Engine)

// WithAppearance overrides the configured appearance.
func WithAppearance(appearance string) Option {
	return func(e *Engine) {
		e.appearanceOverride = appearance
	}
}

// WithPreference replaces OS detection with a fixed mode.
func WithPreference(mode string) Option {
	return func(e *Engine) {
		e.preferOverride = mode
	}
}

// WithLogger sets the logger passed to every component.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithPlatform replaces the detected platform.
func WithPlatform(p platform.Platform) Option {
	return func(e *Engine) {
		e.platform = p
	}
}

// WithStore replaces the configured storage backend.
func WithStore(s persist.Store) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithEventHandler subscribes h to the bus before the widget attaches, so
// it also sees the initial notification.
func WithEventHandler(h bus.Handler) Option {
	return func(e *Engine) {
		e.handlers = append(e.handlers, h)
	}
}

// New loads the config at configPath and attaches a widget built from it.
func New(configPath string, opts ...Option) (*Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg, opts...)
}

// NewWithConfig is New with an already loaded config.
func NewWithConfig(cfg *config.Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		config:   cfg,
		platform: platform.Current(),
		log:      zerolog.Nop(),
		bus:      bus.New(),
		loop:     loop.New(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := e.initStore(); err != nil {
		return nil, err
	}
	if err := e.initPreference(); err != nil {
		e.Close()
		return nil, err
	}
	if err := e.initWidget(); err != nil {
		e.Close()
		return nil, err
	}

	return e, nil
}

func (e *Engine) initStore() error {
	if e.store == nil {
		if err := e.config.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}

		switch e.config.Storage.Backend {
		case config.BackendSQLite:
			db, err := persist.OpenSQLiteStore(e.config.Storage.Path)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			e.store, e.closer = db, db
		case config.BackendMemory:
			e.store = persist.NewMemoryStore()
		default:
			e.store = persist.NewFileStore(e.config.Storage.Path)
		}
	}

	e.adapter = persist.NewAdapter(e.store, persist.WithLogger(e.component("persist")))
	return nil
}

func (e *Engine) initPreference() error {
	override := e.preferOverride
	if override == "" {
		override = e.config.Preference.Override
	}
	if override != "" {
		mode, err := scheme.ParseMode(override)
		if err != nil {
			return fmt.Errorf("invalid preference override: %w", err)
		}
		e.pref = preference.NewManual(mode)
		return nil
	}

	interval, err := e.config.PollInterval()
	if err != nil {
		return err
	}
	e.watcher = preference.NewWatcher(
		e.platform.Theme(),
		preference.WithInterval(interval),
		preference.WithDispatcher(e.loop.Dispatch),
		preference.WithLogger(e.component("preference")),
	)
	e.pref = e.watcher
	return nil
}

func (e *Engine) initWidget() error {
	e.sheets = stylesheet.NewSwitcher(e.config.Links())

	e.widget = widget.New(
		widget.WithBus(e.bus),
		widget.WithStore(e.adapter),
		widget.WithPreference(e.pref),
		widget.WithStylesheets(e.sheets),
		widget.WithDispatcher(e.loop.Dispatch),
		widget.WithCoarsePointer(e.coarsePointer()),
		widget.WithLogger(e.component("widget")),
	)

	w := e.config.Widget
	e.widget.SetLegend(w.Legend)
	e.widget.SetLight(w.Light)
	e.widget.SetDark(w.Dark)
	e.widget.SetRemember(w.Remember)

	appearance := w.Appearance
	if e.appearanceOverride != "" {
		appearance = e.appearanceOverride
	}
	if appearance != "" {
		if err := e.widget.SetAppearance(appearance); err != nil {
			return err
		}
	}

	for _, h := range e.handlers {
		e.bus.Subscribe(h)
	}

	return e.widget.Attach()
}

func (e *Engine) coarsePointer() bool {
	switch e.config.Widget.Pointer {
	case config.PointerCoarse:
		return true
	case config.PointerFine:
		return false
	}
	return !e.platform.Pointer().CanHover()
}

func (e *Engine) component(name string) zerolog.Logger {
	return e.log.With().Str("component", name).Logger()
}

// Widget returns the attached widget.
func (e *Engine) Widget() *widget.Widget {
	return e.widget
}

// Bus returns the page-wide bus.
func (e *Engine) Bus() *bus.Bus {
	return e.bus
}

// Config returns the loaded configuration.
func (e *Engine) Config() *config.Config {
	return e.config
}

// Status reports the widget state together with the OS preference and
// the stored record.
func (e *Engine) Status() *Status {
	st := &Status{
		State:     e.widget.State(),
		Views:     e.widget.Views(),
		System:    "unknown",
		Platform:  e.platform.Name(),
		Supported: e.platform.IsSupported(),
		Backend:   string(e.config.Storage.Backend),
	}

	if m, ok := e.pref.Current(); ok {
		st.System = string(m)
	}
	if e.preferOverride != "" || e.config.Preference.Override != "" {
		st.System += " (override)"
	}

	mode, res := e.adapter.Read()
	st.Stored = res
	st.Remembered = res.String()
	if res == persist.OK {
		st.Remembered = string(mode)
	}

	if e.config.Storage.Backend != config.BackendMemory {
		st.StoragePath = e.config.Storage.Path
	}
	return st
}

// Set changes the mode. When pin is true the mode is also remembered;
// otherwise any remembered mode is forgotten first so it is not
// overwritten.
func (e *Engine) Set(mode string, pin bool) error {
	m, err := scheme.ParseMode(mode)
	if err != nil {
		return err
	}
	if pin {
		return e.widget.SelectThreeWay(scheme.ThreeWayOption(m))
	}
	e.widget.SetPermanent(false)
	return e.widget.SetMode(string(m))
}

// Unpin forgets the remembered mode and follows the OS preference again.
func (e *Engine) Unpin() error {
	return e.widget.SelectThreeWay(scheme.OptionSystem)
}

// Toggle flips the mode the way a click on the toggle does.
func (e *Engine) Toggle() scheme.Mode {
	e.widget.SetToggle(!e.widget.Views().Toggle.Checked)
	return e.widget.State().Mode
}

// Render writes the widget markup, or a whole page around it when page is
// true.
func (e *Engine) Render(w io.Writer, page bool) error {
	control := markup.Control(e.widget.ID(), e.widget.Views(), e.widget.AsideVisible(), markup.Hooks(e.config.Style))
	if !page {
		return markup.Write(w, control)
	}

	links := append(append([]*stylesheet.Link{}, e.sheets.Light()...), e.sheets.Dark()...)
	return markup.Write(w, markup.Document("Dark mode toggle", e.widget.ColorScheme(), links, control))
}

// Watch keeps the widget in sync with the OS preference and with other
// processes sharing the store until ctx is done. Every change is applied on
// a single loop goroutine.
func (e *Engine) Watch(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return e.loop.Run(ctx)
	})

	if e.watcher != nil {
		g.Go(func() error {
			return e.watcher.Run(ctx)
		})
	}

	reload := func() { e.loop.Post(e.reloadStore) }
	switch e.config.Storage.Backend {
	case config.BackendFile:
		if _, ok := e.store.(*persist.FileStore); ok {
			g.Go(func() error {
				return persist.WatchFile(ctx, e.config.Storage.Path, e.component("watch"), reload)
			})
		}
	case config.BackendSQLite:
		interval, err := e.config.PollInterval()
		if err != nil {
			return err
		}
		g.Go(func() error {
			return poll(ctx, interval, reload)
		})
	}

	e.log.Info().Str("widget", e.widget.ID()).Msg("watching for color scheme changes")
	return g.Wait()
}

// reloadStore applies a record written by another process.
func (e *Engine) reloadStore() {
	mode, res := e.adapter.Read()
	switch res {
	case persist.OK:
		if err := e.widget.SelectThreeWay(scheme.ThreeWayOption(mode)); err != nil {
			e.log.Warn().Err(err).Msg("ignoring stored mode")
		}
	case persist.Absent:
		if e.widget.Permanent() {
			_ = e.widget.SelectThreeWay(scheme.OptionSystem)
		}
	}
}

func poll(ctx context.Context, interval time.Duration, fn func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fn()
		}
	}
}

// Close detaches the widget and releases the store.
func (e *Engine) Close() error {
	if e.widget != nil {
		e.widget.Detach()
	}
	if e.closer != nil {
		return e.closer.Close()
	}
	return nil
}
