// Package persist records the pinned mode across sessions. Every operation is
// best-effort: storage failures degrade the control to non-persistent
// behaviour and never reach the caller as errors.
package persist

import (
	"errors"
	"fmt"

	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/rs/zerolog"
)

// Key is the fixed key the pinned mode is stored under.
const Key = "dark-mode-toggle"

// ErrUnavailable is returned by stores that are blocked or closed.
var ErrUnavailable = errors.New("storage unavailable")

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)

	// Set stores value under key.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// Result reports the outcome of an adapter operation.
type Result int

const (
	// OK means the operation succeeded (and, for Read, a mode was found).
	OK Result = iota
	// Absent means the store works but holds no valid record.
	Absent
	// Unavailable means the store failed and the operation was a no-op.
	Unavailable
)

func (r Result) String() string {
	switch r {
	case OK:
		return "ok"
	case Absent:
		return "absent"
	case Unavailable:
		return "unavailable"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Adapter wraps a Store with the pinned-mode record operations.
type Adapter struct {
	store Store
	key   string
	log   zerolog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(a *Adapter) {
		a.key = key
	}
}

// WithLogger sets the logger used to report swallowed storage errors.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Adapter) {
		a.log = log
	}
}

// NewAdapter creates an adapter over store. A nil store behaves as
// permanently unavailable.
func NewAdapter(store Store, opts ...Option) *Adapter {
	a := &Adapter{
		store: store,
		key:   Key,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Read returns the remembered mode. Invalid or legacy values read as Absent.
func (a *Adapter) Read() (mode scheme.Mode, res Result) {
	err := a.guard("read", func() error {
		v, ok, err := a.store.Get(a.key)
		if err != nil {
			return err
		}
		if !ok {
			res = Absent
			return nil
		}
		m, err := scheme.ParseMode(v)
		if err != nil {
			a.log.Debug().Str("value", v).Msg("ignoring invalid remembered mode")
			res = Absent
			return nil
		}
		mode, res = m, OK
		return nil
	})
	if err != nil {
		return "", Unavailable
	}
	return mode, res
}

// Write records mode.
func (a *Adapter) Write(mode scheme.Mode) Result {
	if err := a.guard("write", func() error {
		return a.store.Set(a.key, string(mode))
	}); err != nil {
		return Unavailable
	}
	return OK
}

// Clear removes the record.
func (a *Adapter) Clear() Result {
	if err := a.guard("clear", func() error {
		return a.store.Delete(a.key)
	}); err != nil {
		return Unavailable
	}
	return OK
}

// guard runs fn, converting a nil store, an error, or a panic into a logged
// error.
func (a *Adapter) guard(op string, fn func() error) (err error) {
	if a == nil || a.store == nil {
		return ErrUnavailable
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnavailable, r)
		}
		if err != nil {
			a.log.Debug().Err(err).Str("op", op).Str("key", a.key).Msg("storage unavailable")
		}
	}()

	return fn()
}
