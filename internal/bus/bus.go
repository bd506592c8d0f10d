// Package bus is the page-wide notification channel shared by every control
// instance and the host page.
package bus

import (
	"encoding/json"
	"sync"

	"github.com/Haocen/dark-mode-toggle/internal/scheme"
)

// Event names as seen by the host page.
const (
	ColorSchemeChangeName    = "colorschemechange"
	PermanentColorSchemeName = "permanentcolorscheme"
)

// Payload is implemented by the two notification types.
type Payload interface {
	EventName() string
}

// ColorSchemeChange is published whenever the canonical mode changes.
type ColorSchemeChange struct {
	ColorScheme scheme.Mode `json:"colorScheme"`
}

// EventName implements Payload.
func (ColorSchemeChange) EventName() string { return ColorSchemeChangeName }

// PermanentColorScheme is published whenever the pinned flag changes.
type PermanentColorScheme struct {
	Permanent bool `json:"permanent"`
}

// EventName implements Payload.
func (PermanentColorScheme) EventName() string { return PermanentColorSchemeName }

// Event is a published notification. Origin identifies the publishing
// instance so it can skip its own events.
type Event struct {
	Origin  string
	Payload Payload
}

// Name returns the payload's event name.
func (e Event) Name() string {
	if e.Payload == nil {
		return ""
	}
	return e.Payload.EventName()
}

// MarshalJSON encodes the event as {"type": name, "detail": payload}.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string  `json:"type"`
		Origin string  `json:"origin,omitempty"`
		Detail Payload `json:"detail"`
	}{
		Type:   e.Name(),
		Origin: e.Origin,
		Detail: e.Payload,
	})
}

// Handler receives published events.
type Handler func(Event)

type subscription struct {
	fn Handler
}

// Bus delivers events synchronously to its subscribers.
type Bus struct {
	mu   sync.RWMutex
	subs []*subscription
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns a function that removes it.
func (b *Bus) Subscribe(fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscription{fn: fn}
	b.subs = append(b.subs, sub)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		for i, s := range b.subs {
			if s == sub {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e to every current subscriber in subscription order.
// Handlers run outside the lock and may publish or unsubscribe.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := make([]*subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(e)
	}
}

// Len returns the number of subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
