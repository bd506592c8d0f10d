package bus

import (
	"encoding/json"
	"testing"

	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishOrder(t *testing.T) {
	b := New()
	var got []string

	b.Subscribe(func(e Event) { got = append(got, "first:"+e.Name()) })
	b.Subscribe(func(e Event) { got = append(got, "second:"+e.Name()) })

	b.Publish(Event{Origin: "a", Payload: ColorSchemeChange{ColorScheme: scheme.Dark}})

	assert.Equal(t, []string{"first:colorschemechange", "second:colorschemechange"}, got)
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New()
	calls := 0

	unsubscribe := b.Subscribe(func(Event) { calls++ })
	assert.Equal(t, 1, b.Len())

	unsubscribe()
	assert.Equal(t, 0, b.Len())

	b.Publish(Event{Payload: PermanentColorScheme{Permanent: true}})
	assert.Equal(t, 0, calls)

	// Unsubscribing twice is harmless.
	unsubscribe()
	assert.Equal(t, 0, b.Len())
}

func TestBus_UnsubscribeDuringPublish(t *testing.T) {
	b := New()
	var calls []string

	var unsubscribeSecond func()
	b.Subscribe(func(Event) {
		calls = append(calls, "first")
		unsubscribeSecond()
	})
	unsubscribeSecond = b.Subscribe(func(Event) { calls = append(calls, "second") })

	b.Publish(Event{Payload: ColorSchemeChange{ColorScheme: scheme.Light}})
	b.Publish(Event{Payload: ColorSchemeChange{ColorScheme: scheme.Light}})

	// The snapshot taken for the first publish still includes second.
	assert.Equal(t, []string{"first", "second", "first"}, calls)
}

func TestBus_NestedPublish(t *testing.T) {
	b := New()
	var names []string

	b.Subscribe(func(e Event) {
		names = append(names, e.Name())
		if _, ok := e.Payload.(ColorSchemeChange); ok {
			b.Publish(Event{Payload: PermanentColorScheme{}})
		}
	})

	b.Publish(Event{Payload: ColorSchemeChange{ColorScheme: scheme.Dark}})
	assert.Equal(t, []string{ColorSchemeChangeName, PermanentColorSchemeName}, names)
}

func TestEvent_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "color scheme change",
			event: Event{Payload: ColorSchemeChange{ColorScheme: scheme.Dark}},
			want:  `{"type":"colorschemechange","detail":{"colorScheme":"dark"}}`,
		},
		{
			name:  "permanent",
			event: Event{Origin: "w1", Payload: PermanentColorScheme{Permanent: false}},
			want:  `{"type":"permanentcolorscheme","origin":"w1","detail":{"permanent":false}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.event)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestEvent_NameWithoutPayload(t *testing.T) {
	assert.Equal(t, "", Event{}.Name())
}
