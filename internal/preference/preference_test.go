package preference

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Haocen/dark-mode-toggle/internal/platform"
	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTheme struct {
	mu    sync.Mutex
	theme platform.Theme
}

func (f *fakeTheme) Detect() platform.Theme {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.theme
}

func (f *fakeTheme) set(t platform.Theme) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.theme = t
}

func TestFromPlatform(t *testing.T) {
	assert.Equal(t, scheme.Dark, FromPlatform(platform.ThemeDark))
	assert.Equal(t, scheme.Light, FromPlatform(platform.ThemeLight))
	assert.Equal(t, scheme.Light, FromPlatform(platform.Theme("")))
}

func TestWatcher_Refresh(t *testing.T) {
	svc := &fakeTheme{theme: platform.ThemeLight}
	w := NewWatcher(svc)

	m, ok := w.Current()
	assert.True(t, ok)
	assert.Equal(t, scheme.Light, m)

	var got []scheme.Mode
	unsubscribe := w.Subscribe(func(m scheme.Mode) { got = append(got, m) })

	w.Refresh()
	assert.Empty(t, got, "no change, no notification")

	svc.set(platform.ThemeDark)
	assert.Equal(t, scheme.Dark, w.Refresh())
	assert.Equal(t, []scheme.Mode{scheme.Dark}, got)

	unsubscribe()
	assert.Equal(t, 0, w.Subscribers())
	svc.set(platform.ThemeLight)
	w.Refresh()
	assert.Equal(t, []scheme.Mode{scheme.Dark}, got)
}

func TestWatcher_Dispatcher(t *testing.T) {
	svc := &fakeTheme{theme: platform.ThemeLight}
	var queued []func()
	w := NewWatcher(svc, WithDispatcher(func(fn func()) { queued = append(queued, fn) }))

	var got []scheme.Mode
	w.Subscribe(func(m scheme.Mode) { got = append(got, m) })

	svc.set(platform.ThemeDark)
	w.Refresh()
	assert.Empty(t, got)
	require.Len(t, queued, 1)

	queued[0]()
	assert.Equal(t, []scheme.Mode{scheme.Dark}, got)
}

func TestWatcher_Run(t *testing.T) {
	svc := &fakeTheme{theme: platform.ThemeLight}
	w := NewWatcher(svc, WithInterval(5*time.Millisecond))

	changes := make(chan scheme.Mode, 4)
	w.Subscribe(func(m scheme.Mode) { changes <- m })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	svc.set(platform.ThemeDark)
	select {
	case m := <-changes:
		assert.Equal(t, scheme.Dark, m)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestManual(t *testing.T) {
	m := NewManual("")
	_, ok := m.Current()
	assert.False(t, ok)

	var got []scheme.Mode
	unsubscribe := m.Subscribe(func(mode scheme.Mode) { got = append(got, mode) })
	assert.Equal(t, 1, m.Subscribers())

	m.Set(scheme.Dark)
	m.Set(scheme.Dark)
	m.Set(scheme.Light)
	assert.Equal(t, []scheme.Mode{scheme.Dark, scheme.Light}, got)

	mode, ok := m.Current()
	assert.True(t, ok)
	assert.Equal(t, scheme.Light, mode)

	unsubscribe()
	assert.Equal(t, 0, m.Subscribers())
}

func TestSourcesImplementInterface(t *testing.T) {
	var _ Source = NewManual(scheme.Light)
	var _ Source = NewWatcher(&fakeTheme{theme: platform.ThemeLight})
}
