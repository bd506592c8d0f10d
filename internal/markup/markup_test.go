package markup

import (
	"strings"
	"testing"

	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/Haocen/dark-mode-toggle/internal/stylesheet"
	"github.com/Haocen/dark-mode-toggle/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, v view.Views, aside bool, hooks Hooks) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Write(&b, Control("dmt", v, aside, hooks)))
	return b.String()
}

func TestControl_ReflectsViews(t *testing.T) {
	v := view.Compute(view.State{
		Mode:       scheme.Dark,
		Permanent:  true,
		Appearance: scheme.Slider,
		Labels:     view.Labels{Legend: "Theme", Light: "Light", Dark: "Dark", Remember: "Remember"},
	})
	out := render(t, v, false, nil)

	assert.Contains(t, out, `<legend part="legend">Theme</legend>`)
	assert.Contains(t, out, `<input id="dmt-dark" type="radio" name="dmt-mode" value="dark" part="darkRadio" checked hidden>`)
	assert.Contains(t, out, `<input id="dmt-slider" type="checkbox" part="sliderCheckbox" checked>`)
	assert.Contains(t, out, `<input id="dmt-three-way-dark" type="radio" name="dmt-three-way" value="dark" part="darkThreeWayRadio" checked hidden>`)
	assert.Contains(t, out, `<input id="dmt-permanent" type="checkbox" part="permanentCheckbox" checked>`)
	assert.Contains(t, out, `<label for="dmt-permanent" part="permanentLabel">Remember</label>`)
	assert.NotContains(t, out, `class="visible"`)
	assert.NotContains(t, out, "style=")
}

func TestControl_ToggleAriaLabel(t *testing.T) {
	v := view.Compute(view.State{Mode: scheme.Light, Labels: view.Labels{Legend: "Theme"}})
	out := render(t, v, true, nil)

	assert.Contains(t, out, `aria-label="Theme"`)
	assert.Contains(t, out, `data-icon="light"`)
	assert.Contains(t, out, `<aside part="aside" class="visible">`)
}

func TestControl_EscapesLabels(t *testing.T) {
	v := view.Compute(view.State{Mode: scheme.Light, Labels: view.Labels{Legend: `<b>"x"</b>`}})
	out := render(t, v, false, nil)

	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "&lt;b&gt;")
}

func TestHooks(t *testing.T) {
	tests := []struct {
		name  string
		hooks Hooks
		want  string
	}{
		{
			name:  "sorted",
			hooks: Hooks{"icon-size": "2rem", "color": "red"},
			want:  "--dark-mode-toggle-color: red; --dark-mode-toggle-icon-size: 2rem;",
		},
		{
			name:  "prefixed keys",
			hooks: Hooks{"--dark-mode-toggle-legend-font": "bold 1rem serif"},
			want:  "--dark-mode-toggle-legend-font: bold 1rem serif;",
		},
		{
			name:  "unknown and empty dropped",
			hooks: Hooks{"shadow": "none", "dark-icon": " ", "light-icon": "url(sun.svg)"},
			want:  "--dark-mode-toggle-light-icon: url(sun.svg);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hooks.declarations())
		})
	}
}

func TestValidHook(t *testing.T) {
	assert.True(t, ValidHook("remember-filter"))
	assert.True(t, ValidHook("--dark-mode-toggle-system-icon"))
	assert.False(t, ValidHook("font"))
	assert.False(t, ValidHook(""))
}

func TestDocument(t *testing.T) {
	sw := stylesheet.NewSwitcher([]*stylesheet.Link{
		{Href: "light.css", Media: "(prefers-color-scheme: light)"},
		{Href: "dark.css", Media: "(prefers-color-scheme: dark)"},
	})
	sw.Apply(scheme.Dark)

	links := append(append([]*stylesheet.Link{}, sw.Light()...), sw.Dark()...)
	var b strings.Builder
	require.NoError(t, Write(&b, Document("Demo", sw.ColorScheme(), links)))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, `<meta name="color-scheme" content="dark">`)
	assert.Contains(t, out, `<link rel="stylesheet" href="light.css" media="not all" disabled>`)
	assert.Contains(t, out, `<link rel="stylesheet" href="dark.css" media="all">`)
	assert.Contains(t, out, "<title>Demo</title>")
}
