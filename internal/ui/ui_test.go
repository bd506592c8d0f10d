package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Haocen/dark-mode-toggle/internal/bus"
	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/Haocen/dark-mode-toggle/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOutput() (*Output, *bytes.Buffer) {
	var buf bytes.Buffer
	o := NewOutput(&buf)
	o.SetNoColor(true)
	return o, &buf
}

func TestDefaultOutput(t *testing.T) {
	require.NotNil(t, DefaultOutput())
}

func TestOutput_color(t *testing.T) {
	var buf bytes.Buffer
	o := NewOutput(&buf)

	colored := o.color(Green, "text")
	assert.True(t, strings.HasPrefix(colored, Green))
	assert.True(t, strings.HasSuffix(colored, Reset))

	o.SetNoColor(true)
	assert.Equal(t, "text", o.color(Green, "text"))
}

func TestOutput_Messages(t *testing.T) {
	tests := []struct {
		name       string
		print      func(o *Output)
		symbol     string
		shownQuiet bool
	}{
		{name: "success", print: func(o *Output) { o.Success("done %s", "now") }, symbol: SymbolSuccess},
		{name: "error", print: func(o *Output) { o.Error("done %s", "now") }, symbol: SymbolError, shownQuiet: true},
		{name: "warning", print: func(o *Output) { o.Warning("done %s", "now") }, symbol: SymbolWarning},
		{name: "info", print: func(o *Output) { o.Info("done %s", "now") }, symbol: SymbolInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, buf := newTestOutput()
			tt.print(o)
			assert.Equal(t, tt.symbol+" done now\n", buf.String())

			buf.Reset()
			o.SetQuiet(true)
			tt.print(o)
			if tt.shownQuiet {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestOutput_ErrorWithHint(t *testing.T) {
	o, buf := newTestOutput()

	o.ErrorWithHint("storage is read-only", "check permissions")
	assert.Equal(t, SymbolError+" storage is read-only\n  Hint: check permissions\n", buf.String())
}

func TestOutput_Debug(t *testing.T) {
	o, buf := newTestOutput()

	o.Debug("hidden")
	assert.Empty(t, buf.String())

	o.SetVerbose(true)
	o.Debug("shown %d", 1)
	assert.Equal(t, "[DEBUG] shown 1\n", buf.String())
}

func TestOutput_Table(t *testing.T) {
	o, buf := newTestOutput()

	o.Table([]string{"A", "LONGER"}, [][]string{{"value", "x"}, {"v"}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "A      LONGER", lines[0])
	assert.Equal(t, "-----  ------", lines[1])
	assert.Equal(t, "value  x", lines[2])
	assert.Equal(t, "v", lines[3])
}

func TestOutput_Status(t *testing.T) {
	o, buf := newTestOutput()
	state := view.State{
		Mode:       scheme.Dark,
		Permanent:  true,
		Appearance: scheme.ThreeWay,
		Labels:     view.Labels{Legend: "Theme", Remember: "Keep"},
	}

	o.Status(Status{
		State:      state,
		Views:      view.Compute(state),
		System:     "light",
		Remembered: "dark",
		Storage:    "/tmp/state.json",
	})

	out := buf.String()
	assert.Contains(t, out, "Mode dark\n")
	assert.Contains(t, out, "Pinned: yes")
	assert.Contains(t, out, "Appearance: three-way")
	assert.Contains(t, out, "System: light")
	assert.Contains(t, out, "Storage: /tmp/state.json")
	assert.NotContains(t, out, "Platform:")
	assert.Contains(t, out, "( ) light  (•) dark")
	assert.Contains(t, out, `[x] "Theme"`)
	assert.Contains(t, out, `[x] "Keep"`)
}

func TestOutput_Event(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		o, buf := newTestOutput()
		o.Event(bus.Event{Origin: "w1", Payload: bus.ColorSchemeChange{ColorScheme: scheme.Dark}})
		o.Event(bus.Event{Origin: "w1", Payload: bus.PermanentColorScheme{Permanent: true}})

		assert.Equal(t,
			SymbolArrow+" colorschemechange colorScheme=dark (w1)\n"+
				SymbolArrow+" permanentcolorscheme permanent=true (w1)\n",
			buf.String())
	})

	t.Run("json ignores quiet", func(t *testing.T) {
		o, buf := newTestOutput()
		o.SetQuiet(true)
		o.SetJSON(true)
		o.Event(bus.Event{Payload: bus.ColorSchemeChange{ColorScheme: scheme.Light}})

		assert.JSONEq(t, `{"type":"colorschemechange","detail":{"colorScheme":"light"}}`, strings.TrimSpace(buf.String()))
	})
}

func TestOutput_Mode(t *testing.T) {
	var buf bytes.Buffer
	o := NewOutput(&buf)

	assert.Contains(t, o.Mode(scheme.Dark), Cyan)
	assert.Contains(t, o.Mode(scheme.Light), Yellow)
}
