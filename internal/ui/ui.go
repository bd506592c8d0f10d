// Package ui prints human-readable command output.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Haocen/dark-mode-toggle/internal/bus"
	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/Haocen/dark-mode-toggle/internal/view"
)

// ANSI escape codes.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

const (
	SymbolSuccess = "✔"
	SymbolError   = "✖"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
	SymbolPin     = "📌"
)

// Output writes messages to w, honoring quiet, verbose and color settings.
type Output struct {
	w       io.Writer
	noColor bool
	quiet   bool
	verbose bool
	json    bool
}

func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// DefaultOutput writes to stdout.
func DefaultOutput() *Output {
	return NewOutput(os.Stdout)
}

func (o *Output) SetNoColor(noColor bool) { o.noColor = noColor }
func (o *Output) SetQuiet(quiet bool)     { o.quiet = quiet }
func (o *Output) SetVerbose(verbose bool) { o.verbose = verbose }

// SetJSON switches Event to one JSON object per line.
func (o *Output) SetJSON(on bool) { o.json = on }

func (o *Output) color(code, text string) string {
	if o.noColor {
		return text
	}
	return code + text + Reset
}

func (o *Output) line(symbol, code, format string, args []any) {
	fmt.Fprintf(o.w, "%s %s\n", o.color(code, symbol), fmt.Sprintf(format, args...))
}

func (o *Output) Success(format string, args ...any) {
	if o.quiet {
		return
	}
	o.line(SymbolSuccess, Green, format, args)
}

// Error is printed even in quiet mode.
func (o *Output) Error(format string, args ...any) {
	o.line(SymbolError, Red, format, args)
}

func (o *Output) ErrorWithHint(err, hint string) {
	o.line(SymbolError, Red, "%s", []any{err})
	fmt.Fprintf(o.w, "  %s %s\n", o.color(Gray, "Hint:"), hint)
}

func (o *Output) Warning(format string, args ...any) {
	if o.quiet {
		return
	}
	o.line(SymbolWarning, Yellow, format, args)
}

func (o *Output) Info(format string, args ...any) {
	if o.quiet {
		return
	}
	o.line(SymbolInfo, Blue, format, args)
}

// Debug prints only in verbose mode.
func (o *Output) Debug(format string, args ...any) {
	if !o.verbose {
		return
	}
	o.line("[DEBUG]", Gray, format, args)
}

// Field prints an indented "label: value" line.
func (o *Output) Field(label, value string) {
	if o.quiet {
		return
	}
	fmt.Fprintf(o.w, "  %s %s\n", o.color(Gray, label+":"), value)
}

// Mode renders a mode name in its own color.
func (o *Output) Mode(m scheme.Mode) string {
	if m == scheme.Dark {
		return o.color(Bold+Cyan, string(m))
	}
	return o.color(Bold+Yellow, string(m))
}

// Table prints left-aligned columns with a header and separator.
func (o *Output) Table(headers []string, rows [][]string) {
	if o.quiet {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	format := func(cells []string) string {
		var b strings.Builder
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			fmt.Fprintf(&b, "%-*s  ", widths[i], cell)
		}
		return strings.TrimRight(b.String(), " ")
	}

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}

	fmt.Fprintln(o.w, o.color(Bold, format(headers)))
	fmt.Fprintln(o.w, o.color(Gray, format(sep)))
	for _, row := range rows {
		fmt.Fprintln(o.w, format(row))
	}
}

// Status describes everything the status command reports.
type Status struct {
	State      view.State
	Views      view.Views
	System     string
	Remembered string
	Storage    string
	Platform   string
}

// Status prints the current control state and every representation.
func (o *Output) Status(s Status) {
	if o.quiet {
		return
	}

	pinned := "no"
	if s.State.Permanent {
		pinned = "yes " + SymbolPin
	}

	fmt.Fprintf(o.w, "%s %s\n", o.color(Bold, "Mode"), o.Mode(s.State.Mode))
	o.Field("Pinned", pinned)
	o.Field("Appearance", string(s.Views.Visible()))
	o.Field("System", s.System)
	o.Field("Remembered", s.Remembered)
	if s.Storage != "" {
		o.Field("Storage", s.Storage)
	}
	if s.Platform != "" {
		o.Field("Platform", s.Platform)
	}
	fmt.Fprintln(o.w)

	v := s.Views
	o.Table(
		[]string{"CONTROL", "STATE", "VISIBLE"},
		[][]string{
			{"switch", radioState(v.Radios.Light, v.Radios.Dark), visible(v.Radios.Hidden)},
			{"toggle", checkState(v.Toggle.Checked) + " " + quote(v.Toggle.AriaLabel), visible(v.Toggle.Hidden)},
			{"slider", checkState(v.Slider.Checked), visible(v.Slider.Hidden)},
			{"three-way", string(v.ThreeWay.Selected()), visible(v.ThreeWay.Hidden)},
			{"remember", checkState(v.Remember.Checked) + " " + quote(v.Remember.Label), "-"},
		},
	)
}

// Event prints a bus notification as the host page would observe it.
func (o *Output) Event(e bus.Event) {
	if o.json {
		data, err := json.Marshal(e)
		if err != nil {
			o.Error("encode event: %v", err)
			return
		}
		fmt.Fprintln(o.w, string(data))
		return
	}
	if o.quiet {
		return
	}

	var detail string
	switch p := e.Payload.(type) {
	case bus.ColorSchemeChange:
		detail = "colorScheme=" + o.Mode(p.ColorScheme)
	case bus.PermanentColorScheme:
		detail = fmt.Sprintf("permanent=%t", p.Permanent)
	}
	fmt.Fprintf(o.w, "%s %s %s %s\n", o.color(Cyan, SymbolArrow), e.Name(), detail, o.color(Gray, "("+e.Origin+")"))
}

func radioState(light, dark bool) string {
	switch {
	case light:
		return "(•) light  ( ) dark"
	case dark:
		return "( ) light  (•) dark"
	}
	return "( ) light  ( ) dark"
}

func checkState(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func visible(hidden bool) string {
	if hidden {
		return "no"
	}
	return "yes"
}

func quote(s string) string {
	if s == "" {
		return `""`
	}
	return fmt.Sprintf("%q", s)
}
