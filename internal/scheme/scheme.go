// Package scheme defines the canonical color scheme values shared by every
// part of the control.
package scheme

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the canonical light/dark choice.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Modes lists the legal modes in display order.
var Modes = []Mode{Light, Dark}

// Appearance selects which representation of the control is visible.
type Appearance string

const (
	Toggle   Appearance = "toggle"
	Switch   Appearance = "switch"
	Slider   Appearance = "slider"
	ThreeWay Appearance = "three-way"
)

// DefaultAppearance is used when no appearance attribute is set.
const DefaultAppearance = Toggle

// Appearances lists the legal appearances.
var Appearances = []Appearance{Toggle, Switch, Slider, ThreeWay}

// ThreeWayOption is one choice of the light/system/dark radio group.
type ThreeWayOption string

const (
	OptionLight  ThreeWayOption = "light"
	OptionSystem ThreeWayOption = "system"
	OptionDark   ThreeWayOption = "dark"
)

var (
	ErrInvalidMode       = errors.New("invalid mode")
	ErrInvalidAppearance = errors.New("invalid appearance")
	ErrInvalidOption     = errors.New("invalid three-way option")
)

// InvalidModeError reports a mode value outside Modes.
type InvalidModeError struct {
	Value string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode %q: allowed values are %q and %q", e.Value, Light, Dark)
}

func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }

// InvalidAppearanceError reports an appearance value outside Appearances.
type InvalidAppearanceError struct {
	Value string
}

func (e *InvalidAppearanceError) Error() string {
	quoted := make([]string, len(Appearances))
	for i, a := range Appearances {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	return fmt.Sprintf("invalid appearance %q: allowed values are %s", e.Value, strings.Join(quoted, ", "))
}

func (e *InvalidAppearanceError) Unwrap() error { return ErrInvalidAppearance }

// ParseMode validates s as a Mode. Matching is exact: attribute values are
// case-sensitive.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), nil
	}
	return "", &InvalidModeError{Value: s}
}

// ParseAppearance validates s as an Appearance.
func ParseAppearance(s string) (Appearance, error) {
	switch Appearance(s) {
	case Toggle, Switch, Slider, ThreeWay:
		return Appearance(s), nil
	}
	return "", &InvalidAppearanceError{Value: s}
}

// ParseOption validates s as a ThreeWayOption.
func ParseOption(s string) (ThreeWayOption, error) {
	switch ThreeWayOption(s) {
	case OptionLight, OptionSystem, OptionDark:
		return ThreeWayOption(s), nil
	}
	return "", fmt.Errorf("%w: %q (must be light, system, or dark)", ErrInvalidOption, s)
}

// Valid reports whether m is one of the legal modes.
func (m Mode) Valid() bool {
	return m == Light || m == Dark
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether m is Dark.
func (m Mode) IsDark() bool {
	return m == Dark
}

// FromDark maps a checkbox state to a mode.
func FromDark(dark bool) Mode {
	if dark {
		return Dark
	}
	return Light
}

// String returns the string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// String returns the string representation of the appearance.
func (a Appearance) String() string {
	return string(a)
}

// Mode returns the pinned mode an option selects. System has none.
func (o ThreeWayOption) Mode() (Mode, bool) {
	switch o {
	case OptionLight:
		return Light, true
	case OptionDark:
		return Dark, true
	}
	return "", false
}
