// Package view derives the state of every alternate representation of the
// control from the canonical state.
package view

import "github.com/Haocen/dark-mode-toggle/internal/scheme"

// Labels are the free-text strings shown by the control.
type Labels struct {
	Legend   string
	Light    string
	Dark     string
	Remember string
}

// State is the canonical input to Compute.
type State struct {
	Mode       scheme.Mode
	Permanent  bool
	Appearance scheme.Appearance
	Labels     Labels
}

// Radios is the light/dark radio pair shown by the switch appearance.
type Radios struct {
	Light  bool
	Dark   bool
	Hidden bool
}

// Toggle is the single checkbox shown by the toggle appearance.
type Toggle struct {
	Checked bool
	// Text is the visible label; empty means only AriaLabel is exposed.
	Text      string
	AriaLabel string
	Icon      scheme.Mode
	Hidden    bool
}

// Slider is the slider checkbox.
type Slider struct {
	Checked bool
	Hidden  bool
}

// ThreeWay is the light/system/dark radio group.
type ThreeWay struct {
	Light  bool
	System bool
	Dark   bool
	Hidden bool
}

// Selected returns the checked option.
func (t ThreeWay) Selected() scheme.ThreeWayOption {
	switch {
	case t.Light:
		return scheme.OptionLight
	case t.Dark:
		return scheme.OptionDark
	}
	return scheme.OptionSystem
}

// Remember is the pin checkbox.
type Remember struct {
	Checked bool
	Label   string
}

// Views is the complete rendered state of one control.
type Views struct {
	Legend     string
	LightLabel string
	DarkLabel  string
	Radios     Radios
	Toggle     Toggle
	Slider     Slider
	ThreeWay   ThreeWay
	Remember   Remember
}

// Compute derives every representation from s. Hidden representations are
// computed the same way as the visible one.
func Compute(s State) Views {
	appearance := s.Appearance
	if appearance == "" {
		appearance = scheme.DefaultAppearance
	}
	dark := s.Mode == scheme.Dark

	v := Views{
		Legend:     s.Labels.Legend,
		LightLabel: s.Labels.Light,
		DarkLabel:  s.Labels.Dark,
		Radios: Radios{
			Light:  s.Mode == scheme.Light,
			Dark:   dark,
			Hidden: appearance != scheme.Switch,
		},
		Toggle: Toggle{
			Checked: dark,
			Icon:    scheme.FromDark(dark),
			Hidden:  appearance != scheme.Toggle,
		},
		Slider: Slider{
			Checked: dark,
			Hidden:  appearance != scheme.Slider,
		},
		ThreeWay: ThreeWay{
			Light:  s.Permanent && s.Mode == scheme.Light,
			System: !s.Permanent,
			Dark:   s.Permanent && dark,
			Hidden: appearance != scheme.ThreeWay,
		},
		Remember: Remember{
			Checked: s.Permanent,
			Label:   s.Labels.Remember,
		},
	}

	v.Toggle.Text = s.Labels.Light
	if dark {
		v.Toggle.Text = s.Labels.Dark
	}
	v.Toggle.AriaLabel = v.Toggle.Text
	if v.Toggle.AriaLabel == "" {
		v.Toggle.AriaLabel = s.Labels.Legend
	}
	if v.Toggle.AriaLabel == "" {
		v.Toggle.AriaLabel = string(scheme.FromDark(dark))
	}

	return v
}

// Visible returns the appearance whose representation is shown.
func (v Views) Visible() scheme.Appearance {
	switch {
	case !v.Radios.Hidden:
		return scheme.Switch
	case !v.Slider.Hidden:
		return scheme.Slider
	case !v.ThreeWay.Hidden:
		return scheme.ThreeWay
	}
	return scheme.Toggle
}
