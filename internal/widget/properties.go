package widget

import (
	"github.com/Haocen/dark-mode-toggle/internal/attrs"
	"github.com/Haocen/dark-mode-toggle/internal/scheme"
)

// Mode returns the mode attribute, or "" before it is first set.
func (w *Widget) Mode() string {
	return w.attrs.String(attrs.Mode)
}

// SetMode sets the mode. Values other than "light" and "dark" fail with an
// *scheme.InvalidModeError and leave the previous mode in place.
func (w *Widget) SetMode(mode string) error {
	return w.attrs.SetString(attrs.Mode, mode)
}

// Appearance returns the appearance attribute, or "" when it is unset and
// the default toggle appearance applies.
func (w *Widget) Appearance() string {
	return w.attrs.String(attrs.Appearance)
}

// SetAppearance selects the visible representation. Unknown values fail
// with an *scheme.InvalidAppearanceError.
func (w *Widget) SetAppearance(appearance string) error {
	return w.attrs.SetString(attrs.Appearance, appearance)
}

// Permanent reports whether the mode is pinned.
func (w *Widget) Permanent() bool {
	return w.attrs.Bool(attrs.Permanent)
}

// SetPermanent pins or unpins the current mode.
func (w *Widget) SetPermanent(permanent bool) {
	// Boolean attributes never fail validation.
	_ = w.attrs.SetBool(attrs.Permanent, permanent)
}

func (w *Widget) Legend() string   { return w.attrs.String(attrs.Legend) }
func (w *Widget) Light() string    { return w.attrs.String(attrs.Light) }
func (w *Widget) Dark() string     { return w.attrs.String(attrs.Dark) }
func (w *Widget) Remember() string { return w.attrs.String(attrs.Remember) }

func (w *Widget) SetLegend(s string)   { w.setLabel(attrs.Legend, s) }
func (w *Widget) SetLight(s string)    { w.setLabel(attrs.Light, s) }
func (w *Widget) SetDark(s string)     { w.setLabel(attrs.Dark, s) }
func (w *Widget) SetRemember(s string) { w.setLabel(attrs.Remember, s) }

func (w *Widget) setLabel(name, s string) {
	_ = w.attrs.SetString(name, s)
	w.render()
}

// Attribute returns a raw attribute value and whether it is present.
func (w *Widget) Attribute(name string) (string, bool) {
	return w.attrs.Get(name)
}

// SetAttribute writes a raw attribute as a host page would. Boolean
// attributes become present regardless of value.
func (w *Widget) SetAttribute(name, value string) error {
	var err error
	if name == attrs.Permanent {
		err = w.attrs.SetBool(name, true)
	} else {
		err = w.attrs.SetString(name, value)
	}
	if err == nil {
		w.render()
	}
	return err
}

// RemoveAttribute removes a raw attribute. Removing mode is rejected.
func (w *Widget) RemoveAttribute(name string) error {
	err := w.attrs.Remove(name)
	if err == nil {
		w.render()
	}
	return err
}

// SelectRadio handles a click on the light or dark radio of the pair.
func (w *Widget) SelectRadio(mode scheme.Mode) error {
	return w.SetMode(string(mode))
}

// SetToggle handles a change of the single toggle checkbox.
func (w *Widget) SetToggle(checked bool) {
	_ = w.SetMode(string(scheme.FromDark(checked)))
}

// SetSlider handles a change of the slider checkbox.
func (w *Widget) SetSlider(checked bool) {
	_ = w.SetMode(string(scheme.FromDark(checked)))
}

// SelectThreeWay handles a choice in the light/system/dark group. Light and
// dark pin that mode; system unpins and follows the OS preference again.
func (w *Widget) SelectThreeWay(option scheme.ThreeWayOption) error {
	if mode, ok := option.Mode(); ok {
		if err := w.SetMode(string(mode)); err != nil {
			return err
		}
		w.SetPermanent(true)
		return nil
	}

	if option != scheme.OptionSystem {
		_, err := scheme.ParseOption(string(option))
		return err
	}

	w.SetPermanent(false)
	if mode, ok := w.currentPreference(); ok {
		return w.SetMode(string(mode))
	}
	return nil
}

// SetRememberChecked handles the pin checkbox.
func (w *Widget) SetRememberChecked(checked bool) {
	w.SetPermanent(checked)
}
