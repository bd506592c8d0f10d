// Package attrs stores the control's external attributes and reports changes
// to the observed ones before a write completes.
package attrs

import (
	"errors"
	"fmt"
)

// Recognized attribute names.
const (
	Mode       = "mode"
	Appearance = "appearance"
	Permanent  = "permanent"
	Legend     = "legend"
	Light      = "light"
	Dark       = "dark"
	Remember   = "remember"
)

// Names lists every recognized attribute.
var Names = []string{Mode, Appearance, Permanent, Legend, Light, Dark, Remember}

var observed = map[string]bool{
	Mode:       true,
	Appearance: true,
	Permanent:  true,
}

var ErrUnknownAttribute = errors.New("unknown attribute")

// Change describes a write to an observed attribute. Old and New are empty
// when the attribute was or becomes absent; the Had/Has flags tell absence
// apart from an empty value.
type Change struct {
	Name string
	Old  string
	New  string
	Had  bool
	Has  bool
}

// ChangeFunc is called synchronously for every write to an observed
// attribute. Returning an error rejects the write.
type ChangeFunc func(Change) error

type value struct {
	s       string
	present bool
}

// Attributes is the attribute set of a single control instance.
// The zero value is ready to use.
type Attributes struct {
	values   map[string]value
	observer ChangeFunc
}

// New returns an empty attribute set.
func New() *Attributes {
	return &Attributes{}
}

// Observe installs fn as the change observer, replacing any previous one.
func (a *Attributes) Observe(fn ChangeFunc) {
	a.observer = fn
}

// Get returns the raw value and whether the attribute is present.
func (a *Attributes) Get(name string) (string, bool) {
	v, ok := a.values[name]
	if !ok || !v.present {
		return "", false
	}
	return v.s, true
}

// String returns the attribute value or "" if it is absent.
func (a *Attributes) String(name string) string {
	s, _ := a.Get(name)
	return s
}

// Bool reports whether the attribute is present.
func (a *Attributes) Bool(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// SetString writes the attribute, even when value is empty.
func (a *Attributes) SetString(name, value string) error {
	return a.write(name, value, true)
}

// SetBool adds the attribute with no value when on is true and removes it
// otherwise.
func (a *Attributes) SetBool(name string, on bool) error {
	return a.write(name, "", on)
}

// Remove deletes the attribute.
func (a *Attributes) Remove(name string) error {
	return a.write(name, "", false)
}

func (a *Attributes) write(name, s string, present bool) error {
	if !known(name) {
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	if a.values == nil {
		a.values = make(map[string]value, len(Names))
	}

	prev := a.values[name]
	a.values[name] = value{s: s, present: present}

	if !observed[name] || a.observer == nil {
		return nil
	}

	err := a.observer(Change{
		Name: name,
		Old:  prev.s,
		New:  s,
		Had:  prev.present,
		Has:  present,
	})
	if err != nil {
		a.values[name] = prev
		return err
	}
	return nil
}

func known(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}
