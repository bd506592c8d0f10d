// Package stylesheet enables the host page's light or dark stylesheets to
// match the canonical mode.
package stylesheet

import (
	"strings"
	"unicode"

	"github.com/Haocen/dark-mode-toggle/internal/scheme"
)

const (
	mediaAll     = "all"
	mediaNothing = "not all"
)

// Link is a stylesheet link owned by the host page.
type Link struct {
	Href     string
	Media    string
	Disabled bool
}

// Switcher toggles two sets of links tagged for light and dark preference.
type Switcher struct {
	light []*Link
	dark  []*Link
	mode  scheme.Mode
}

// NewSwitcher classifies links by their media attribute. Links whose media
// does not mention prefers-color-scheme are left untouched.
func NewSwitcher(links []*Link) *Switcher {
	s := &Switcher{}
	for _, l := range links {
		if l == nil {
			continue
		}
		switch tag, ok := Classify(l.Media); {
		case !ok:
		case tag == scheme.Dark:
			s.dark = append(s.dark, l)
		default:
			s.light = append(s.light, l)
		}
	}
	return s
}

// Classify reports which mode a media query is tagged for. Matching is
// case-insensitive and ignores whitespace, so "(prefers-color-scheme:dark)"
// and "( prefers-color-scheme : dark )" are equivalent.
func Classify(media string) (scheme.Mode, bool) {
	m := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, media)

	if !strings.Contains(m, "prefers-color-scheme") {
		return "", false
	}
	rest := strings.ReplaceAll(m, "prefers-color-scheme", "")
	switch {
	case strings.Contains(rest, "dark"):
		return scheme.Dark, true
	case strings.Contains(rest, "light"):
		return scheme.Light, true
	}
	return "", false
}

// Apply enables the set matching mode and disables the other.
func (s *Switcher) Apply(mode scheme.Mode) {
	on, off := s.light, s.dark
	if mode == scheme.Dark {
		on, off = s.dark, s.light
	}
	for _, l := range on {
		l.Media = mediaAll
		l.Disabled = false
	}
	for _, l := range off {
		l.Media = mediaNothing
		l.Disabled = true
	}
	s.mode = mode
}

// ColorScheme returns the value for the page's color-scheme meta tag: the
// last applied mode, or "light dark" before the first Apply.
func (s *Switcher) ColorScheme() string {
	if s.mode == "" {
		return "light dark"
	}
	return string(s.mode)
}

// Light returns the links tagged for light preference.
func (s *Switcher) Light() []*Link { return s.light }

// Dark returns the links tagged for dark preference.
func (s *Switcher) Dark() []*Link { return s.dark }
