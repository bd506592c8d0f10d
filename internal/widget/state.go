package widget

import (
	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/Haocen/dark-mode-toggle/internal/view"
)

// state is the canonical model every other part of the widget reads.
type state struct {
	mode       scheme.Mode
	permanent  bool
	appearance scheme.Appearance
	labels     view.Labels
}

func newState() state {
	return state{appearance: scheme.DefaultAppearance}
}

func (s *state) setMode(m scheme.Mode) bool {
	if s.mode == m {
		return false
	}
	s.mode = m
	return true
}

func (s *state) setPermanent(p bool) bool {
	if s.permanent == p {
		return false
	}
	s.permanent = p
	return true
}

func (s *state) setAppearance(a scheme.Appearance) bool {
	if s.appearance == a {
		return false
	}
	s.appearance = a
	return true
}

func (s state) snapshot() view.State {
	return view.State{
		Mode:       s.mode,
		Permanent:  s.permanent,
		Appearance: s.appearance,
		Labels:     s.labels,
	}
}
