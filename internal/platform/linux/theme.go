package linux

import (
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/Haocen/dark-mode-toggle/internal/platform"
)

// Detector is one source of the desktop color scheme.
type Detector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority orders detectors; higher is consulted first.
	Priority() int

	// Available returns true if this detector can be used.
	Available() bool

	// Detect returns the preference and whether detection succeeded.
	Detect() (prefersDark, ok bool)
}

// ThemeService consults detectors in priority order and falls back to
// light when none answers.
type ThemeService struct {
	detectors []Detector
}

// NewThemeService creates a service over detectors.
func NewThemeService(detectors ...Detector) *ThemeService {
	sorted := make([]Detector, len(detectors))
	copy(sorted, detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})
	return &ThemeService{detectors: sorted}
}

// Detect implements platform.ThemeService.
func (s *ThemeService) Detect() platform.Theme {
	for _, d := range s.detectors {
		if !d.Available() {
			continue
		}
		if dark, ok := d.Detect(); ok {
			if dark {
				return platform.ThemeDark
			}
			return platform.ThemeLight
		}
	}
	return platform.ThemeLight
}

const (
	detectorNameEnv       = "GTK_THEME"
	priorityEnv           = 20
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
)

// EnvDetector reads the GTK_THEME environment variable.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates an environment detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

func (*EnvDetector) Name() string  { return detectorNameEnv }
func (*EnvDetector) Priority() int { return priorityEnv }

func (d *EnvDetector) Available() bool {
	return d.getenv("GTK_THEME") != ""
}

// Detect reports dark when GTK_THEME mentions "dark" (e.g. "Adwaita:dark").
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	theme := d.getenv("GTK_THEME")
	if theme == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(theme), "dark"), true
}

// GsettingsDetector queries org.gnome.desktop.interface color-scheme.
type GsettingsDetector struct {
	lookPath func(string) (string, error)
	run      func() (string, error)
}

// NewGsettingsDetector creates a gsettings detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{
		lookPath: exec.LookPath,
		run: func() (string, error) {
			out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
			return string(out), err
		},
	}
}

func (*GsettingsDetector) Name() string  { return detectorNameGsettings }
func (*GsettingsDetector) Priority() int { return priorityGsettings }

func (d *GsettingsDetector) Available() bool {
	_, err := d.lookPath("gsettings")
	return err == nil
}

// Detect parses output like "'prefer-dark'\n". "default" is not an answer.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	out, err := d.run()
	if err != nil {
		return false, false
	}

	switch strings.Trim(strings.TrimSpace(out), `'"`) {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	}
	return false, false
}
