// Package linux provides Linux desktop platform implementations.
package linux

import "github.com/Haocen/dark-mode-toggle/internal/platform"

func init() {
	platform.Register("linux", func() platform.Platform {
		return New()
	})
}

// Platform implements platform.Platform for Linux desktops.
type Platform struct {
	theme *ThemeService
}

// New creates a Linux platform with the default detector chain.
func New() *Platform {
	return &Platform{
		theme: NewThemeService(NewEnvDetector(), NewGsettingsDetector()),
	}
}

// Name returns the platform identifier.
func (p *Platform) Name() string {
	return "linux"
}

// IsSupported returns true; detection works on GNOME-like desktops and
// wherever GTK_THEME is set.
func (p *Platform) IsSupported() bool {
	return true
}

// Theme returns the theme detection service.
func (p *Platform) Theme() platform.ThemeService {
	return p.theme
}

// Pointer returns a hover-capable pointer.
func (p *Platform) Pointer() platform.PointerService {
	return platform.FinePointer{}
}

var _ platform.Platform = (*Platform)(nil)
