// Package darwin provides macOS-specific platform implementations.
package darwin

import "github.com/Haocen/dark-mode-toggle/internal/platform"

func init() {
	platform.Register("darwin", func() platform.Platform {
		return New()
	})
}

// Platform implements platform.Platform for macOS.
type Platform struct {
	theme *ThemeService
}

// New creates a new macOS platform instance.
func New() *Platform {
	return &Platform{
		theme: NewThemeService(),
	}
}

// Name returns the platform identifier.
func (p *Platform) Name() string {
	return "darwin"
}

// IsSupported returns true as macOS is fully supported.
func (p *Platform) IsSupported() bool {
	return true
}

// Theme returns the theme detection service.
func (p *Platform) Theme() platform.ThemeService {
	return p.theme
}

// Pointer returns a hover-capable pointer; macOS has no touch-only mode.
func (p *Platform) Pointer() platform.PointerService {
	return platform.FinePointer{}
}

// Compile-time check that Platform implements platform.Platform.
var _ platform.Platform = (*Platform)(nil)
