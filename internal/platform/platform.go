// Package platform provides OS-agnostic access to the system color scheme
// preference and pointer capabilities.
package platform

// Theme represents the system color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Platform provides access to OS-specific services.
type Platform interface {
	// Name returns the platform identifier (e.g., "darwin", "linux").
	Name() string

	// IsSupported returns true if theme detection is implemented natively.
	IsSupported() bool

	// Theme returns the theme detection service.
	Theme() ThemeService

	// Pointer returns the pointer capability service.
	Pointer() PointerService
}

// ThemeService detects the system color theme.
type ThemeService interface {
	// Detect returns the current system theme (light or dark).
	Detect() Theme
}

// PointerService describes the primary pointing device.
type PointerService interface {
	// CanHover reports whether the primary pointer can hover. Touch-only
	// devices return false.
	CanHover() bool
}

// ThemeFunc adapts a function to ThemeService.
type ThemeFunc func() Theme

// Detect implements ThemeService.
func (f ThemeFunc) Detect() Theme { return f() }
