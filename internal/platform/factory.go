package platform

import (
	"runtime"
	"sync"
)

type platformBuilder func() Platform

var (
	registry     = make(map[string]platformBuilder)
	registryLock sync.RWMutex
)

// Register installs the builder used for osName.
func Register(osName string, builder platformBuilder) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registry[osName] = builder
}

var (
	current     Platform
	currentOnce sync.Once
)

// Current returns the platform for runtime.GOOS, building it once.
func Current() Platform {
	currentOnce.Do(func() {
		current = newPlatform()
	})
	return current
}

func newPlatform() Platform {
	registryLock.RLock()
	defer registryLock.RUnlock()

	if builder, ok := registry[runtime.GOOS]; ok {
		return builder()
	}

	return &unsupportedPlatform{name: runtime.GOOS}
}

type unsupportedPlatform struct {
	name string
}

func (p *unsupportedPlatform) Name() string            { return p.name }
func (p *unsupportedPlatform) IsSupported() bool       { return false }
func (p *unsupportedPlatform) Theme() ThemeService     { return &unsupportedTheme{} }
func (p *unsupportedPlatform) Pointer() PointerService { return FinePointer{} }

type unsupportedTheme struct{}

func (s *unsupportedTheme) Detect() Theme { return ThemeLight }

// FinePointer is a hover-capable pointer, the desktop default.
type FinePointer struct{}

// CanHover implements PointerService.
func (FinePointer) CanHover() bool { return true }

// CoarsePointer is a touch-only pointer.
type CoarsePointer struct{}

// CanHover implements PointerService.
func (CoarsePointer) CanHover() bool { return false }

// SetPlatform replaces the current platform. Intended for tests.
func SetPlatform(p Platform) {
	currentOnce.Do(func() {})
	current = p
}

// ResetPlatform forgets the current platform so the next Current call
// rebuilds it.
func ResetPlatform() {
	currentOnce = sync.Once{}
	current = nil
}
