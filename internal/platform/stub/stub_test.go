package stub

import (
	"testing"

	"github.com/Haocen/dark-mode-toggle/internal/platform"
	"github.com/stretchr/testify/assert"
)

func TestStubPlatform(t *testing.T) {
	p := New()

	// Verify it implements Platform interface
	var _ platform.Platform = p

	assert.NotEmpty(t, p.Name())
	assert.False(t, p.IsSupported())
	assert.True(t, p.Pointer().CanHover())
}

func TestStubThemeService(t *testing.T) {
	p := New()
	svc := p.Theme()

	theme := svc.Detect()
	assert.Equal(t, platform.ThemeLight, theme)
}
