package darwin

import (
	"os/exec"
	"strings"

	"github.com/Haocen/dark-mode-toggle/internal/platform"
)

// ThemeService implements platform.ThemeService for macOS.
type ThemeService struct {
	// read returns the AppleInterfaceStyle value.
	read func() (string, error)
}

// NewThemeService creates a new macOS theme service.
func NewThemeService() *ThemeService {
	return &ThemeService{read: readInterfaceStyle}
}

// Detect returns the current system theme by reading AppleInterfaceStyle.
func (s *ThemeService) Detect() platform.Theme {
	style, err := s.read()
	if err != nil {
		// defaults exits non-zero when the key is unset, which is light mode.
		return platform.ThemeLight
	}

	if strings.EqualFold(strings.TrimSpace(style), "dark") {
		return platform.ThemeDark
	}

	return platform.ThemeLight
}

func readInterfaceStyle() (string, error) {
	output, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	return string(output), err
}
