package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Haocen/dark-mode-toggle/internal/logging"
	"github.com/Haocen/dark-mode-toggle/internal/markup"
	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/Haocen/dark-mode-toggle/internal/stylesheet"
)

type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

type Pointer string

const (
	PointerAuto   Pointer = "auto"
	PointerFine   Pointer = "fine"
	PointerCoarse Pointer = "coarse"
)

type StorageConfig struct {
	Backend Backend `toml:"backend"`
	Path    string  `toml:"path"`
}

type WidgetConfig struct {
	Appearance string  `toml:"appearance"`
	Legend     string  `toml:"legend"`
	Light      string  `toml:"light"`
	Dark       string  `toml:"dark"`
	Remember   string  `toml:"remember"`
	Pointer    Pointer `toml:"pointer"`
}

type PreferenceConfig struct {
	Interval string `toml:"interval"`
	// Override replaces OS detection with a fixed mode when set.
	Override string `toml:"override"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type StylesheetConfig struct {
	Href  string `toml:"href"`
	Media string `toml:"media"`
}

type Config struct {
	Storage     StorageConfig      `toml:"storage"`
	Widget      WidgetConfig       `toml:"widget"`
	Preference  PreferenceConfig   `toml:"preference"`
	Log         LogConfig          `toml:"log"`
	Stylesheets []StylesheetConfig `toml:"stylesheets"`
	Style       map[string]string  `toml:"style"`

	configPath string
}

func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dark-mode-toggle")
}

func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendFile,
			Path:    filepath.Join(DefaultConfigDir(), "state.json"),
		},
		Widget: WidgetConfig{
			Appearance: string(scheme.DefaultAppearance),
			Legend:     "Dark mode",
			Light:      "Light",
			Dark:       "Dark",
			Remember:   "Remember this",
			Pointer:    PointerAuto,
		},
		Preference: PreferenceConfig{
			Interval: "2s",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Stylesheets: []StylesheetConfig{
			{Href: "light.css", Media: "(prefers-color-scheme: light)"},
			{Href: "dark.css", Media: "(prefers-color-scheme: dark)"},
		},
		Style: map[string]string{},
	}
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.toml")
	}

	path = expandPath(path)

	cfg := DefaultConfig()
	cfg.configPath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	cfg.postProcess()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) postProcess() {
	c.Storage.Path = expandPath(expandEnv(c.Storage.Path))
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
	if c.Widget.Pointer == "" {
		c.Widget.Pointer = PointerAuto
	}
	if c.Style == nil {
		c.Style = map[string]string{}
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage: path is required for the %s backend", c.Storage.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("invalid storage backend: %s (must be file, sqlite, or memory)", c.Storage.Backend)
	}

	if c.Widget.Appearance != "" {
		if _, err := scheme.ParseAppearance(c.Widget.Appearance); err != nil {
			return fmt.Errorf("widget: %w", err)
		}
	}

	switch c.Widget.Pointer {
	case PointerAuto, PointerFine, PointerCoarse:
	default:
		return fmt.Errorf("invalid pointer: %s (must be auto, fine, or coarse)", c.Widget.Pointer)
	}

	if _, err := c.PollInterval(); err != nil {
		return err
	}

	if c.Preference.Override != "" {
		if _, err := scheme.ParseMode(c.Preference.Override); err != nil {
			return fmt.Errorf("preference: %w", err)
		}
	}

	if _, err := logging.ParseConfig(c.Log.Level, c.Log.Format); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	for i, s := range c.Stylesheets {
		if s.Href == "" {
			return fmt.Errorf("stylesheets[%d]: href is required", i)
		}
		if _, ok := stylesheet.Classify(s.Media); !ok {
			return fmt.Errorf("stylesheets[%d]: media %q does not select a color scheme", i, s.Media)
		}
	}

	for _, name := range c.styleNames() {
		if !markup.ValidHook(name) {
			return fmt.Errorf("style: unknown hook '%s'", name)
		}
	}

	return nil
}

func (c *Config) styleNames() []string {
	names := make([]string, 0, len(c.Style))
	for name := range c.Style {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PollInterval returns the OS preference poll interval.
func (c *Config) PollInterval() (time.Duration, error) {
	if c.Preference.Interval == "" {
		return 2 * time.Second, nil
	}
	d, err := time.ParseDuration(c.Preference.Interval)
	if err != nil {
		return 0, fmt.Errorf("preference: invalid interval %q: %w", c.Preference.Interval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("preference: interval must be positive, got %s", d)
	}
	return d, nil
}

// Links returns fresh stylesheet links for a switcher.
func (c *Config) Links() []*stylesheet.Link {
	links := make([]*stylesheet.Link, len(c.Stylesheets))
	for i, s := range c.Stylesheets {
		links[i] = &stylesheet.Link{Href: s.Href, Media: s.Media}
	}
	return links
}

func (c *Config) ConfigPath() string {
	return c.configPath
}

func (c *Config) Save(path string) error {
	if path == "" {
		path = c.configPath
	}
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.toml")
	}

	path = expandPath(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

func (c *Config) EnsureDirectories() error {
	if c.Storage.Backend == BackendMemory || c.Storage.Path == "" {
		return nil
	}
	dir := filepath.Dir(c.Storage.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func expandEnv(s string) string {
	if s == "" {
		return ""
	}

	if strings.HasPrefix(s, "${") {
		end := strings.Index(s, "}")
		if end == -1 {
			return s
		}
		inner, rest := s[2:end], s[end+1:]

		if idx := strings.Index(inner, ":-"); idx != -1 {
			varName := inner[:idx]
			defaultVal := inner[idx+2:]
			if val := os.Getenv(varName); val != "" {
				return val + rest
			}
			return defaultVal + rest
		}

		return os.Getenv(inner) + rest
	}

	if strings.HasPrefix(s, "$") && !strings.ContainsAny(s, " /") {
		return os.Getenv(s[1:])
	}

	return s
}
