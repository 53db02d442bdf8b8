// Package settings holds the user settings that can change while the
// calculator runs: the stack color theme and the number of extra columns.
//
// Settings are persisted as YAML and may be edited from outside the
// program; each field has its own observer list so the parts of the UI
// that depend on one field are only told about that field.
package settings

import (
	"strings"
)

// ColorTheme selects how stack entries are colored.
type ColorTheme string

const (
	// Standard draws input in the text color and output in the accent color.
	Standard ColorTheme = "standard"
	// Rainbow gives every entry its own palette color.
	Rainbow ColorTheme = "rainbow"
)

// ParseColorTheme maps a settings value to a theme. Unknown values are
// Standard.
func ParseColorTheme(s string) ColorTheme {
	if ColorTheme(strings.ToLower(strings.TrimSpace(s))) == Rainbow {
		return Rainbow
	}
	return Standard
}

// MaxExtraCols is the largest accepted extra column count.
const MaxExtraCols = 1

// Values is the persisted form of the settings.
type Values struct {
	ColorTheme ColorTheme `yaml:"color_theme" mapstructure:"color_theme"`
	ExtraCols  int        `yaml:"extra_cols" mapstructure:"extra_cols"`
}

// Defaults returns the settings used before anything is saved.
func Defaults() Values {
	return Values{ColorTheme: Standard, ExtraCols: 0}
}

// Normalize maps unknown themes to Standard and clamps ExtraCols.
func (v Values) Normalize() Values {
	v.ColorTheme = ParseColorTheme(string(v.ColorTheme))
	v.ExtraCols = clampCols(v.ExtraCols)
	return v
}

func clampCols(n int) int {
	return min(max(n, 0), MaxExtraCols)
}

// Settings is the live settings object. It is owned by the UI loop and is
// not safe for concurrent use.
type Settings struct {
	path   string
	values Values

	themeObs observers[ColorTheme]
	colsObs  observers[int]
}

// New returns default settings that persist to path.
func New(path string) *Settings {
	return &Settings{path: path, values: Defaults()}
}

// Load returns settings read from path. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	s := New(path)
	v, err := Read(path)
	if err != nil {
		return nil, err
	}
	s.values = v
	return s, nil
}

// Path is the settings file location.
func (s *Settings) Path() string { return s.path }

// Values returns the current settings.
func (s *Settings) Values() Values { return s.values }

func (s *Settings) ColorTheme() ColorTheme { return s.values.ColorTheme }

// AlternateColors reports whether the rainbow theme is active.
func (s *Settings) AlternateColors() bool { return s.values.ColorTheme == Rainbow }

func (s *Settings) ExtraCols() int { return s.values.ExtraCols }

// SetColorTheme changes the theme and notifies its observers. It reports
// whether the value changed.
func (s *Settings) SetColorTheme(t ColorTheme) bool {
	t = ParseColorTheme(string(t))
	if t == s.values.ColorTheme {
		return false
	}
	s.values.ColorTheme = t
	s.themeObs.notify(t)
	return true
}

// SetExtraCols changes the extra column count, clamped to
// [0, MaxExtraCols], and notifies its observers. It reports whether the
// value changed.
func (s *Settings) SetExtraCols(n int) bool {
	n = clampCols(n)
	if n == s.values.ExtraCols {
		return false
	}
	s.values.ExtraCols = n
	s.colsObs.notify(n)
	return true
}

// ToggleColorTheme switches between Standard and Rainbow.
func (s *Settings) ToggleColorTheme() ColorTheme {
	next := Rainbow
	if s.values.ColorTheme == Rainbow {
		next = Standard
	}
	s.SetColorTheme(next)
	return next
}

// ToggleExtraCols switches the extra column on or off.
func (s *Settings) ToggleExtraCols() int {
	next := MaxExtraCols
	if s.values.ExtraCols > 0 {
		next = 0
	}
	s.SetExtraCols(next)
	return next
}

// OnColorTheme subscribes fn to theme changes.
func (s *Settings) OnColorTheme(fn func(ColorTheme)) (unsubscribe func()) {
	return s.themeObs.add(fn)
}

// OnExtraCols subscribes fn to extra column changes.
func (s *Settings) OnExtraCols(fn func(int)) (unsubscribe func()) {
	return s.colsObs.add(fn)
}

// Reload reads the settings file again and applies any differences
// through the setters, so only the changed fields are announced.
func (s *Settings) Reload() (changed bool, err error) {
	v, err := Read(s.path)
	if err != nil {
		return false, err
	}
	themeChanged := s.SetColorTheme(v.ColorTheme)
	colsChanged := s.SetExtraCols(v.ExtraCols)
	return themeChanged || colsChanged, nil
}

// Snapshot returns a detached copy with the same path and values and no
// observers. It can be saved from another goroutine.
func (s *Settings) Snapshot() *Settings {
	return &Settings{path: s.path, values: s.values}
}

// Save writes the current settings to the settings file.
func (s *Settings) Save() error {
	return Write(s.path, s.values)
}
