// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Theme is the display theme.
type Theme string

const (
	// Light is the default theme.
	Light Theme = "light"

	// Dark is the dark theme.
	Dark Theme = "dark"
)

// themeKey is the settings key holding the theme.
const themeKey = "theme"

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ParseTheme parses a stored theme value. Unknown values return false.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	default:
		return "", false
	}
}

// ThemeStore persists the theme preference.
type ThemeStore interface {
	// LoadTheme returns the stored theme and whether one was stored.
	LoadTheme() (Theme, bool, error)

	// SaveTheme stores the theme.
	SaveTheme(Theme) error
}

// MemoryThemeStore is a ThemeStore that keeps the theme in memory.
type MemoryThemeStore struct {
	mu    sync.Mutex
	theme Theme
}

// LoadTheme implements [ThemeStore.LoadTheme].
func (m *MemoryThemeStore) LoadTheme() (Theme, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme, m.theme != "", nil
}

// SaveTheme implements [ThemeStore.SaveTheme].
func (m *MemoryThemeStore) SaveTheme(t Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = t
	return nil
}

// FileThemeStore stores the theme in a settings file.
type FileThemeStore struct {
	// Path is the path to the settings file.
	Path string
}

// DefaultSettingsPath returns the default settings file path under the
// user's configuration directory.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config dir: %w", err)
	}
	return filepath.Join(dir, "vocab", "settings"), nil
}

// LoadTheme implements [ThemeStore.LoadTheme].
func (f *FileThemeStore) LoadTheme() (Theme, bool, error) {
	s, err := f.read()
	if err != nil {
		return "", false, err
	}
	t, ok := ParseTheme(s.Value(themeKey))
	return t, ok, nil
}

// SaveTheme implements [ThemeStore.SaveTheme].
func (f *FileThemeStore) SaveTheme(t Theme) error {
	s, err := f.read()
	if err != nil {
		// Replace an unreadable settings file rather than failing to save.
		s = NewSettings()
	}
	if err := s.Set(themeKey, string(t)); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), ".settings.*")
	if err != nil {
		return fmt.Errorf("creating settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := s.WriteTo(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

func (f *FileThemeStore) read() (*Settings, error) {
	file, err := os.Open(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening settings: %w", err)
	}
	defer file.Close()

	s, err := ReadSettings(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return s, nil
}
