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
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
)

// settingsMagic is the first line of a settings file.
const settingsMagic = "vocab settings"

var (
	errBadMagic   = errors.New("bad magic data")
	errInvalidKey = errors.New("invalid key")
	errBadLine    = errors.New("bad line")
)

var keyRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Settings is a small key-value settings file. The first line is a magic
// string followed by one key=value pair per line.
type Settings struct {
	values map[string]string
}

// NewSettings returns empty settings.
func NewSettings() *Settings {
	return &Settings{
		values: map[string]string{},
	}
}

// ReadSettings reads settings from r.
func ReadSettings(r io.Reader) (*Settings, error) {
	s := bufio.NewScanner(r)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
		return nil, errBadMagic
	}
	if s.Text() != settingsMagic {
		return nil, errBadMagic
	}

	settings := NewSettings()
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errBadLine, line)
		}
		key = strings.TrimSpace(key)
		if !keyRegex.MatchString(key) {
			return nil, fmt.Errorf("%w: %q", errInvalidKey, key)
		}
		settings.values[key] = strings.TrimSpace(value)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	return settings, nil
}

// Value returns the value for key or the empty string.
func (s *Settings) Value(key string) string {
	return s.values[key]
}

// Set sets the value for key.
func (s *Settings) Set(key, value string) error {
	if !keyRegex.MatchString(key) {
		return fmt.Errorf("%w: %q", errInvalidKey, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: value for %q contains a line break", errBadLine, key)
	}
	s.values[key] = value
	return nil
}

// WriteTo writes the settings to w with keys in sorted order.
func (s *Settings) WriteTo(w io.Writer) (int64, error) {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString(settingsMagic + "\n")
	for _, k := range keys {
		b.WriteString(k + "=" + s.values[k] + "\n")
	}

	n, err := io.WriteString(w, b.String())
	if err != nil {
		return int64(n), fmt.Errorf("writing settings: %w", err)
	}
	return int64(n), nil
}
