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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-vocab"
	"github.com/ianlewis/go-vocab/filter"
	"github.com/ianlewis/go-vocab/internal/testutil"
)

func english(records []*vocab.Record) []string {
	var words []string
	for _, r := range records {
		words = append(words, r.English)
	}
	return words
}

func TestState_Load(t *testing.T) {
	t.Parallel()

	s := NewState(nil, nil)
	if want, got := "Showing 0 of 0 words", s.Count(); want != got {
		t.Fatalf("Count; want: %q, got: %q", want, got)
	}

	s.Load(testutil.MakeVocab(testutil.Records()))
	if diff := cmp.Diff(testutil.Records(), s.Records()); diff != "" {
		t.Fatalf("Records (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(testutil.Records(), s.Filtered()); diff != "" {
		t.Fatalf("Filtered (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a1", "b1", "b2"}, s.Levels()); diff != "" {
		t.Fatalf("Levels (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"adjective", "noun", "verb"}, s.PartsOfSpeech()); diff != "" {
		t.Fatalf("PartsOfSpeech (-want, +got):\n%s", diff)
	}
	if want, got := "Showing 4 of 4 words", s.Count(); want != got {
		t.Fatalf("Count; want: %q, got: %q", want, got)
	}
}

func TestState_filters(t *testing.T) {
	t.Parallel()

	s := NewState(nil, nil)
	s.Load(testutil.MakeVocab(testutil.Records()))

	s.SetLevel("a1")
	if diff := cmp.Diff([]string{"run", "book"}, english(s.Filtered())); diff != "" {
		t.Fatalf("SetLevel (-want, +got):\n%s", diff)
	}

	s.SetPartOfSpeech("noun")
	if diff := cmp.Diff([]string{"book"}, english(s.Filtered())); diff != "" {
		t.Fatalf("SetPartOfSpeech (-want, +got):\n%s", diff)
	}

	s.SetSearch("RUN")
	if diff := cmp.Diff([]string(nil), english(s.Filtered())); diff != "" {
		t.Fatalf("SetSearch (-want, +got):\n%s", diff)
	}
	if want, got := "Showing 0 of 4 words", s.Count(); want != got {
		t.Fatalf("Count; want: %q, got: %q", want, got)
	}

	// Loading new records keeps the query.
	s.SetQuery(filter.Query{Search: "a", Level: filter.All, PartOfSpeech: filter.All})
	s.Load("jump - verb - a1 - sakramoq - fe'l - I jump high.\nsit - verb - a1 - o'tirmoq - fe'l - Sit down.")
	if diff := cmp.Diff([]string{"jump"}, english(s.Filtered())); diff != "" {
		t.Fatalf("Load (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(filter.Query{Search: "a", Level: filter.All, PartOfSpeech: filter.All}, s.Query()); diff != "" {
		t.Fatalf("Query (-want, +got):\n%s", diff)
	}

	// Reset clears the query.
	s.Reset(testutil.MakeVocab(testutil.Records()))
	if !s.Query().IsZero() {
		t.Fatalf("Query after Reset: %+v", s.Query())
	}
	if want, got := 4, len(s.Filtered()); want != got {
		t.Fatalf("Filtered after Reset; want: %d, got: %d", want, got)
	}
}

func TestState_emptyLevel(t *testing.T) {
	t.Parallel()

	s := NewState(nil, nil)
	s.Load("cat - noun -  - mushuk - ot - The cat sleeps.\ndog - noun - a1 - it - ot - The dog barks.")

	s.SetLevel("")
	if diff := cmp.Diff([]string{"cat"}, english(s.Filtered())); diff != "" {
		t.Fatalf("SetLevel (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("", s.Query().Level); diff != "" {
		t.Fatalf("Level (-want, +got):\n%s", diff)
	}

	s.SetLevel(filter.All)
	if diff := cmp.Diff([]string{"cat", "dog"}, english(s.Filtered())); diff != "" {
		t.Fatalf("SetLevel (-want, +got):\n%s", diff)
	}
}

func TestState_ToggleTheme(t *testing.T) {
	t.Parallel()

	store := &MemoryThemeStore{}
	s := NewState(store, nil)
	if want, got := Light, s.Theme(); want != got {
		t.Fatalf("Theme; want: %q, got: %q", want, got)
	}

	for _, want := range []Theme{Dark, Light} {
		if got := s.ToggleTheme(); want != got {
			t.Fatalf("ToggleTheme; want: %q, got: %q", want, got)
		}
		stored, ok, err := store.LoadTheme()
		if err != nil || !ok {
			t.Fatalf("LoadTheme: %v, %v", ok, err)
		}
		if s.Theme() != stored {
			t.Fatalf("stored theme; want: %q, got: %q", s.Theme(), stored)
		}
	}
}

func TestState_restoreTheme(t *testing.T) {
	t.Parallel()

	store := &MemoryThemeStore{}
	if err := store.SaveTheme(Dark); err != nil {
		t.Fatal(err)
	}
	if want, got := Dark, NewState(store, nil).Theme(); want != got {
		t.Fatalf("Theme; want: %q, got: %q", want, got)
	}
}

type failingStore struct{}

func (failingStore) LoadTheme() (Theme, bool, error) {
	return "", false, errors.New("load failed")
}

func (failingStore) SaveTheme(Theme) error {
	return errors.New("save failed")
}

func TestState_themeStoreErrors(t *testing.T) {
	t.Parallel()

	s := NewState(failingStore{}, nil)
	if want, got := Light, s.Theme(); want != got {
		t.Fatalf("Theme; want: %q, got: %q", want, got)
	}
	if want, got := Dark, s.ToggleTheme(); want != got {
		t.Fatalf("ToggleTheme; want: %q, got: %q", want, got)
	}
}

func TestFileThemeStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "vocab", "settings")
	store := &FileThemeStore{Path: path}

	if _, ok, err := store.LoadTheme(); err != nil || ok {
		t.Fatalf("LoadTheme on missing file: %v, %v", ok, err)
	}

	s := NewState(store, nil)
	s.ToggleTheme()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("vocab settings\ntheme=dark\n", string(b)); diff != "" {
		t.Fatalf("settings file (-want, +got):\n%s", diff)
	}

	// A new session restores the theme.
	if want, got := Dark, NewState(&FileThemeStore{Path: path}, nil).Theme(); want != got {
		t.Fatalf("Theme; want: %q, got: %q", want, got)
	}
}

func TestFileThemeStore_invalidValue(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings")
	if err := os.WriteFile(path, []byte("vocab settings\ntheme=purple\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if want, got := Light, NewState(&FileThemeStore{Path: path}, nil).Theme(); want != got {
		t.Fatalf("Theme; want: %q, got: %q", want, got)
	}
}

func TestReadSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		values map[string]string
		err    bool
	}{
		{
			name:   "magic only",
			data:   "vocab settings\n",
			values: map[string]string{"theme": ""},
		},
		{
			name:   "values",
			data:   "vocab settings\ntheme = dark\n\nother=a=b\n",
			values: map[string]string{"theme": "dark", "other": "a=b"},
		},
		{
			name: "bad magic",
			data: "StarDict's dict ifo file\ntheme=dark\n",
			err:  true,
		},
		{
			name: "empty",
			data: "",
			err:  true,
		},
		{
			name: "missing separator",
			data: "vocab settings\ntheme\n",
			err:  true,
		},
		{
			name: "invalid key",
			data: "vocab settings\nthe me=dark\n",
			err:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s, err := ReadSettings(strings.NewReader(test.data))
			if test.err && err == nil {
				t.Fatal("ReadSettings: expected failure")
			}
			if !test.err && err != nil {
				t.Fatalf("ReadSettings: %v", err)
			}
			for k, want := range test.values {
				if got := s.Value(k); want != got {
					t.Errorf("Value(%q); want: %q, got: %q", k, want, got)
				}
			}
		})
	}
}
