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

package speech

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// fakeSynth records utterances and blocks until canceled or released.
type fakeSynth struct {
	mu        sync.Mutex
	active    int
	maxActive int
	spoken    []Utterance
	canceled  []string
	err       error

	started chan string
	release chan struct{}
}

func newFakeSynth() *fakeSynth {
	return &fakeSynth{
		started: make(chan string, 10),
		release: make(chan struct{}),
	}
}

func (f *fakeSynth) Speak(ctx context.Context, u Utterance) error {
	f.mu.Lock()
	f.active++
	if f.active > f.maxActive {
		f.maxActive = f.active
	}
	f.spoken = append(f.spoken, u)
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.active--
		f.mu.Unlock()
	}()

	f.started <- u.Text

	select {
	case <-ctx.Done():
		f.mu.Lock()
		f.canceled = append(f.canceled, u.Text)
		f.mu.Unlock()
		return ctx.Err()
	case <-f.release:
		return f.err
	}
}

func waitStarted(t *testing.T, f *fakeSynth, want string) {
	t.Helper()
	select {
	case got := <-f.started:
		if want != got {
			t.Fatalf("started; want: %q, got: %q", want, got)
		}
	case <-time.After(time.Second):
		t.Fatalf("utterance %q did not start", want)
	}
}

func TestLanguage_Locale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang     Language
		expected string
		err      error
	}{
		{English, "en-US", nil},
		{Uzbek, "uz-UZ", nil},
		{Language("fr"), "", ErrUnsupportedLanguage},
	}

	for _, test := range tests {
		got, err := test.lang.Locale()
		if !errors.Is(err, test.err) {
			t.Errorf("Locale(%q) error; want: %v, got: %v", test.lang, test.err, err)
		}
		if test.expected != got {
			t.Errorf("Locale(%q); want: %q, got: %q", test.lang, test.expected, got)
		}
	}
}

func TestSpeaker_Speak(t *testing.T) {
	t.Parallel()

	f := newFakeSynth()
	s := NewSpeaker(f, nil)
	defer s.Close()

	s.Speak("run", English)
	waitStarted(t, f, "run")

	s.Speak("yugurmoq", Uzbek)
	waitStarted(t, f, "yugurmoq")

	close(f.release)
	s.Wait()

	f.mu.Lock()
	defer f.mu.Unlock()

	want := []Utterance{
		{Text: "run", Locale: "en-US", Rate: DefaultRate, Volume: DefaultVolume},
		{Text: "yugurmoq", Locale: "uz-UZ", Rate: DefaultRate, Volume: DefaultVolume},
	}
	if diff := cmp.Diff(want, f.spoken); diff != "" {
		t.Fatalf("spoken (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"run"}, f.canceled); diff != "" {
		t.Fatalf("canceled (-want, +got):\n%s", diff)
	}
	if want, got := 1, f.maxActive; want != got {
		t.Fatalf("max active utterances; want: %d, got: %d", want, got)
	}
}

func TestSpeaker_Suspend(t *testing.T) {
	t.Parallel()

	f := newFakeSynth()
	s := NewSpeaker(f, nil)

	s.Speak("run", English)
	waitStarted(t, f, "run")
	s.Suspend()

	f.mu.Lock()
	defer f.mu.Unlock()
	if diff := cmp.Diff([]string{"run"}, f.canceled); diff != "" {
		t.Fatalf("canceled (-want, +got):\n%s", diff)
	}
	if want, got := 0, f.active; want != got {
		t.Fatalf("active; want: %d, got: %d", want, got)
	}
}

func TestSpeaker_unsupported(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	s := NewSpeaker(nil, slog.New(slog.NewTextHandler(&b, nil)))
	if s.Supported() {
		t.Fatal("Supported: want false")
	}

	s.Speak("run", English)
	s.Wait()
	s.Suspend()

	if !strings.Contains(b.String(), "speech synthesis not supported") {
		t.Fatalf("log: %q", b.String())
	}
}

func TestSpeaker_error(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	f := newFakeSynth()
	f.err = errors.New("audio device busy")
	close(f.release)
	s := NewSpeaker(f, slog.New(slog.NewTextHandler(&b, nil)))

	s.Speak("run", English)
	waitStarted(t, f, "run")
	s.Wait()

	if !strings.Contains(b.String(), "audio device busy") {
		t.Fatalf("log: %q", b.String())
	}

	b.Reset()
	s.Speak("run", Language("fr"))
	s.Wait()
	if !strings.Contains(b.String(), "unsupported language") {
		t.Fatalf("log: %q", b.String())
	}
}

func TestCommandSynthesizer_Args(t *testing.T) {
	t.Parallel()

	c := &CommandSynthesizer{Path: DefaultCommand}

	got, err := c.Args(Utterance{Text: "-run", Locale: "en-US", Rate: DefaultRate, Volume: DefaultVolume})
	if err != nil {
		t.Fatalf("Args: %v", err)
	}
	want := []string{"-v", "en-us", "-s", "140", "-a", "80", "--", "-run"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Args (-want, +got):\n%s", diff)
	}

	if _, err := c.Args(Utterance{Text: "x", Locale: "fr-FR"}); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("Args error; want: %v, got: %v", ErrUnsupportedLanguage, err)
	}
}
