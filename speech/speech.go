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

// Package speech speaks vocabulary text through an optional platform voice
// synthesizer. At most one utterance is active at a time; a new request
// cancels the previous one.
package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrUnsupportedLanguage indicates a language with no configured voice.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is a language that can be spoken.
type Language string

const (
	// English is spoken with a US English voice.
	English Language = "en"

	// Uzbek is spoken with an Uzbek voice.
	Uzbek Language = "uz"
)

const (
	// DefaultRate is the speaking rate relative to normal speed.
	DefaultRate = 0.8

	// DefaultVolume is the volume relative to full volume.
	DefaultVolume = 0.8
)

// Locale returns the voice locale for the language.
func (l Language) Locale() (string, error) {
	switch l {
	case English:
		return "en-US", nil
	case Uzbek:
		return "uz-UZ", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, string(l))
	}
}

// Utterance is a single unit of speech.
type Utterance struct {
	// Text is the text to speak.
	Text string

	// Locale is the voice locale, e.g. "en-US".
	Locale string

	// Rate is the speaking rate where 1 is normal speed.
	Rate float64

	// Volume is the volume between 0 and 1.
	Volume float64
}

// Synthesizer is a platform speech capability. Speak blocks until the
// utterance has been spoken or ctx is canceled.
type Synthesizer interface {
	Speak(ctx context.Context, u Utterance) error
}

// Speaker speaks text through a Synthesizer. It is safe for concurrent use.
type Speaker struct {
	synth  Synthesizer
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSpeaker returns a new Speaker. A nil synth gives a Speaker that logs a
// warning and does nothing. A nil logger uses [slog.Default].
func NewSpeaker(synth Synthesizer, logger *slog.Logger) *Speaker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Speaker{
		synth:  synth,
		logger: logger,
	}
}

// Supported reports whether a synthesizer is available.
func (s *Speaker) Supported() bool {
	return s.synth != nil
}

// Speak cancels any in-flight utterance and starts speaking text in the
// given language. It returns without waiting for speech to finish. Errors
// are logged and never returned.
func (s *Speaker) Speak(text string, lang Language) {
	if s.synth == nil {
		s.logger.Warn("speech synthesis not supported")
		return
	}

	locale, err := lang.Locale()
	if err != nil {
		s.logger.Warn("speech synthesis error", "error", err)
		return
	}
	u := Utterance{
		Text:   text,
		Locale: locale,
		Rate:   DefaultRate,
		Volume: DefaultVolume,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go func() {
		defer close(done)
		defer cancel()
		if err := s.synth.Speak(ctx, u); err != nil && ctx.Err() == nil {
			s.logger.Warn("speech synthesis error", "error", err, "locale", u.Locale)
		}
	}()
}

// Suspend cancels the in-flight utterance, if any, and waits for it to
// stop. It is called when the application loses visibility.
func (s *Speaker) Suspend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Wait blocks until the current utterance, if any, has finished.
func (s *Speaker) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close cancels any in-flight utterance.
func (s *Speaker) Close() error {
	s.Suspend()
	return nil
}

// stopLocked cancels the in-flight utterance and waits for its goroutine to
// exit so that two utterances never overlap. s.mu must be held.
func (s *Speaker) stopLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
}
