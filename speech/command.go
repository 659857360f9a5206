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
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultCommand is the espeak-ng compatible command used by
// CommandSynthesizer.
const DefaultCommand = "espeak-ng"

const (
	// normalWordsPerMinute is espeak's default speaking rate.
	normalWordsPerMinute = 175

	// fullAmplitude is the espeak amplitude at full volume.
	fullAmplitude = 100
)

// voices maps locales to espeak voice names.
var voices = map[string]string{
	"en-US": "en-us",
	"uz-UZ": "uz",
}

// CommandSynthesizer speaks by running an espeak-ng compatible command. The
// process is killed when the utterance is canceled.
type CommandSynthesizer struct {
	// Path is the path to the command.
	Path string
}

// LookupCommand returns a CommandSynthesizer for the named command found in
// PATH or nil if the command is not available.
func LookupCommand(name string) *CommandSynthesizer {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil
	}
	return &CommandSynthesizer{Path: path}
}

// Args returns the command line arguments for the utterance.
func (c *CommandSynthesizer) Args(u Utterance) ([]string, error) {
	voice, ok := voices[u.Locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, u.Locale)
	}
	return []string{
		"-v", voice,
		"-s", strconv.Itoa(int(u.Rate * normalWordsPerMinute)),
		"-a", strconv.Itoa(int(u.Volume * fullAmplitude)),
		// Stop option parsing so text starting with '-' is spoken.
		"--",
		u.Text,
	}, nil
}

// Speak implements [Synthesizer.Speak].
func (c *CommandSynthesizer) Speak(ctx context.Context, u Utterance) error {
	args, err := c.Args(u)
	if err != nil {
		return err
	}

	//nolint:gosec // the command path is configured by the user.
	cmd := exec.CommandContext(ctx, c.Path, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w: %s", c.Path, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
