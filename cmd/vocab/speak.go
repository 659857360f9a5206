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

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-vocab/speech"
)

const speechCommandName = "speech-command"

func speechCommandFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    speechCommandName,
		Usage:   "speak with the espeak-ng compatible `COMMAND`",
		EnvVars: []string{"VOCAB_SPEECH_COMMAND"},
		Value:   speech.DefaultCommand,
	}
}

// newSpeaker returns a Speaker using the command named by --speech-command.
// The Speaker is unsupported if the command cannot be found.
func newSpeaker(c *cli.Context, l *slog.Logger) *speech.Speaker {
	return newCommandSpeaker(c.String(speechCommandName), l)
}

// newCommandSpeaker returns a Speaker that runs the named command and logs
// to l.
func newCommandSpeaker(name string, l *slog.Logger) *speech.Speaker {
	var synth speech.Synthesizer
	if cmd := speech.LookupCommand(name); cmd != nil {
		synth = cmd
	}
	return speech.NewSpeaker(synth, l)
}

var speakCommand = &cli.Command{
	Name:      "speak",
	Usage:     "Speak text aloud",
	ArgsUsage: "TEXT...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "lang",
			Usage: "speak in `LANG` (en, uz)",
			Value: string(speech.English),
		},
		speechCommandFlag(),
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing text", ErrFlagParse)
		}
		lang := speech.Language(c.String("lang"))
		if _, err := lang.Locale(); err != nil {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		}

		speaker := newSpeaker(c, logger(c))
		if !speaker.Supported() {
			return fmt.Errorf("%w: speech synthesis: %s not found", ErrUnsupported, c.String(speechCommandName))
		}
		defer speaker.Close()

		speaker.Speak(strings.Join(c.Args().Slice(), " "), lang)

		done := make(chan struct{})
		go func() {
			speaker.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-c.Context.Done():
		}
		return nil
	},
}
