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
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-vocab/internal/tui"
	"github.com/ianlewis/go-vocab/session"
)

var browseCommand = &cli.Command{
	Name:  "browse",
	Usage: "Browse vocabulary interactively",
	Flags: []cli.Flag{
		speechCommandFlag(),
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 0 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		if c.String("vocabulary") == stdinName {
			return fmt.Errorf("%w: browsing vocabulary from stdin", ErrUnsupported)
		}

		text := loadText(c)

		// The terminal is owned by the browser from here on.
		quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
		speaker := newSpeaker(c, quiet)
		defer speaker.Close()

		err := tui.Run(c.Context, tui.Options{
			State:   session.NewState(themeStore(c), quiet),
			Speaker: speaker,
			Text:    text,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrVocab, err)
		}
		return nil
	},
}
