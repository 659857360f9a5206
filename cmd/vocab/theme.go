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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-vocab/session"
)

var themeCommand = &cli.Command{
	Name:      "theme",
	Usage:     "Show or toggle the display theme",
	ArgsUsage: "[toggle]",
	Action: func(c *cli.Context) error {
		if c.NArg() > 1 || (c.NArg() == 1 && c.Args().First() != "toggle") {
			return fmt.Errorf("%w: unexpected arguments: %v", ErrFlagParse, c.Args().Slice())
		}

		state := session.NewState(themeStore(c), logger(c))
		theme := state.Theme()
		if c.NArg() == 1 {
			theme = state.ToggleTheme()
		}

		if _, err := fmt.Fprintln(c.App.Writer, theme); err != nil {
			return fmt.Errorf("%w: %w", ErrVocab, err)
		}
		return nil
	},
}
