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
	"slices"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-vocab/facet"
	"github.com/ianlewis/go-vocab/filter"
	"github.com/ianlewis/go-vocab/render"
)

var formats = []string{"cards", "table", "html"}

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List vocabulary matching a search",
	ArgsUsage: "[SEARCH]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "search",
			Usage:   "match `TEXT` in words, translations and examples",
			Aliases: []string{"s"},
		},
		&cli.StringFlag{
			Name:    "level",
			Usage:   "only list words at `LEVEL`",
			Aliases: []string{"l"},
			Value:   filter.All,
		},
		&cli.StringFlag{
			Name:    "pos",
			Usage:   "only list words with part of speech `POS`",
			Aliases: []string{"p"},
			Value:   filter.All,
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "output `FORMAT` (" + strings.Join(formats, ", ") + ")",
			Value: formats[0],
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() > 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		format := c.String("format")
		if !slices.Contains(formats, format) {
			return fmt.Errorf("%w: unknown format %q", ErrFlagParse, format)
		}

		search := c.String("search")
		if c.NArg() == 1 {
			search = c.Args().First()
		}

		state, err := loadState(c)
		if err != nil {
			return err
		}
		state.SetQuery(filter.Query{
			Search:       search,
			Level:        c.String("level"),
			PartOfSpeech: c.String("pos"),
		})

		if format == "html" {
			if err := state.Page("").Render(c.App.Writer); err != nil {
				return fmt.Errorf("%w: %w", ErrVocab, err)
			}
			return nil
		}

		if _, err := fmt.Fprintln(c.App.Writer, state.Count()); err != nil {
			return fmt.Errorf("%w: %w", ErrVocab, err)
		}

		var r render.Renderer = render.TextRenderer{}
		if format == "table" {
			r = render.TableRenderer{}
		}
		// The table has no empty state of its own.
		if format == "table" && len(state.Filtered()) == 0 {
			_, err := fmt.Fprintln(c.App.Writer, "No words found")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrVocab, err)
			}
			return nil
		}
		if err := r.Render(c.App.Writer, state.Filtered()); err != nil {
			return fmt.Errorf("%w: %w", ErrVocab, err)
		}
		return nil
	},
}

var facetsCommand = &cli.Command{
	Name:  "facets",
	Usage: "List the levels and parts of speech in the vocabulary",
	Action: func(c *cli.Context) error {
		if c.NArg() != 0 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		state, err := loadState(c)
		if err != nil {
			return err
		}
		idx := state.Facets()

		tbl := table.New("Facet", "Value", "Label", "Words").WithWriter(c.App.Writer)
		addRows := func(name string, opts []facet.Option, count func(string) int) {
			for _, o := range opts {
				n := len(state.Records())
				if o.Value != filter.All {
					n = count(o.Value)
				}
				tbl.AddRow(name, o.Value, o.Label, n)
			}
		}
		addRows("level", idx.LevelOptions(), idx.LevelCount)
		addRows("pos", idx.PartOfSpeechOptions(), idx.PartOfSpeechCount)
		tbl.Print()

		return nil
	},
}
