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

	"github.com/ianlewis/go-vocab/internal/server"
	"github.com/ianlewis/go-vocab/session"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Serve the vocabulary study page over HTTP",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "addr",
			Usage:   "listen on `ADDR`",
			EnvVars: []string{"VOCAB_ADDR"},
			Value:   "localhost:8080",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 0 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		if c.String("vocabulary") == stdinName {
			return fmt.Errorf("%w: serving vocabulary from stdin", ErrUnsupported)
		}

		l := logger(c)
		srv := server.New(session.NewState(themeStore(c), l), loadText(c), l)
		if err := srv.ListenAndServe(c.Context, c.String("addr")); err != nil {
			return fmt.Errorf("%w: %w", ErrVocab, err)
		}
		return nil
	},
}
