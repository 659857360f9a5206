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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-vocab"
	"github.com/ianlewis/go-vocab/session"
	"github.com/ianlewis/go-vocab/source"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrVocab is a parent error for all command errors.
var ErrVocab = errors.New("vocab")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrVocab)

// ErrUnsupported indicates a feature is unsupported.
var ErrUnsupported = fmt.Errorf("%w: unsupported", ErrVocab)

// stdinName is the vocabulary name that reads from standard input.
const stdinName = "-"

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// which conflicts with our own help flag handling.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// newLogger returns a text logger writing to w at the named level. An
// invalid level uses info and logs a warning.
func newLogger(w io.Writer, levelName string) *slog.Logger {
	var level slog.Level
	invalid := false
	switch strings.ToLower(levelName) {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
		invalid = true
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	if invalid {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", levelName,
			"default_level", "info")
	}
	return logger
}

// logger returns the application logger configured by --log-level.
func logger(c *cli.Context) *slog.Logger {
	if l, ok := c.App.Metadata["logger"].(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// themeStore returns the theme store at the --settings path.
func themeStore(c *cli.Context) session.ThemeStore {
	path := c.String("settings")
	if path == "" {
		return &session.MemoryThemeStore{}
	}
	return &session.FileThemeStore{Path: path}
}

// loadText loads the vocabulary text named by --vocabulary. Load failures
// are logged and result in an empty vocabulary.
func loadText(c *cli.Context) string {
	l := &source.Loader{Logger: logger(c)}
	return l.Fetch(c.Context, c.String("vocabulary"))
}

// loadState returns a new session loaded with the vocabulary named by
// --vocabulary. The vocabulary "-" is read from standard input.
func loadState(c *cli.Context) (*session.State, error) {
	state := session.NewState(themeStore(c), logger(c))

	if c.String("vocabulary") != stdinName {
		state.Load(loadText(c))
		return state, nil
	}

	records, err := vocab.ReadAll(c.App.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading stdin: %w", ErrVocab, err)
	}
	state.SetRecords(records)
	return state, nil
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s
`, c.App.Name, versionInfo.GitVersion, strings.Join(copyrightNames, "\n"), versionInfo.String())
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrVocab, err)
	}
	return nil
}

func newVocabApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Study English-Uzbek vocabulary.",
		Description: strings.Join([]string{
			"Vocabulary study utility written in Go.",
			"http://github.com/ianlewis/go-vocab",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "vocabulary",
				Usage:   "read vocabulary from `FILE` or URL (- for stdin)",
				Aliases: []string{"f"},
				EnvVars: []string{"VOCAB_FILE"},
				Value:   defaultVocabulary(),
			},
			&cli.StringFlag{
				Name:    "settings",
				Usage:   "store settings in `FILE`",
				EnvVars: []string{"VOCAB_SETTINGS"},
				Value:   defaultSettings(),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log `LEVEL` (debug, info, warn, error)",
				EnvVars: []string{"VOCAB_LOG_LEVEL"},
				Value:   "info",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Before: func(c *cli.Context) error {
			if c.App.Metadata == nil {
				c.App.Metadata = map[string]interface{}{}
			}
			c.App.Metadata["logger"] = newLogger(c.App.ErrWriter, c.String("log-level"))
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		ExitErrHandler: func(_ *cli.Context, _ error) {},
		Commands: []*cli.Command{
			listCommand,
			facetsCommand,
			speakCommand,
			themeCommand,
			browseCommand,
			serveCommand,
		},
	}
}
