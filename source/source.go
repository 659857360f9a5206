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

// Package source reads vocabulary text from files, uploads and URLs.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ianlewis/go-dictzip"
)

// MaxSize is the maximum size of vocabulary text in bytes.
const MaxSize = 10 * 1024 * 1024

var (
	// ErrNotPlainText indicates that the content is not plain text.
	ErrNotPlainText = errors.New("not a plain text file")

	// ErrTooLarge indicates that the content exceeds MaxSize.
	ErrTooLarge = errors.New("vocabulary too large")

	// ErrFetch indicates that fetching a URL failed.
	ErrFetch = errors.New("fetching vocabulary")
)

// RejectMessage is shown to users when a file is rejected.
const RejectMessage = "Please select a valid text file (.txt)"

// IsDictZip reports whether the path names a dictzip compressed file.
func IsDictZip(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".dz")
}

// ReadFile reads vocabulary text from the file at path. Files ending in .dz
// are decompressed first. The content must be plain text.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if IsDictZip(path) {
		z, err := dictzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("reading %q: %w", path, err)
		}
		defer z.Close()
		r = z
	}

	text, err := Read(r)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	return text, nil
}

// Read reads vocabulary text from r. The content must be plain text and no
// larger than MaxSize.
func Read(r io.Reader) (string, error) {
	// Read one byte past the limit to detect oversized input.
	b, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return "", fmt.Errorf("reading vocabulary: %w", err)
	}
	if len(b) > MaxSize {
		return "", fmt.Errorf("%w: more than %d bytes", ErrTooLarge, MaxSize)
	}
	if err := CheckPlainText(b); err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPlainText returns ErrNotPlainText unless b is detected as plain text
// or a subtype of it.
func CheckPlainText(b []byte) error {
	detected := mimetype.Detect(b)
	for m := detected; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return nil
		}
	}
	return fmt.Errorf("%w: detected %s", ErrNotPlainText, detected.String())
}

// Loader loads the default vocabulary content.
type Loader struct {
	// Client is the HTTP client used for URLs. Defaults to
	// [http.DefaultClient].
	Client *http.Client

	// Logger logs load failures. Defaults to [slog.Default].
	Logger *slog.Logger
}

// Load reads vocabulary text from loc, which is either an http(s) URL or a
// file path.
func (l *Loader) Load(ctx context.Context, loc string) (string, error) {
	if !isURL(loc) {
		return ReadFile(loc)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "text/plain")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s: status %d", ErrFetch, loc, resp.StatusCode)
	}

	var b bytes.Buffer
	if _, err := b.ReadFrom(io.LimitReader(resp.Body, MaxSize+1)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetch, err)
	}
	return Read(&b)
}

// Fetch loads the default vocabulary once. Any failure is logged and
// results in empty content so the application can start with no records.
func (l *Loader) Fetch(ctx context.Context, loc string) string {
	text, err := l.Load(ctx, loc)
	if err != nil {
		logger := l.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("loading default vocabulary", "location", loc, "error", err)
		return ""
	}
	return text
}

func isURL(loc string) bool {
	return strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://")
}
