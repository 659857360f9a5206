// Copyright 2025 Ian Lewis
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

// Package folding implements text transformers used when printing untrusted
// vocabulary text to a terminal.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// LineFolder folds its input onto a single line. Leading and trailing
// whitespace is removed, internal whitespace spans become a single ASCII
// space, and other control runes (e.g. the ESC that starts a terminal escape
// sequence) are dropped.
type LineFolder struct {
	// started is true after the first emitted rune.
	started bool

	// pending is true while inside an internal whitespace span.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (f *LineFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		switch {
		case unicode.IsSpace(c):
			// Leading whitespace is dropped. Trailing whitespace is never
			// emitted because a span is only written before the next rune.
			if f.started {
				f.pending = true
			}
			nSrc += size
			continue
		case unicode.IsControl(c):
			nSrc += size
			continue
		}

		need := utf8.RuneLen(c)
		if f.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if f.pending {
			dst[nDst] = ' '
			nDst++
			f.pending = false
		}
		// NOTE: c may be utf8.RuneError in which case size is 1 but the
		// encoded length is 3.
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
		f.started = true
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (f *LineFolder) Reset() {
	*f = LineFolder{}
}

// Line folds s onto a single line.
func Line(s string) string {
	out, _, err := transform.String(&LineFolder{}, s)
	if err != nil {
		// LineFolder never returns errors other than short buffer errors,
		// which transform.String handles.
		return s
	}
	return out
}
