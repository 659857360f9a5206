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

package testutil

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-vocab"
)

// MakeVocabOptions are options for creating a temporary vocabulary file.
type MakeVocabOptions struct {
	// Ext is an option file extension for the vocabulary file. Defaults to
	// '.txt.dz' if DictZip is true. Otherwise '.txt'.
	Ext string

	// DictZip indicates that the file should be compressed with DictZip.
	DictZip bool
}

// GetExt returns the file extension to use.
func (o *MakeVocabOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".txt.dz"
		}
	}
	return ".txt"
}

// MakeLine formats a record as a vocabulary file line. The example
// translation field is omitted when empty.
func MakeLine(r *vocab.Record) string {
	fields := []string{
		r.English,
		r.PartOfSpeech,
		r.Level,
		r.Translation,
		r.TranslationPartOfSpeech,
		r.ExampleSource,
	}
	if r.ExampleTranslation != "" {
		fields = append(fields, r.ExampleTranslation)
	}
	return strings.Join(fields, vocab.Delimiter)
}

// MakeVocab creates vocabulary file contents from the given records.
func MakeVocab(records []*vocab.Record) string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, MakeLine(r))
	}
	return strings.Join(lines, "\n") + "\n"
}

// MakeTempVocab creates a temporary vocabulary file and returns the file.
// The file is removed when the test completes.
func MakeTempVocab(t *testing.T, contents string, opts *MakeVocabOptions) *os.File {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "vocab.*"+opts.GetExt())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = f.Close()
	})

	if opts != nil && opts.DictZip {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write([]byte(contents)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	} else {
		if _, err := f.Write([]byte(contents)); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}

	return f
}

// Records returns a small fixed set of records used across tests.
func Records() []*vocab.Record {
	return []*vocab.Record{
		{
			English:                 "run",
			PartOfSpeech:            "verb",
			Level:                   "a1",
			Translation:             "yugurmoq",
			TranslationPartOfSpeech: "fe'l",
			ExampleSource:           "I run every day.",
			ExampleTranslation:      "Men har kuni yuguraman.",
		},
		{
			English:                 "book",
			PartOfSpeech:            "noun",
			Level:                   "a1",
			Translation:             "kitob",
			TranslationPartOfSpeech: "ot",
			ExampleSource:           "This book is new.",
			ExampleTranslation:      "Bu kitob yangi.",
		},
		{
			English:                 "abandon",
			PartOfSpeech:            "verb",
			Level:                   "b2",
			Translation:             "tashlab ketmoq",
			TranslationPartOfSpeech: "fe'l",
			ExampleSource:           "They abandoned the car.",
		},
		{
			English:                 "brave",
			PartOfSpeech:            "adjective",
			Level:                   "b1",
			Translation:             "jasur",
			TranslationPartOfSpeech: "sifat",
			ExampleSource:           "She is very brave.",
			ExampleTranslation:      "U juda jasur.",
		},
	}
}
