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

package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"

	"github.com/ianlewis/go-vocab"
	"github.com/ianlewis/go-vocab/internal/folding"
)

// TextRenderer renders records as plain text cards for a terminal. Control
// characters in record fields are dropped.
type TextRenderer struct{}

// Render implements [Renderer.Render].
func (TextRenderer) Render(w io.Writer, records []*vocab.Record) error {
	var b bytes.Buffer
	if err := (HTMLRenderer{}).Render(&b, foldAll(records)); err != nil {
		return err
	}
	text := html2text.HTML2TextWithOptions(b.String(), html2text.WithUnixLineBreaks())
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return fmt.Errorf("writing cards: %w", err)
	}
	return nil
}

// TableRenderer renders one record per row.
type TableRenderer struct{}

// Render implements [Renderer.Render].
func (TableRenderer) Render(w io.Writer, records []*vocab.Record) error {
	tbl := table.New("#", "English", "Part of Speech", "Level", "Translation", "Example").WithWriter(w)
	for i, r := range foldAll(records) {
		tbl.AddRow(i+1, r.English, r.PartOfSpeech, r.DisplayLevel(), r.Translation, r.ExampleSource)
	}
	tbl.Print()
	return nil
}

// foldAll returns copies of records with every field folded onto a single
// line.
func foldAll(records []*vocab.Record) []*vocab.Record {
	folded := make([]*vocab.Record, 0, len(records))
	for _, r := range records {
		folded = append(folded, &vocab.Record{
			English:                 folding.Line(r.English),
			PartOfSpeech:            folding.Line(r.PartOfSpeech),
			Level:                   folding.Line(r.Level),
			Translation:             folding.Line(r.Translation),
			TranslationPartOfSpeech: folding.Line(r.TranslationPartOfSpeech),
			ExampleSource:           folding.Line(r.ExampleSource),
			ExampleTranslation:      folding.Line(r.ExampleTranslation),
		})
	}
	return folded
}
