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

package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-vocab"
	"github.com/ianlewis/go-vocab/facet"
	"github.com/ianlewis/go-vocab/filter"
	"github.com/ianlewis/go-vocab/internal/testutil"
	"github.com/ianlewis/go-vocab/render"
)

// TestCount tests Count.
func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filtered int
		total    int
		expected string
	}{
		{7, 42, "Showing 7 of 42 words"},
		{0, 0, "Showing 0 of 0 words"},
		{3, 3, "Showing 3 of 3 words"},
	}

	for _, test := range tests {
		if diff := cmp.Diff(test.expected, render.Count(test.filtered, test.total)); diff != "" {
			t.Errorf("Count(%d, %d) (-want, +got):\n%s", test.filtered, test.total, diff)
		}
	}
}

// TestHTMLRenderer tests HTMLRenderer.Render.
func TestHTMLRenderer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		records  []*vocab.Record
		contains []string
		excludes []string
	}{
		{
			name:     "empty",
			records:  nil,
			contains: []string{`class="empty-state"`, "No words found"},
			excludes: []string{"vocabulary-grid", "vocabulary-card"},
		},
		{
			name:    "cards",
			records: testutil.Records(),
			contains: []string{
				`class="vocabulary-grid"`,
				"<h3>run</h3>",
				`<span class="word-index">1</span>`,
				`<span class="word-index">4</span>`,
				`<span class="tag tag-pos">verb</span>`,
				`<span class="tag tag-level">B2</span>`,
				"<h4>tashlab ketmoq</h4>",
				"Men har kuni yuguraman.",
			},
			excludes: []string{"empty-state", `<span class="word-index">0</span>`},
		},
		{
			name: "markup is escaped",
			records: []*vocab.Record{
				{
					English:                 "<script>alert(1)</script>",
					PartOfSpeech:            `"><b>`,
					Level:                   "a1",
					Translation:             "<img src=x onerror=alert(1)>",
					TranslationPartOfSpeech: "ot",
					ExampleSource:           "a & b",
				},
			},
			contains: []string{"&lt;script&gt;", "&lt;img", "a &amp; b"},
			excludes: []string{"<script>", "<img", "<b>"},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var b bytes.Buffer
			if err := (render.HTMLRenderer{}).Render(&b, test.records); err != nil {
				t.Fatalf("Render: %v", err)
			}
			out := b.String()
			for _, s := range test.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output does not contain %q:\n%s", s, out)
				}
			}
			for _, s := range test.excludes {
				if strings.Contains(out, s) {
					t.Errorf("output contains %q:\n%s", s, out)
				}
			}
		})
	}
}

// TestHTMLRenderer_exampleTranslation tests that the translated example is
// omitted when empty.
func TestHTMLRenderer_exampleTranslation(t *testing.T) {
	t.Parallel()

	records := testutil.Records()
	var b bytes.Buffer
	if err := (render.HTMLRenderer{}).Render(&b, records); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var want int
	for _, r := range records {
		if r.ExampleTranslation != "" {
			want++
		}
	}
	if got := strings.Count(b.String(), "Tarjima:"); want != got {
		t.Fatalf("translated examples; want: %d, got: %d", want, got)
	}
	if want, got := len(records), strings.Count(b.String(), "Example:"); want != got {
		t.Fatalf("examples; want: %d, got: %d", want, got)
	}
}

// TestTextRenderer tests TextRenderer.Render.
func TestTextRenderer(t *testing.T) {
	t.Parallel()

	records := append(testutil.Records(), &vocab.Record{
		English:       "\x1b[2Jclear",
		PartOfSpeech:  "noun",
		Level:         "c1",
		Translation:   "tozalash",
		ExampleSource: "x",
	})

	var b bytes.Buffer
	if err := (render.TextRenderer{}).Render(&b, records); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.String()

	for _, s := range []string{"run", "yugurmoq", "Men har kuni yuguraman.", "B2", "[2Jclear"} {
		if !strings.Contains(out, s) {
			t.Errorf("output does not contain %q:\n%s", s, out)
		}
	}
	for _, s := range []string{"<h3>", "\x1b"} {
		if strings.Contains(out, s) {
			t.Errorf("output contains %q:\n%s", s, out)
		}
	}
}

// TestTableRenderer tests TableRenderer.Render.
func TestTableRenderer(t *testing.T) {
	t.Parallel()

	records := testutil.Records()
	records[0].ExampleSource = "I run\tevery\nday."

	var b bytes.Buffer
	if err := (render.TableRenderer{}).Render(&b, records); err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")

	// One header line and one line per record.
	if want, got := len(records)+1, len(lines); want != got {
		t.Fatalf("lines; want: %d, got: %d\n%s", want, got, b.String())
	}
	if !strings.Contains(lines[1], "I run every day.") {
		t.Fatalf("first row not folded: %q", lines[1])
	}
	if !strings.Contains(lines[3], "B2") {
		t.Fatalf("third row level: %q", lines[3])
	}
}

// TestPage tests Page.Render.
func TestPage(t *testing.T) {
	t.Parallel()

	records := testutil.Records()
	idx := facet.New(records)
	q := filter.Query{Search: "<q>", Level: "a1", PartOfSpeech: filter.All}
	p := &render.Page{
		Theme:               "dark",
		Message:             "Please select a valid text file (.txt)",
		Query:               q,
		LevelOptions:        idx.LevelOptions(),
		PartOfSpeechOptions: idx.PartOfSpeechOptions(),
		Records:             filter.Filter(records, q),
		Total:               len(records),
	}

	var b bytes.Buffer
	if err := p.Render(&b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.String()

	for _, s := range []string{
		`data-theme="dark"`,
		"Please select a valid text file (.txt)",
		`value="&lt;q&gt;"`,
		`<option value="a1" selected>A1</option>`,
		`<option value="all">All Levels</option>`,
		`<option value="all" selected>All Parts of Speech</option>`,
		"Showing 0 of 4 words",
		"empty-state",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("output does not contain %q:\n%s", s, out)
		}
	}
}
