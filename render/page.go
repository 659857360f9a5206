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
	"fmt"
	"io"

	"github.com/ianlewis/go-vocab"
	"github.com/ianlewis/go-vocab/facet"
	"github.com/ianlewis/go-vocab/filter"
)

// Page is a full HTML page showing the study controls and card grid.
type Page struct {
	// Theme is written to the root element's data-theme attribute.
	Theme string

	// Message is an optional notice shown above the controls, e.g. a
	// rejected upload.
	Message string

	// Query is the active filter query.
	Query filter.Query

	// LevelOptions and PartOfSpeechOptions populate the filter controls.
	LevelOptions        []facet.Option
	PartOfSpeechOptions []facet.Option

	// Records is the filtered record set.
	Records []*vocab.Record

	// Total is the size of the full record set.
	Total int
}

// Count returns the page's results count status line.
func (p *Page) Count() string {
	return Count(len(p.Records), p.Total)
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	if err := templates.ExecuteTemplate(w, "page", p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
