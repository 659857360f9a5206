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

// Package render projects vocabulary records into display output.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ianlewis/go-vocab"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).ParseFS(templateFS, "templates/*.tmpl"))

// Renderer renders a sequence of records into a display representation.
type Renderer interface {
	Render(w io.Writer, records []*vocab.Record) error
}

// Count returns the results count status line.
func Count(filtered, total int) string {
	return fmt.Sprintf("Showing %d of %d words", filtered, total)
}

// HTMLRenderer renders records as an HTML card grid. All record fields are
// escaped. An empty record set renders the empty-state placeholder instead
// of the grid.
type HTMLRenderer struct{}

// Render implements [Renderer.Render].
func (HTMLRenderer) Render(w io.Writer, records []*vocab.Record) error {
	if err := templates.ExecuteTemplate(w, "cards", records); err != nil {
		return fmt.Errorf("rendering cards: %w", err)
	}
	return nil
}
