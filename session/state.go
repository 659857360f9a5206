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

// Package session holds the state of a vocabulary study session: the loaded
// record set, the current filtered view and the display theme.
package session

import (
	"log/slog"

	"github.com/ianlewis/go-vocab"
	"github.com/ianlewis/go-vocab/facet"
	"github.com/ianlewis/go-vocab/filter"
	"github.com/ianlewis/go-vocab/render"
)

// State is a study session. The filtered view is recomputed whenever the
// record set or the query changes. State is not safe for concurrent use.
type State struct {
	store  ThemeStore
	logger *slog.Logger

	theme    Theme
	query    filter.Query
	full     []*vocab.Record
	filtered []*vocab.Record
	facets   *facet.Index
}

// NewState returns a new State with no records. The theme is restored from
// store and defaults to [Light]. A nil store keeps the theme in memory. A nil
// logger uses [slog.Default].
func NewState(store ThemeStore, logger *slog.Logger) *State {
	if store == nil {
		store = &MemoryThemeStore{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &State{
		store:  store,
		logger: logger,
		theme:  Light,
		query:  filter.Query{Level: filter.All, PartOfSpeech: filter.All},
		facets: facet.New(nil),
	}

	t, ok, err := store.LoadTheme()
	switch {
	case err != nil:
		logger.Warn("loading theme", "error", err)
	case ok:
		s.theme = t
	}

	return s
}

// Load parses text and replaces the record set. The current query is kept.
func (s *State) Load(text string) {
	s.SetRecords(vocab.Parse(text))
}

// SetRecords replaces the record set. The current query is kept.
func (s *State) SetRecords(records []*vocab.Record) {
	s.full = records
	s.facets = facet.New(records)
	s.refilter()
	s.logger.Debug("loaded vocabulary", "records", len(records))
}

// Reset clears the query and reloads the record set from text.
func (s *State) Reset(text string) {
	s.query = filter.Query{Level: filter.All, PartOfSpeech: filter.All}
	s.Load(text)
}

// Query returns the current query.
func (s *State) Query() filter.Query {
	return s.query
}

// SetQuery replaces the current query. Only [filter.All] disables the level
// and part of speech filters.
func (s *State) SetQuery(q filter.Query) {
	s.query = q
	s.refilter()
}

// SetSearch sets the search term.
func (s *State) SetSearch(search string) {
	q := s.query
	q.Search = search
	s.SetQuery(q)
}

// SetLevel sets the level filter. [filter.All] disables it.
func (s *State) SetLevel(level string) {
	q := s.query
	q.Level = level
	s.SetQuery(q)
}

// SetPartOfSpeech sets the part of speech filter. [filter.All] disables it.
func (s *State) SetPartOfSpeech(pos string) {
	q := s.query
	q.PartOfSpeech = pos
	s.SetQuery(q)
}

// Records returns the full record set.
func (s *State) Records() []*vocab.Record {
	return s.full
}

// Filtered returns the records matching the current query in their
// original order.
func (s *State) Filtered() []*vocab.Record {
	return s.filtered
}

// Facets returns the facet index of the full record set.
func (s *State) Facets() *facet.Index {
	return s.facets
}

// Levels returns the distinct levels of the full record set in sorted
// order.
func (s *State) Levels() []string {
	return s.facets.Levels()
}

// PartsOfSpeech returns the distinct parts of speech of the full record set
// in sorted order.
func (s *State) PartsOfSpeech() []string {
	return s.facets.PartsOfSpeech()
}

// Count returns the results count status line.
func (s *State) Count() string {
	return render.Count(len(s.filtered), len(s.full))
}

// Theme returns the current theme.
func (s *State) Theme() Theme {
	return s.theme
}

// ToggleTheme switches the theme, saves it and returns the new theme. A
// failure to save is logged and the new theme is kept for this session.
func (s *State) ToggleTheme() Theme {
	s.theme = s.theme.Toggle()
	if err := s.store.SaveTheme(s.theme); err != nil {
		s.logger.Warn("saving theme", "error", err)
	}
	return s.theme
}

// Page returns the HTML page for the current state.
func (s *State) Page(message string) *render.Page {
	return &render.Page{
		Theme:               string(s.theme),
		Message:             message,
		Query:               s.query,
		LevelOptions:        s.facets.LevelOptions(),
		PartOfSpeechOptions: s.facets.PartOfSpeechOptions(),
		Records:             s.filtered,
		Total:               len(s.full),
	}
}

func (s *State) refilter() {
	s.filtered = filter.Filter(s.full, s.query)
}
