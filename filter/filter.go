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

// Package filter selects vocabulary records by search term, level and part
// of speech.
package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ianlewis/go-vocab"
)

// All is the sentinel value that disables a categorical filter.
const All = "all"

// Query holds the filter parameters.
type Query struct {
	// Search is matched case-insensitively as a substring of the headword,
	// translation and both example sentences.
	Search string

	// Level is either All or an exact, case-sensitive level.
	Level string

	// PartOfSpeech is either All or an exact, case-sensitive part of speech.
	PartOfSpeech string
}

// IsZero reports whether the query places no constraint on records.
func (q Query) IsZero() bool {
	return q.Search == "" && isAll(q.Level) && isAll(q.PartOfSpeech)
}

// Match reports whether the record satisfies all parts of the query.
func (q Query) Match(r *vocab.Record) bool {
	return newMatcher(q).match(r)
}

// Filter returns the records matching the query in their original order.
// The input slice is not modified.
func Filter(records []*vocab.Record, q Query) []*vocab.Record {
	m := newMatcher(q)
	filtered := make([]*vocab.Record, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

type matcher struct {
	search string
	level  string
	pos    string
	lower  cases.Caser
}

func newMatcher(q Query) *matcher {
	// NOTE: Casers are stateful and must not be shared between goroutines.
	lower := cases.Lower(language.Und)
	return &matcher{
		search: lower.String(q.Search),
		level:  q.Level,
		pos:    q.PartOfSpeech,
		lower:  lower,
	}
}

func (m *matcher) match(r *vocab.Record) bool {
	return m.matchSearch(r) &&
		(isAll(m.level) || r.Level == m.level) &&
		(isAll(m.pos) || r.PartOfSpeech == m.pos)
}

func (m *matcher) matchSearch(r *vocab.Record) bool {
	if m.search == "" {
		return true
	}
	for _, field := range []string{
		r.English,
		r.Translation,
		r.ExampleSource,
		r.ExampleTranslation,
	} {
		if strings.Contains(m.lower.String(field), m.search) {
			return true
		}
	}
	return false
}

// isAll reports whether v disables a categorical filter. An empty value is
// a real level or part of speech and is matched exactly.
func isAll(v string) bool {
	return v == All
}
