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

// Package facet derives the categorical values used to populate filter
// controls.
package facet

import (
	"strings"

	"github.com/ianlewis/go-vocab"
	"github.com/ianlewis/go-vocab/filter"
	"github.com/ianlewis/go-vocab/internal/index"
)

const (
	// AllLevelsLabel labels the option that disables the level filter.
	AllLevelsLabel = "All Levels"

	// AllPartsOfSpeechLabel labels the option that disables the part of
	// speech filter.
	AllPartsOfSpeechLabel = "All Parts of Speech"
)

// Option is a selectable filter value.
type Option struct {
	// Value is the value compared against records.
	Value string

	// Label is the text shown to the user.
	Label string
}

// Index holds the records grouped by level and by part of speech.
type Index struct {
	levels *index.Index[*vocab.Record]
	pos    *index.Index[*vocab.Record]
}

// New builds an Index from the full record set.
func New(records []*vocab.Record) *Index {
	return &Index{
		levels: index.NewIndex(records, func(r *vocab.Record) string {
			return r.Level
		}, strings.Compare),
		pos: index.NewIndex(records, func(r *vocab.Record) string {
			return r.PartOfSpeech
		}, strings.Compare),
	}
}

// Levels returns the distinct levels in sorted order.
func (idx *Index) Levels() []string {
	return idx.levels.Keys()
}

// PartsOfSpeech returns the distinct parts of speech in sorted order.
func (idx *Index) PartsOfSpeech() []string {
	return idx.pos.Keys()
}

// LevelCount returns the number of records with the given level.
func (idx *Index) LevelCount(level string) int {
	return len(idx.levels.Search(level))
}

// PartOfSpeechCount returns the number of records with the given part of
// speech.
func (idx *Index) PartOfSpeechCount(pos string) int {
	return len(idx.pos.Search(pos))
}

// LevelOptions returns the level select options. Levels are labelled in
// uppercase.
func (idx *Index) LevelOptions() []Option {
	return Options(idx.Levels(), AllLevelsLabel, func(v string) string {
		return (&vocab.Record{Level: v}).DisplayLevel()
	})
}

// PartOfSpeechOptions returns the part of speech select options.
func (idx *Index) PartOfSpeechOptions() []Option {
	return Options(idx.PartsOfSpeech(), AllPartsOfSpeechLabel, nil)
}

// Levels returns the distinct levels of records in sorted order.
func Levels(records []*vocab.Record) []string {
	return New(records).Levels()
}

// PartsOfSpeech returns the distinct parts of speech of records in sorted
// order.
func PartsOfSpeech(records []*vocab.Record) []string {
	return New(records).PartsOfSpeech()
}

// Options builds a select option list. The first option is always
// [filter.All] labelled with allLabel. display formats value labels; nil
// uses the value as is.
func Options(values []string, allLabel string, display func(string) string) []Option {
	opts := make([]Option, 0, len(values)+1)
	opts = append(opts, Option{Value: filter.All, Label: allLabel})
	for _, v := range values {
		label := v
		if display != nil {
			label = display(v)
		}
		opts = append(opts, Option{Value: v, Label: label})
	}
	return opts
}
