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

package vocab

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Record is a single vocabulary entry.
type Record struct {
	// English is the headword.
	English string

	// PartOfSpeech is the headword's part of speech (e.g. "verb").
	PartOfSpeech string

	// Level is the study level (e.g. "a1"). It is compared as written and
	// only uppercased for display.
	Level string

	// Translation is the translated headword.
	Translation string

	// TranslationPartOfSpeech is the part of speech of the translation.
	TranslationPartOfSpeech string

	// ExampleSource is an example sentence using the headword.
	ExampleSource string

	// ExampleTranslation is the translated example sentence. It may be empty.
	ExampleTranslation string
}

// DisplayLevel returns the level as it should be shown to the user.
func (r *Record) DisplayLevel() string {
	return cases.Upper(language.Und).String(r.Level)
}

// String implements [fmt.Stringer].
func (r *Record) String() string {
	return r.English
}
