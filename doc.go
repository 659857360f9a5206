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

// Package vocab implements reading vocabulary study files in pure Go.
//
// A vocabulary file is plain text with one record per line. Fields are
// separated by the literal sequence " - " and appear in this order:
//  1. The English headword.
//  2. The headword's part of speech.
//  3. The level (e.g. a1, b2).
//  4. The translation.
//  5. The translation's part of speech.
//  6. An example sentence in English.
//  7. An optional translation of the example sentence.
//
// Lines with fewer than six fields are skipped. There is no header, quoting
// or escaping; a field that contains the delimiter is split like any other.
//
// Example:
//
//	run - verb - a1 - yugurmoq - fe'l - I run every day. - Men har kuni yuguraman.
package vocab
