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
	"bufio"
	"io"
	"strings"
)

const (
	// Delimiter separates fields within a line.
	Delimiter = " - "

	// MinFields is the number of fields a line needs to produce a record.
	MinFields = 6

	// MaxLineSize is the longest line a Scanner accepts. It matches the
	// largest accepted vocabulary file.
	MaxLineSize = 10 * 1024 * 1024
)

// Parse parses vocabulary text and returns the records in input order.
// Malformed lines are skipped.
func Parse(text string) []*Record {
	var records []*Record
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if r := ParseLine(line); r != nil {
			records = append(records, r)
		}
	}
	return records
}

// ParseLine parses a single line. It returns nil if the line has fewer than
// [MinFields] fields.
func ParseLine(line string) *Record {
	parts := strings.Split(line, Delimiter)
	if len(parts) < MinFields {
		return nil
	}

	r := &Record{
		English:                 strings.TrimSpace(parts[0]),
		PartOfSpeech:            strings.TrimSpace(parts[1]),
		Level:                   strings.TrimSpace(parts[2]),
		Translation:             strings.TrimSpace(parts[3]),
		TranslationPartOfSpeech: strings.TrimSpace(parts[4]),
		ExampleSource:           strings.TrimSpace(parts[5]),
	}
	if len(parts) > MinFields {
		r.ExampleTranslation = strings.TrimSpace(parts[6])
	}
	return r
}

// Scanner scans vocabulary records from a reader. Malformed lines are
// skipped so Scan only stops at the end of input or on a read error.
type Scanner struct {
	s      *bufio.Scanner
	record *Record
}

// NewScanner returns a new Scanner that reads from r.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	return &Scanner{
		s: s,
	}
}

// Scan advances to the next record. It returns false when the scan stops
// either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		if r := ParseLine(s.s.Text()); r != nil {
			s.record = r
			return true
		}
	}
	s.record = nil
	return false
}

// Record returns the most recent record read by Scan.
func (s *Scanner) Record() *Record {
	return s.record
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// ReadAll reads all records from r.
func ReadAll(r io.Reader) ([]*Record, error) {
	var records []*Record
	s := NewScanner(r)
	for s.Scan() {
		records = append(records, s.Record())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
