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

package main

import (
	"os"

	"github.com/ianlewis/go-vocab/session"
)

// defaultVocabulary returns the first existing vocabulary location or the
// first location if none exist.
func defaultVocabulary() string {
	locs := vocabLocations()
	for _, loc := range locs {
		if fi, err := os.Stat(loc); err == nil && !fi.IsDir() {
			return loc
		}
	}
	return locs[0]
}

// defaultSettings returns the default settings file path. An empty path
// keeps settings in memory.
func defaultSettings() string {
	path, err := session.DefaultSettingsPath()
	if err != nil {
		return ""
	}
	return path
}
