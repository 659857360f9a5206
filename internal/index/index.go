// Copyright 2025 Ian Lewis
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

package index

import (
	"slices"
	"sort"
)

// Index is a generic sorted array index over a string key.
type Index[V any] struct {
	// values sorted by key. Values with equal keys keep their original
	// relative order.
	values []V

	key func(V) string
	cmp func(string, string) int
}

// NewIndex creates an index from the given slice, key function and
// comparison function. cmp(a, b) should return a negative number when a < b,
// a positive number when a > b and zero when a == b or a and b are
// incomparable in the sense of a strict weak ordering.
func NewIndex[V any](values []V, key func(V) string, cmp func(string, string) int) *Index[V] {
	sorted := make([]V, len(values))
	copy(sorted, values)
	slices.SortStableFunc(sorted, func(a, b V) int {
		return cmp(key(a), key(b))
	})

	return &Index[V]{
		values: sorted,
		key:    key,
		cmp:    cmp,
	}
}

// Search performs a binary search over the index and returns values whose
// key matches the query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.values), func(i int) int {
		return idx.cmp(query, idx.key(idx.values[i]))
	})

	if !found {
		return nil
	}

	j := i
	//nolint:revive // This block increments j.
	for ; j < len(idx.values) && idx.cmp(query, idx.key(idx.values[j])) == 0; j++ {
	}
	return idx.values[i:j]
}

// Keys returns the distinct keys in the index in sorted order.
func (idx *Index[V]) Keys() []string {
	var keys []string
	for _, v := range idx.values {
		k := idx.key(v)
		if len(keys) > 0 && idx.cmp(keys[len(keys)-1], k) == 0 {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.values)
}
