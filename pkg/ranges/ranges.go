// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ranges

import (
	"errors"
	"fmt"
	"sort"

	"github.com/NVIDIA/versioncore/pkg/version"
)

// Error types for range construction and map insertion failures
var (
	ErrEmptyRange       = errors.New("range end must be greater than its begin")
	ErrOverlappingRange = errors.New("range overlaps an existing range")
)

// Range is a begin-inclusive, end-exclusive span of base versions.
type Range struct {
	Begin version.BaseVersion
	End   version.BaseVersion
}

// NewRange creates a range from begin (inclusive) to end (exclusive).
// Returns ErrEmptyRange unless begin is strictly smaller than end.
func NewRange(begin, end version.BaseVersion) (Range, error) {
	if begin.Compare(end) >= 0 {
		return Range{}, ErrEmptyRange
	}
	return Range{Begin: begin, End: end}, nil
}

// MustNewRange creates a range and panics if it would be empty. Only use
// this for hardcoded bounds or in tests.
func MustNewRange(begin, end version.BaseVersion) Range {
	r, err := NewRange(begin, end)
	if err != nil {
		panic(fmt.Sprintf("MustNewRange(%s, %s): %v", begin, end, err))
	}
	return r
}

// Contains reports whether v falls inside the range.
func (r Range) Contains(v version.BaseVersion) bool {
	return r.Begin.Compare(v) <= 0 && v.Compare(r.End) < 0
}

// String returns the "begin..end" form.
func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.Begin, r.End)
}

type entry[V any] struct {
	r     Range
	value V
}

// RangeMap maps non-overlapping version ranges to values. The zero value is
// an empty map ready for use. RangeMap is not safe for concurrent mutation.
type RangeMap[V any] struct {
	entries []entry[V]
}

// Add inserts a range with its value. Returns ErrOverlappingRange if the
// range intersects one already present.
func (m *RangeMap[V]) Add(r Range, value V) error {
	// First entry whose end lies beyond the new range's begin: the only
	// candidate for overlap, and the insertion slot otherwise.
	i := sort.Search(len(m.entries), func(i int) bool {
		return r.Begin.Compare(m.entries[i].r.End) < 0
	})
	if i < len(m.entries) && m.entries[i].r.Begin.Compare(r.End) < 0 {
		return fmt.Errorf("%w: %s intersects %s", ErrOverlappingRange, r, m.entries[i].r)
	}

	m.entries = append(m.entries, entry[V]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = entry[V]{r: r, value: value}
	return nil
}

// Resolve returns the value of the range containing v, if any.
func (m *RangeMap[V]) Resolve(v version.BaseVersion) (V, bool) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return v.Compare(m.entries[i].r.End) < 0
	})
	if i < len(m.entries) && m.entries[i].r.Contains(v) {
		return m.entries[i].value, true
	}
	var zero V
	return zero, false
}

// ResolveVersion resolves either variant through its major/minor projection:
// a full version resolves by dropping its patch component.
func (m *RangeMap[V]) ResolveVersion(v version.Version) (V, bool) {
	return m.Resolve(version.NewBase(v.Major(), v.Minor()))
}

// Len returns the number of ranges in the map.
func (m *RangeMap[V]) Len() int {
	return len(m.entries)
}
