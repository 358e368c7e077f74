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

package version

import "fmt"

// FullVersion is a three-component "major.minor.patch" version core. It is a
// plain immutable value; construct it directly, with NewFull, or by parsing.
type FullVersion struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// NewFull creates a three-component version with the given major, minor, and
// patch values.
func NewFull(major, minor, patch uint64) FullVersion {
	return FullVersion{Major: major, Minor: minor, Patch: patch}
}

// ParseFull parses a three-component "major.minor.patch" version string. The
// patch component is mandatory: a two-component input such as "1.27" is
// rejected with an EXPECTED_DOT error where the second separator was
// required. The whole input must be consumed.
func ParseFull(s string) (FullVersion, error) {
	p := NewParser(s)
	base, err := p.ParseBase()
	if err != nil {
		return FullVersion{}, err
	}
	full, err := p.ParsePatch(base)
	if err != nil {
		return FullVersion{}, err
	}
	if err := p.Finish(); err != nil {
		return FullVersion{}, err
	}
	return full, nil
}

// MustParseFull parses a three-component version string and panics if
// parsing fails. Only use this for hardcoded strings or in tests; for user
// input or runtime data, always use ParseFull and handle errors explicitly.
func MustParseFull(s string) FullVersion {
	full, err := ParseFull(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseFull(%q): %v", s, err))
	}
	return full
}

// String returns the canonical "major.minor.patch" form.
func (v FullVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns an integer comparing two full versions lexicographically
// over (major, minor, patch): -1 if v < other, 0 if v == other, 1 if
// v > other.
func (v FullVersion) Compare(other FullVersion) int {
	if c := compareUint64(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareUint64(v.Minor, other.Minor); c != 0 {
		return c
	}
	return compareUint64(v.Patch, other.Patch)
}

// Equals reports whether v exactly equals other.
func (v FullVersion) Equals(other FullVersion) bool {
	return v == other
}

// ToBase converts this full version to a base version. The conversion is
// lossy because the patch value is dropped.
func (v FullVersion) ToBase() BaseVersion {
	return BaseVersion{Major: v.Major, Minor: v.Minor}
}
