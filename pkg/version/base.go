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

// BaseVersion is a two-component "major.minor" version core. It is a plain
// immutable value; construct it directly, with NewBase, or by parsing.
type BaseVersion struct {
	Major uint64
	Minor uint64
}

// NewBase creates a two-component version with the given major and minor
// values.
func NewBase(major, minor uint64) BaseVersion {
	return BaseVersion{Major: major, Minor: minor}
}

// ParseBase parses a two-component "major.minor" version string. The whole
// input must be consumed: a three-component input such as "1.27.0" is
// rejected with an EXPECTED_END_OF_INPUT error at the trailing ".0".
func ParseBase(s string) (BaseVersion, error) {
	p := NewParser(s)
	base, err := p.ParseBase()
	if err != nil {
		return BaseVersion{}, err
	}
	if err := p.Finish(); err != nil {
		return BaseVersion{}, err
	}
	return base, nil
}

// MustParseBase parses a two-component version string and panics if parsing
// fails. Only use this for hardcoded strings or in tests; for user input or
// runtime data, always use ParseBase and handle errors explicitly.
func MustParseBase(s string) BaseVersion {
	base, err := ParseBase(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseBase(%q): %v", s, err))
	}
	return base
}

// String returns the canonical "major.minor" form.
func (v BaseVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compare returns an integer comparing two base versions lexicographically
// over (major, minor): -1 if v < other, 0 if v == other, 1 if v > other.
func (v BaseVersion) Compare(other BaseVersion) int {
	if c := compareUint64(v.Major, other.Major); c != 0 {
		return c
	}
	return compareUint64(v.Minor, other.Minor)
}

// Equals reports whether v exactly equals other.
func (v BaseVersion) Equals(other BaseVersion) bool {
	return v == other
}

// ToFull converts this base version to a full version. The conversion is
// lossy in the sense that the patch value is not known here and is
// initialized to 0.
func (v BaseVersion) ToFull() FullVersion {
	return FullVersion{Major: v.Major, Minor: v.Minor, Patch: 0}
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
