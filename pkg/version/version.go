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

// Variant indicates which form a Version holds.
type Variant int

const (
	// VariantBase indicates a two-component "major.minor" version.
	VariantBase Variant = iota
	// VariantFull indicates a three-component "major.minor.patch" version.
	VariantFull
)

// String returns the variant name.
func (t Variant) String() string {
	if t == VariantFull {
		return "full"
	}
	return "base"
}

// Version is either a two-component base version or a three-component full
// version; the parser decides which based on the input. The variant tag
// participates in equality: a base 1.27 and a full 1.27.0 are never equal.
//
// The zero value is the base version 0.0. Version values are comparable with
// ==.
type Version struct {
	major   uint64
	minor   uint64
	patch   uint64
	variant Variant
}

// FromBase wraps a base version into the union.
func FromBase(v BaseVersion) Version {
	return Version{major: v.Major, minor: v.Minor, variant: VariantBase}
}

// FromFull wraps a full version into the union.
func FromFull(v FullVersion) Version {
	return Version{major: v.Major, minor: v.Minor, patch: v.Patch, variant: VariantFull}
}

// Parse parses a two- or three-component version string, deciding the
// variant based on the input: "1.27" yields a base version, "1.27.0" a full
// version. The whole input must be consumed; trailing content such as
// "1.2.3abc" is rejected with an EXPECTED_END_OF_INPUT error.
func Parse(s string) (Version, error) {
	p := NewParser(s)
	v, err := p.ParseVersion()
	if err != nil {
		return Version{}, err
	}
	if err := p.Finish(); err != nil {
		return Version{}, err
	}
	return v, nil
}

// MustParse parses a version string and panics if parsing fails. Only use
// this for hardcoded strings or in tests; for user input or runtime data,
// always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q): %v", s, err))
	}
	return v
}

// Variant returns which form the version holds.
func (v Version) Variant() Variant {
	return v.variant
}

// Is reports whether the version holds the given variant.
func (v Version) Is(variant Variant) bool {
	return v.variant == variant
}

// Major returns the major component. Both variants have one; it is the
// leading component.
func (v Version) Major() uint64 {
	return v.major
}

// Minor returns the minor component. Both variants have one; it is the
// middle component.
func (v Version) Minor() uint64 {
	return v.minor
}

// Patch returns the patch component and true for a full version, or 0 and
// false for a base version.
func (v Version) Patch() (uint64, bool) {
	if v.variant != VariantFull {
		return 0, false
	}
	return v.patch, true
}

// Base returns the contained base version and true, or the zero value and
// false if the version is full.
func (v Version) Base() (BaseVersion, bool) {
	if v.variant != VariantBase {
		return BaseVersion{}, false
	}
	return BaseVersion{Major: v.major, Minor: v.minor}, true
}

// Full returns the contained full version and true, or the zero value and
// false if the version is base.
func (v Version) Full() (FullVersion, bool) {
	if v.variant != VariantFull {
		return FullVersion{}, false
	}
	return FullVersion{Major: v.major, Minor: v.minor, Patch: v.patch}, true
}

// Equals reports whether v equals other, variant tag included.
func (v Version) Equals(other Version) bool {
	return v == other
}

// Map transforms the contained value while preserving the variant: the
// transform matching the variant is applied and the result is re-wrapped in
// the same variant. A nil transform leaves that variant unchanged.
//
// This lets call sites rewrite a version, for example bump its minor
// component, without branching on the variant themselves:
//
//	bumped := v.Map(
//	    func(b BaseVersion) BaseVersion { b.Minor++; return b },
//	    func(f FullVersion) FullVersion { f.Minor++; return f },
//	)
func (v Version) Map(base func(BaseVersion) BaseVersion, full func(FullVersion) FullVersion) Version {
	switch v.variant {
	case VariantFull:
		if full == nil {
			return v
		}
		return FromFull(full(FullVersion{Major: v.major, Minor: v.minor, Patch: v.patch}))
	default:
		if base == nil {
			return v
		}
		return FromBase(base(BaseVersion{Major: v.major, Minor: v.minor}))
	}
}

// String returns the canonical "major.minor" or "major.minor.patch" form,
// depending on the variant.
func (v Version) String() string {
	if v.variant == VariantFull {
		return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
	}
	return fmt.Sprintf("%d.%d", v.major, v.minor)
}
