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

import (
	"fmt"

	apperrors "github.com/NVIDIA/versioncore/pkg/errors"
)

// Parser incrementally parses a version core from the start of an input
// string. It advances a cursor one component at a time and never reads past
// what the requested component needs, so a caller embedding a version core in
// a larger grammar can hand the unconsumed tail to a different parser.
//
// The mandatory first step is ParseBase, which consumes "major.minor". At
// that point the parser is suspended: the caller may stop with a complete
// BaseVersion, extend it with ParsePatch, or let ParseVersion decide based on
// whether a '.' follows.
//
// The cursor only advances on success; a failed step leaves it where the
// step started.
type Parser struct {
	input string
	pos   int
}

// NewParser constructs a parser positioned at the start of input.
func NewParser(input string) *Parser {
	return &Parser{input: input}
}

// ParseBase consumes the mandatory "major.minor" prefix of a version core.
//
// No end-of-input check takes place: given "1.2-alpha", ParseBase succeeds
// with 1.2 and leaves the cursor at "-alpha".
func (p *Parser) ParseBase() (BaseVersion, error) {
	major, pos, err := scanNumber(p.input, p.pos)
	if err != nil {
		return BaseVersion{}, err
	}
	pos, err = scanDot(p.input, pos)
	if err != nil {
		return BaseVersion{}, err
	}
	minor, pos, err := scanNumber(p.input, pos)
	if err != nil {
		return BaseVersion{}, err
	}

	p.pos = pos
	return BaseVersion{Major: major, Minor: minor}, nil
}

// ParsePatch consumes the '.' separator and patch component that follow a
// parsed base, extending it to a FullVersion. It must be called after a
// successful ParseBase.
func (p *Parser) ParsePatch(base BaseVersion) (FullVersion, error) {
	pos, err := scanDot(p.input, p.pos)
	if err != nil {
		return FullVersion{}, err
	}
	patch, pos, err := scanNumber(p.input, pos)
	if err != nil {
		return FullVersion{}, err
	}

	p.pos = pos
	return FullVersion{Major: base.Major, Minor: base.Minor, Patch: patch}, nil
}

// ParseVersion parses a base version and then peeks a single character: if a
// '.' follows, the patch component is required and the result is a full
// version; anything else, including end of input, terminates the version
// core and the result is a base version.
//
// No end-of-input check takes place; use Finish to require total consumption.
func (p *Parser) ParseVersion() (Version, error) {
	base, err := p.ParseBase()
	if err != nil {
		return Version{}, err
	}

	if p.pos < len(p.input) && p.input[p.pos] == '.' {
		full, err := p.ParsePatch(base)
		if err != nil {
			return Version{}, err
		}
		return FromFull(full), nil
	}
	return FromBase(base), nil
}

// Finish verifies that the whole input has been consumed. It returns an
// EXPECTED_END_OF_INPUT error pointing at the first unconsumed character
// otherwise.
func (p *Parser) Finish() error {
	if p.pos < len(p.input) {
		return apperrors.New(apperrors.KindExpectedEndOfInput,
			fmt.Sprintf("expected end of input, got %q", p.input[p.pos]), p.pos)
	}
	return nil
}

// Pos returns the current cursor position as a byte offset into the input.
// An embedding grammar can continue parsing from exactly this offset.
func (p *Parser) Pos() int {
	return p.pos
}

// Rest returns the unconsumed tail of the input.
func (p *Parser) Rest() string {
	return p.input[p.pos:]
}
