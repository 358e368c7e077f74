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
	"testing"

	apperrors "github.com/NVIDIA/versioncore/pkg/errors"
)

func TestParserParseBase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected BaseVersion
		rest     string
	}{
		{
			name:     "exact two components",
			input:    "1.27",
			expected: NewBase(1, 27),
			rest:     "",
		},
		{
			name:     "zeros",
			input:    "0.0",
			expected: NewBase(0, 0),
			rest:     "",
		},
		{
			name:     "stops before third component",
			input:    "1.27.0",
			expected: NewBase(1, 27),
			rest:     ".0",
		},
		{
			name:     "suspends before pre-release content",
			input:    "1.2-alpha",
			expected: NewBase(1, 2),
			rest:     "-alpha",
		},
		{
			name:     "suspends before build metadata",
			input:    "1.2+build.5",
			expected: NewBase(1, 2),
			rest:     "+build.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.input)
			base, err := p.ParseBase()
			if err != nil {
				t.Fatalf("ParseBase(%q) failed: %v", tt.input, err)
			}
			if base != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, base)
			}
			if p.Rest() != tt.rest {
				t.Errorf("expected rest %q, got %q", tt.rest, p.Rest())
			}
			if p.Pos() != len(tt.input)-len(tt.rest) {
				t.Errorf("expected pos %d, got %d", len(tt.input)-len(tt.rest), p.Pos())
			}
		})
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedKind   apperrors.Kind
		expectedOffset int
	}{
		{
			name:           "empty input",
			input:          "",
			expectedKind:   apperrors.KindNotANumber,
			expectedOffset: 0,
		},
		{
			name:           "non digit at start",
			input:          "a.b",
			expectedKind:   apperrors.KindNotANumber,
			expectedOffset: 0,
		},
		{
			name:           "sign is not a digit",
			input:          "-1.2",
			expectedKind:   apperrors.KindNotANumber,
			expectedOffset: 0,
		},
		{
			name:           "missing separator at end of input",
			input:          "1",
			expectedKind:   apperrors.KindExpectedDot,
			expectedOffset: 1,
		},
		{
			name:           "wrong separator",
			input:          "1x2",
			expectedKind:   apperrors.KindExpectedDot,
			expectedOffset: 1,
		},
		{
			name:           "missing minor",
			input:          "1.",
			expectedKind:   apperrors.KindNotANumber,
			expectedOffset: 2,
		},
		{
			name:           "double separator",
			input:          "1..2",
			expectedKind:   apperrors.KindNotANumber,
			expectedOffset: 2,
		},
		{
			name:           "leading zero in major",
			input:          "01.2",
			expectedKind:   apperrors.KindLeadingZero,
			expectedOffset: 0,
		},
		{
			name:           "leading zero in minor",
			input:          "1.02",
			expectedKind:   apperrors.KindLeadingZero,
			expectedOffset: 2,
		},
		{
			name:           "all zero major",
			input:          "00.0",
			expectedKind:   apperrors.KindLeadingZero,
			expectedOffset: 0,
		},
		{
			name:           "major overflows uint64",
			input:          "18446744073709551616.0",
			expectedKind:   apperrors.KindOverflow,
			expectedOffset: 0,
		},
		{
			name:           "minor one digit too long",
			input:          "1.184467440737095516159",
			expectedKind:   apperrors.KindOverflow,
			expectedOffset: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.input)
			_, err := p.ParseBase()
			if err == nil {
				t.Fatalf("ParseBase(%q) succeeded, expected %s", tt.input, tt.expectedKind)
			}
			if !apperrors.IsKind(err, tt.expectedKind) {
				t.Errorf("expected kind %s, got %v", tt.expectedKind, err)
			}
			if got := apperrors.OffsetOf(err); got != tt.expectedOffset {
				t.Errorf("expected offset %d, got %d", tt.expectedOffset, got)
			}
			if p.Pos() != 0 {
				t.Errorf("cursor moved on failure: pos %d", p.Pos())
			}
		})
	}
}

func TestParserParsePatch(t *testing.T) {
	p := NewParser("1.2.3-rc.1")
	base, err := p.ParseBase()
	if err != nil {
		t.Fatalf("ParseBase failed: %v", err)
	}

	full, err := p.ParsePatch(base)
	if err != nil {
		t.Fatalf("ParsePatch failed: %v", err)
	}
	if full != NewFull(1, 2, 3) {
		t.Errorf("expected 1.2.3, got %v", full)
	}
	if p.Rest() != "-rc.1" {
		t.Errorf("expected rest %q, got %q", "-rc.1", p.Rest())
	}
}

func TestParserParsePatchErrors(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedKind   apperrors.Kind
		expectedOffset int
	}{
		{
			name:           "no third component",
			input:          "1.2",
			expectedKind:   apperrors.KindExpectedDot,
			expectedOffset: 3,
		},
		{
			name:           "separator without patch",
			input:          "1.2.",
			expectedKind:   apperrors.KindNotANumber,
			expectedOffset: 4,
		},
		{
			name:           "leading zero in patch",
			input:          "1.2.03",
			expectedKind:   apperrors.KindLeadingZero,
			expectedOffset: 4,
		},
		{
			name:           "non digit patch",
			input:          "1.2.x",
			expectedKind:   apperrors.KindNotANumber,
			expectedOffset: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.input)
			base, err := p.ParseBase()
			if err != nil {
				t.Fatalf("ParseBase(%q) failed: %v", tt.input, err)
			}

			suspended := p.Pos()
			_, err = p.ParsePatch(base)
			if err == nil {
				t.Fatalf("ParsePatch(%q) succeeded, expected %s", tt.input, tt.expectedKind)
			}
			if !apperrors.IsKind(err, tt.expectedKind) {
				t.Errorf("expected kind %s, got %v", tt.expectedKind, err)
			}
			if got := apperrors.OffsetOf(err); got != tt.expectedOffset {
				t.Errorf("expected offset %d, got %d", tt.expectedOffset, got)
			}
			if p.Pos() != suspended {
				t.Errorf("cursor moved on failure: pos %d, suspended at %d", p.Pos(), suspended)
			}
		})
	}
}

func TestParserParseVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Version
		rest     string
	}{
		{
			name:     "two components",
			input:    "1.27",
			expected: FromBase(NewBase(1, 27)),
			rest:     "",
		},
		{
			name:     "three components",
			input:    "1.27.0",
			expected: FromFull(NewFull(1, 27, 0)),
			rest:     "",
		},
		{
			name:     "base followed by non dot terminates as base",
			input:    "1.2-alpha",
			expected: FromBase(NewBase(1, 2)),
			rest:     "-alpha",
		},
		{
			name:     "full followed by trailing content",
			input:    "1.2.3abc",
			expected: FromFull(NewFull(1, 2, 3)),
			rest:     "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.input)
			v, err := p.ParseVersion()
			if err != nil {
				t.Fatalf("ParseVersion(%q) failed: %v", tt.input, err)
			}
			if v != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, v)
			}
			if p.Rest() != tt.rest {
				t.Errorf("expected rest %q, got %q", tt.rest, p.Rest())
			}
		})
	}
}

func TestParserParseVersionRequiresPatchAfterDot(t *testing.T) {
	// Once the peeked '.' is consumed, the patch component is mandatory.
	p := NewParser("1.2.")
	_, err := p.ParseVersion()
	if err == nil {
		t.Fatal("expected error for dangling separator")
	}
	if !apperrors.IsKind(err, apperrors.KindNotANumber) {
		t.Errorf("expected kind %s, got %v", apperrors.KindNotANumber, err)
	}
	if got := apperrors.OffsetOf(err); got != 4 {
		t.Errorf("expected offset 4, got %d", got)
	}
}

func TestParserFinish(t *testing.T) {
	p := NewParser("1.2.3abc")
	if _, err := p.ParseVersion(); err != nil {
		t.Fatalf("ParseVersion failed: %v", err)
	}

	err := p.Finish()
	if err == nil {
		t.Fatal("expected error for trailing input")
	}
	if !apperrors.IsKind(err, apperrors.KindExpectedEndOfInput) {
		t.Errorf("expected kind %s, got %v", apperrors.KindExpectedEndOfInput, err)
	}
	if got := apperrors.OffsetOf(err); got != 5 {
		t.Errorf("expected offset 5, got %d", got)
	}

	p = NewParser("1.2")
	if _, err := p.ParseVersion(); err != nil {
		t.Fatalf("ParseVersion failed: %v", err)
	}
	if err := p.Finish(); err != nil {
		t.Errorf("Finish on fully consumed input failed: %v", err)
	}
}

func TestParserResumesAtSuspendPoint(t *testing.T) {
	// An embedding grammar parses the core, then takes over from Pos().
	input := "1.2-alpha"
	p := NewParser(input)

	base, err := p.ParseBase()
	if err != nil {
		t.Fatalf("ParseBase failed: %v", err)
	}
	if base != NewBase(1, 2) {
		t.Errorf("expected 1.2, got %v", base)
	}
	if p.Pos() != 3 {
		t.Errorf("expected cursor at 3, got %d", p.Pos())
	}
	if input[p.Pos():] != "-alpha" {
		t.Errorf("expected tail %q, got %q", "-alpha", input[p.Pos():])
	}
}
