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

package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a parse failure.
type Kind string

const (
	// KindNotANumber indicates a numeric component was expected but the next
	// character is not a decimal digit (or the input ended).
	KindNotANumber Kind = "NOT_A_NUMBER"
	// KindLeadingZero indicates a numeric component starts with '0' followed
	// by further digits. The single digit '0' is the only component allowed
	// to start with a zero.
	KindLeadingZero Kind = "LEADING_ZERO"
	// KindOverflow indicates a numeric component exceeds the uint64 range.
	KindOverflow Kind = "OVERFLOW"
	// KindExpectedDot indicates the '.' separator was required but absent.
	KindExpectedDot Kind = "EXPECTED_DOT"
	// KindExpectedEndOfInput indicates characters remain after a complete
	// version core was recognized by a whole-string parser.
	KindExpectedEndOfInput Kind = "EXPECTED_END_OF_INPUT"
)

// ParseError provides structured parse failure information. It includes a
// kind for programmatic handling, a human-readable message, and the byte
// offset of the offending character so callers can point diagnostics at the
// exact position in the input.
type ParseError struct {
	Kind    Kind
	Message string
	Offset  int
	Cause   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s at offset %d: %v", e.Kind, e.Message, e.Offset, e.Cause)
	}
	return fmt.Sprintf("[%s] %s at offset %d", e.Kind, e.Message, e.Offset)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// New creates a new ParseError with the given kind, message, and byte offset.
func New(kind Kind, message string, offset int) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: message,
		Offset:  offset,
	}
}

// Wrap wraps an existing error with parse failure context.
func Wrap(kind Kind, message string, offset int, cause error) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: message,
		Offset:  offset,
		Cause:   cause,
	}
}

// IsKind reports whether err is, or wraps, a ParseError of the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}

// OffsetOf returns the byte offset carried by err, or -1 if err does not
// carry a ParseError.
func OffsetOf(err error) int {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Offset
	}
	return -1
}
