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
	"math"

	apperrors "github.com/NVIDIA/versioncore/pkg/errors"
)

const (
	maxDiv10 = math.MaxUint64 / 10
	maxMod10 = math.MaxUint64 % 10
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// scanNumber reads one unsigned decimal numeral starting at pos and returns
// its value together with the position of the first unconsumed character.
//
// The numeral must start with a digit, must not have a leading zero unless it
// is exactly "0", and must fit in a uint64. Error offsets point at the start
// of the numeral, except NOT_A_NUMBER which points at pos itself.
func scanNumber(s string, pos int) (uint64, int, error) {
	if pos >= len(s) {
		return 0, pos, apperrors.New(apperrors.KindNotANumber, "expected digit, got end of input", pos)
	}
	if !isDigit(s[pos]) {
		return 0, pos, apperrors.New(apperrors.KindNotANumber,
			fmt.Sprintf("expected digit, got %q", s[pos]), pos)
	}
	if s[pos] == '0' && pos+1 < len(s) && isDigit(s[pos+1]) {
		return 0, pos, apperrors.New(apperrors.KindLeadingZero,
			"numeric component has a leading zero", pos)
	}

	var value uint64
	i := pos
	for ; i < len(s) && isDigit(s[i]); i++ {
		d := uint64(s[i] - '0')
		if value > maxDiv10 || (value == maxDiv10 && d > maxMod10) {
			return 0, pos, apperrors.New(apperrors.KindOverflow,
				fmt.Sprintf("numeric component exceeds %d", uint64(math.MaxUint64)), pos)
		}
		value = value*10 + d
	}
	return value, i, nil
}

// scanDot verifies the character at pos is the '.' separator and returns the
// position right after it.
func scanDot(s string, pos int) (int, error) {
	if pos >= len(s) {
		return pos, apperrors.New(apperrors.KindExpectedDot, "expected '.', got end of input", pos)
	}
	if s[pos] != '.' {
		return pos, apperrors.New(apperrors.KindExpectedDot,
			fmt.Sprintf("expected '.', got %q", s[pos]), pos)
	}
	return pos + 1, nil
}
