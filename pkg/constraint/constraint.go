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

package constraint

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/NVIDIA/versioncore/pkg/errors"
	"github.com/NVIDIA/versioncore/pkg/version"
)

// ErrEmptyExpression indicates a constraint expression with no content.
var ErrEmptyExpression = errors.New("constraint expression cannot be empty")

// Operator represents a comparison operator in constraint expressions.
type Operator string

const (
	// OperatorGTE represents ">=" (greater than or equal).
	OperatorGTE Operator = ">="

	// OperatorLTE represents "<=" (less than or equal).
	OperatorLTE Operator = "<="

	// OperatorGT represents ">" (greater than).
	OperatorGT Operator = ">"

	// OperatorLT represents "<" (less than).
	OperatorLT Operator = "<"

	// OperatorEQ represents "==" (equal up to the common arity).
	OperatorEQ Operator = "=="

	// OperatorNE represents "!=" (not equal up to the common arity).
	OperatorNE Operator = "!="

	// OperatorExact represents no operator (exact match, variant included).
	OperatorExact Operator = ""
)

// Constraint is a parsed constraint expression: an operator applied to a
// version core, e.g. ">= 1.27" or "== 1.27.0".
type Constraint struct {
	// Operator is the comparison operator (or empty for exact match).
	Operator Operator

	// Version is the expected version after the operator.
	Version version.Version
}

// Parse parses a constraint value expression.
// Examples:
//   - ">= 1.27.3" -> {Operator: ">=", Version: 1.27.3}
//   - "< 2.0"     -> {Operator: "<", Version: 2.0}
//   - "1.27"      -> {Operator: "", Version: 1.27} (exact match)
//
// Version parse failures keep their kind and report the offset within the
// original expression.
func Parse(expr string) (*Constraint, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, ErrEmptyExpression
	}
	lead := strings.Index(expr, trimmed)

	c := &Constraint{Operator: OperatorExact}

	// Longest first, so ">" does not shadow ">=".
	operators := []Operator{OperatorGTE, OperatorLTE, OperatorNE, OperatorEQ, OperatorGT, OperatorLT}
	pos := 0
	for _, op := range operators {
		if strings.HasPrefix(trimmed, string(op)) {
			c.Operator = op
			pos = len(op)
			break
		}
	}
	for pos < len(trimmed) && (trimmed[pos] == ' ' || trimmed[pos] == '\t') {
		pos++
	}

	v, err := version.Parse(trimmed[pos:])
	if err != nil {
		var pe *apperrors.ParseError
		if errors.As(err, &pe) {
			return nil, apperrors.New(pe.Kind, pe.Message, lead+pos+pe.Offset)
		}
		return nil, err
	}

	c.Version = v
	return c, nil
}

// Matches reports whether v satisfies the constraint.
//
// Comparison is performed up to the lower arity of the two operands: a base
// constraint like ">= 1.27" matches any 1.27.x, mirroring how a shorthand
// version acts as a wildcard for its missing patch component. The exact
// operator (no operator) instead requires equality with the variant tag
// included.
func (c *Constraint) Matches(v version.Version) bool {
	if c.Operator == OperatorExact {
		return v.Equals(c.Version)
	}

	cmp := compareCommonArity(v, c.Version)
	switch c.Operator {
	case OperatorGTE:
		return cmp >= 0
	case OperatorLTE:
		return cmp <= 0
	case OperatorGT:
		return cmp > 0
	case OperatorLT:
		return cmp < 0
	case OperatorEQ:
		return cmp == 0
	case OperatorNE:
		return cmp != 0
	default:
		return false
	}
}

// String returns the canonical "operator version" form.
func (c *Constraint) String() string {
	if c.Operator == OperatorExact {
		return c.Version.String()
	}
	return fmt.Sprintf("%s %s", c.Operator, c.Version)
}

// compareCommonArity compares two versions lexicographically over the
// components both of them have: the patch only participates when both sides
// are full versions.
func compareCommonArity(a, b version.Version) int {
	if c := compareUint64(a.Major(), b.Major()); c != 0 {
		return c
	}
	if c := compareUint64(a.Minor(), b.Minor()); c != 0 {
		return c
	}

	pa, aok := a.Patch()
	pb, bok := b.Patch()
	if !aok || !bok {
		return 0
	}
	return compareUint64(pa, pb)
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
