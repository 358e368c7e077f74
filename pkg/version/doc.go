// Package version provides parsing and representation of two- and
// three-component version cores of the form "major.minor" and
// "major.minor.patch".
//
// # Overview
//
// Version cores of this shape are often seen in build-tool manifests
// specifying a minimum supported toolchain version. They are a subset of
// semver (semver.org), with the exception of also allowing the two component
// shorthand: "1.0" and "1.0.0" are both accepted here, while the former is
// rejected by a strict semver parser. Pre-release and build metadata labels
// are not part of a version core and are never parsed or validated.
//
// The package offers three value types:
//
//   - BaseVersion: a two component "major.minor" version
//   - FullVersion: a three component "major.minor.patch" version
//   - Version: either of the two, decided by the input at parse time
//
// Numeric components are uint64, separated by exactly one '.', with no
// surrounding whitespace, no signs, and no leading zeros (the single digit
// '0' is the only component allowed to start with a zero).
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.Parse("1.27")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.27
//
// Parse a specific arity, rejecting the other:
//
//	base, err := version.ParseBase("1.27")   // rejects "1.27.0"
//	full, err := version.ParseFull("1.27.0") // rejects "1.27"
//
// Create versions programmatically:
//
//	v := version.NewFull(1, 27, 3)
//	fmt.Println(v.String()) // Output: 1.27.3
//
// # Incremental Parsing
//
// The Parser type parses a version core character by character and can stop
// after the minor component. This lets a larger grammar (for example full
// semver with pre-release labels) consume a version core as a prefix and
// then continue from the exact byte where the core ended:
//
//	p := version.NewParser("1.2-alpha.1")
//	base, err := p.ParseBase()
//	// base == 1.2, p.Rest() == "-alpha.1"
//
// # Errors
//
// All parse failures are returned as *errors.ParseError values carrying a
// kind (NOT_A_NUMBER, LEADING_ZERO, OVERFLOW, EXPECTED_DOT,
// EXPECTED_END_OF_INPUT) and the byte offset of the offending character.
package version
