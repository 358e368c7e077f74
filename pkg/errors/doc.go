// Package errors provides structured parse error types for programmatic
// error handling and precise diagnostics.
//
// Every failure carries a Kind for classification and the byte offset of the
// offending character, so callers can point at the exact position in the
// input:
//
//	_, err := version.Parse("1.02")
//	if errors.IsKind(err, errors.KindLeadingZero) {
//	    fmt.Printf("bad numeral at offset %d\n", errors.OffsetOf(err))
//	}
package errors
