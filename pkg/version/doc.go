// Package version implements parsing, transformation, and serialization of
// semantic-version-like strings with flexible precision.
//
// # Overview
//
// A version string has the shape ["v"]major["."minor["."patch]]["-"suffix].
// The package tracks which components were present in the original string
// using the Precision field (1, 2, or 3), keeping "present but zero"
// distinct from "absent" through the whole parse, bump, serialize pass:
//
//   - Precision 1: major only (e.g., "v1")
//   - Precision 2: major.minor (e.g., "v1.2")
//   - Precision 3: major.minor.patch (e.g., "v1.2.3")
//
// Anything from the first '-' on is an opaque suffix, preserved verbatim
// across every transformation and never parsed or validated.
//
// # Bump semantics
//
// Six operations exist: {major, minor, patch} x {increment, decrement}.
//
//	v, _ := version.ParseVersion("v1.2.3")
//	next, _ := v.Bump(version.ComponentMajor, version.DirectionIncrement)
//	fmt.Println(next) // Output: v2.0.0
//
// A bump resets the value of lower components that are present, but never
// creates components the original did not carry, with two exceptions:
//
//   - Incrementing an absent minor creates it with value 1.
//   - Bumping an absent patch materializes both minor and patch.
//
// Decrementing patch below zero borrows from the next higher non-zero
// component; when every component is already zero the bump fails with
// ErrNegativeVersion. Negative results are always rejected, never clamped.
//
// # Purity
//
// The package performs no I/O and holds no state. Transform is a pure
// function from (string, component, direction) to (string, error); errors
// are reported before any result is produced, so callers can safely treat
// any error as "nothing happened".
package version
