/*
Copyright © 2025 verctl authors
SPDX-License-Identifier: Apache-2.0
*/
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing and transformation failures
var (
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeVersion   = errors.New("version component cannot go below zero")
	ErrInvalidComponent  = errors.New("unknown version component")
	ErrInvalidDirection  = errors.New("unknown bump direction")
)

// Version represents a semantic-version-like number with Major, Minor, and
// Patch components. It supports flexible precision (1, 2, or 3 components)
// and preserves an opaque trailing suffix (e.g., "-rc1", "-beta.2") verbatim.
// The Precision field records how many components were present in the
// original string, keeping "present but zero" distinct from "absent".
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Precision indicates how many components are present (1, 2, or 3)
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Suffix stores everything from the first '-' on, dash included
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// Zero returns the default version used when no version was found:
// major 0 with minor and patch absent.
func Zero() Version {
	return Version{Precision: 1}
}

// NewVersion creates a new Version with the specified major, minor, and patch
// values. The precision is set to 3 (all components present).
// Use ParseVersion for version strings with fewer components.
func NewVersion(major, minor, patch int) Version {
	return Version{
		Major:     major,
		Minor:     minor,
		Patch:     patch,
		Precision: 3,
	}
}

// String returns the canonical string representation of the Version.
// The result always begins with "v", includes as many components as the
// precision records, and carries the suffix verbatim.
func (v Version) String() string {
	var b strings.Builder
	b.WriteByte('v')
	b.WriteString(strconv.Itoa(v.Major))
	if v.Precision >= 2 {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(v.Minor))
	}
	if v.Precision >= 3 {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(v.Patch))
	}
	b.WriteString(v.Suffix)
	return b.String()
}

// ParseVersion parses a version string into a Version struct.
// Supported formats: "1", "1.2", "1.2.3", "v1.2.3", "1.2.3-suffix".
// The "v" prefix is optional and stripped if present. Anything from the
// first '-' on is preserved opaquely in the Suffix field.
// An empty string parses to the Zero version (major 0, minor and patch
// absent), matching the "no version found" default.
// Returns an error for non-numeric components or more than 3 components.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Zero(), nil
	}

	// Strip 'v' prefix if present
	s = strings.TrimPrefix(s, "v")
	var v Version

	mainPart := s
	if i := strings.IndexByte(s, '-'); i >= 0 {
		mainPart = s[:i]
		v.Suffix = s[i:]
	}

	parts := strings.Split(mainPart, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	for i, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeVersion, num)
		}

		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}

	v.Precision = len(parts)
	return v, nil
}

// MustParseVersion parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use ParseVersion and handle errors explicitly.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// Equals returns true if v exactly equals other, precision and suffix included.
func (v Version) Equals(other Version) bool {
	return v.Major == other.Major &&
		v.Minor == other.Minor &&
		v.Patch == other.Patch &&
		v.Precision == other.Precision &&
		v.Suffix == other.Suffix
}

// IsValid returns true if the version has valid values.
// All components must be non-negative and precision must be 1, 2, or 3.
func (v Version) IsValid() bool {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return false
	}
	if v.Precision < 1 || v.Precision > 3 {
		return false
	}
	return true
}
