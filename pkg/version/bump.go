/*
Copyright © 2025 verctl authors
SPDX-License-Identifier: Apache-2.0
*/
package version

import (
	"fmt"
)

// Component identifies the part of the version being bumped.
type Component string

const (
	ComponentMajor Component = "major"
	ComponentMinor Component = "minor"
	ComponentPatch Component = "patch"
)

// IsValid returns true if the component is one of the recognized values.
func (c Component) IsValid() bool {
	switch c {
	case ComponentMajor, ComponentMinor, ComponentPatch:
		return true
	default:
		return false
	}
}

func (c Component) String() string {
	return string(c)
}

// SupportedComponents returns the list of bumpable version components.
func SupportedComponents() []string {
	return []string{
		string(ComponentMajor),
		string(ComponentMinor),
		string(ComponentPatch),
	}
}

// ParseComponent converts a string into a Component.
// Returns ErrInvalidComponent for unrecognized values.
func ParseComponent(s string) (Component, error) {
	c := Component(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q (supported values: %v)",
			ErrInvalidComponent, s, SupportedComponents())
	}
	return c, nil
}

// Direction selects whether a bump increments or decrements a component.
type Direction string

const (
	DirectionIncrement Direction = "increment"
	DirectionDecrement Direction = "decrement"
)

// IsValid returns true if the direction is one of the recognized values.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionIncrement, DirectionDecrement:
		return true
	default:
		return false
	}
}

func (d Direction) String() string {
	return string(d)
}

// step returns the signed unit delta for the direction.
func (d Direction) step() int {
	if d == DirectionDecrement {
		return -1
	}
	return 1
}

// Bump applies a single component bump to the version and returns the result.
// The receiver is never modified. Presence rules:
//
//   - major: major changes by one; minor and patch values reset to zero but
//     keep their presence (a component absent before the bump stays absent).
//   - minor: an absent minor on increment is created with value 1; otherwise
//     minor changes by one (base 0 when absent). A present patch resets to
//     zero, an absent patch stays absent. Major is untouched.
//   - patch: an absent patch is first materialized, which also materializes
//     minor (keeping its current value, or 0 when absent) with the working
//     patch starting at zero. Decrementing below zero borrows from the next
//     higher non-zero component, resetting everything below it.
//
// The suffix passes through verbatim. A bump that would drive a component
// below zero with no borrow available fails with ErrNegativeVersion; no
// partial result is returned.
func (v Version) Bump(c Component, d Direction) (Version, error) {
	if !c.IsValid() {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidComponent, c)
	}
	if !d.IsValid() {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidDirection, d)
	}

	out := v
	switch c {
	case ComponentMajor:
		out.Major += d.step()
		if out.Major < 0 {
			return Version{}, fmt.Errorf("%w: major of %s", ErrNegativeVersion, v)
		}
		out.Minor = 0
		out.Patch = 0

	case ComponentMinor:
		if v.Precision < 2 && d == DirectionIncrement {
			// Creation path: the new minor is forced to 1.
			out.Precision = 2
			out.Minor = 1
			out.Patch = 0
			break
		}
		out.Minor += d.step()
		if out.Minor < 0 {
			return Version{}, fmt.Errorf("%w: minor of %s", ErrNegativeVersion, v)
		}
		out.Patch = 0

	case ComponentPatch:
		if out.Precision < 3 {
			// Materialize patch, and with it minor (value kept, 0 when absent).
			out.Precision = 3
			out.Patch = 0
		}
		out.Patch += d.step()
		if out.Patch < 0 {
			borrowed, ok := out.borrow()
			if !ok {
				return Version{}, fmt.Errorf("%w: patch of %s, nothing left to borrow from",
					ErrNegativeVersion, v)
			}
			out = borrowed
		}
	}

	return out, nil
}

// borrow resolves a below-zero patch by decrementing the next higher
// non-zero component and zeroing every component below it. Walks the
// components lowest to highest so the cascade generalizes past patch.
// Reports false when every higher component is already zero.
func (v Version) borrow() (Version, bool) {
	out := v
	comps := []*int{&out.Patch, &out.Minor, &out.Major}
	for i := 1; i < len(comps); i++ {
		if *comps[i] > 0 {
			*comps[i]--
			for j := i - 1; j >= 0; j-- {
				*comps[j] = 0
			}
			return out, true
		}
	}
	return Version{}, false
}

// Transform is the pure string-level form of Bump: it parses the current
// version string (empty input defaults to the zero version), applies the
// requested bump, and serializes the result. No I/O is performed.
func Transform(current string, c Component, d Direction) (string, error) {
	v, err := ParseVersion(current)
	if err != nil {
		return "", fmt.Errorf("parsing current version %q: %w", current, err)
	}
	next, err := v.Bump(c, d)
	if err != nil {
		return "", err
	}
	return next.String(), nil
}
