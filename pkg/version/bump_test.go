package version

import (
	"errors"
	"testing"
)

func TestBump(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		component Component
		direction Direction
		expected  string
	}{
		// major
		{
			name:      "major increment resets present components",
			current:   "v1.2.3",
			component: ComponentMajor,
			direction: DirectionIncrement,
			expected:  "v2.0.0",
		},
		{
			name:      "major increment keeps absent components absent",
			current:   "v1",
			component: ComponentMajor,
			direction: DirectionIncrement,
			expected:  "v2",
		},
		{
			name:      "major increment on two-part version",
			current:   "v1.7",
			component: ComponentMajor,
			direction: DirectionIncrement,
			expected:  "v2.0",
		},
		{
			name:      "major decrement",
			current:   "v3.2.1",
			component: ComponentMajor,
			direction: DirectionDecrement,
			expected:  "v2.0.0",
		},

		// minor
		{
			name:      "minor increment",
			current:   "v1.2.3",
			component: ComponentMinor,
			direction: DirectionIncrement,
			expected:  "v1.3.0",
		},
		{
			name:      "minor increment creates absent minor forced to 1",
			current:   "v1",
			component: ComponentMinor,
			direction: DirectionIncrement,
			expected:  "v1.1",
		},
		{
			name:      "minor increment does not create patch",
			current:   "v1.4",
			component: ComponentMinor,
			direction: DirectionIncrement,
			expected:  "v1.5",
		},
		{
			name:      "minor decrement resets present patch",
			current:   "v1.2.3",
			component: ComponentMinor,
			direction: DirectionDecrement,
			expected:  "v1.1.0",
		},

		// patch
		{
			name:      "patch increment",
			current:   "v1.2.3",
			component: ComponentPatch,
			direction: DirectionIncrement,
			expected:  "v1.2.4",
		},
		{
			name:      "patch increment materializes minor and patch from major-only",
			current:   "v2",
			component: ComponentPatch,
			direction: DirectionIncrement,
			expected:  "v2.0.1",
		},
		{
			name:      "patch increment materializes patch keeping minor value",
			current:   "v1.4",
			component: ComponentPatch,
			direction: DirectionIncrement,
			expected:  "v1.4.1",
		},
		{
			name:      "patch decrement",
			current:   "v1.2.3",
			component: ComponentPatch,
			direction: DirectionDecrement,
			expected:  "v1.2.2",
		},
		{
			name:      "patch decrement borrows from minor",
			current:   "v1.2.0",
			component: ComponentPatch,
			direction: DirectionDecrement,
			expected:  "v1.1.0",
		},
		{
			name:      "patch decrement borrows from major when minor is zero",
			current:   "v1.0.0",
			component: ComponentPatch,
			direction: DirectionDecrement,
			expected:  "v0.0.0",
		},
		{
			name:      "patch decrement on materialized patch borrows immediately",
			current:   "v1.2",
			component: ComponentPatch,
			direction: DirectionDecrement,
			expected:  "v1.1.0",
		},

		// suffix preservation
		{
			name:      "suffix preserved across major increment",
			current:   "v1.2.3-rc1",
			component: ComponentMajor,
			direction: DirectionIncrement,
			expected:  "v2.0.0-rc1",
		},
		{
			name:      "suffix preserved across borrow cascade",
			current:   "v1.0.0-hotfix.2",
			component: ComponentPatch,
			direction: DirectionDecrement,
			expected:  "v0.0.0-hotfix.2",
		},

		// empty input defaults to zero version with no components present
		{
			name:      "empty input major increment",
			current:   "",
			component: ComponentMajor,
			direction: DirectionIncrement,
			expected:  "v1",
		},
		{
			name:      "empty input minor increment creates only minor",
			current:   "",
			component: ComponentMinor,
			direction: DirectionIncrement,
			expected:  "v0.1",
		},
		{
			name:      "empty input patch increment materializes minor and patch",
			current:   "",
			component: ComponentPatch,
			direction: DirectionIncrement,
			expected:  "v0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform(tt.current, tt.component, tt.direction)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Transform(%q, %s, %s) = %q, want %q",
					tt.current, tt.component, tt.direction, got, tt.expected)
			}
		})
	}
}

func TestBumpNegative(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		component Component
		direction Direction
	}{
		{
			name:      "major decrement below zero",
			current:   "v0.1.0",
			component: ComponentMajor,
			direction: DirectionDecrement,
		},
		{
			name:      "minor decrement below zero",
			current:   "v1.0.5",
			component: ComponentMinor,
			direction: DirectionDecrement,
		},
		{
			name:      "minor decrement on absent minor",
			current:   "v1",
			component: ComponentMinor,
			direction: DirectionDecrement,
		},
		{
			name:      "patch decrement with nothing to borrow",
			current:   "v0.0.0",
			component: ComponentPatch,
			direction: DirectionDecrement,
		},
		{
			name:      "patch decrement on zero major-only version",
			current:   "v0",
			component: ComponentPatch,
			direction: DirectionDecrement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Transform(tt.current, tt.component, tt.direction)
			if !errors.Is(err, ErrNegativeVersion) {
				t.Errorf("expected ErrNegativeVersion, got %v", err)
			}
		})
	}
}

func TestBumpInvalidInputs(t *testing.T) {
	v := MustParseVersion("v1.2.3")

	if _, err := v.Bump(Component("minors"), DirectionIncrement); !errors.Is(err, ErrInvalidComponent) {
		t.Errorf("expected ErrInvalidComponent, got %v", err)
	}
	if _, err := v.Bump(ComponentMinor, Direction("up")); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("expected ErrInvalidDirection, got %v", err)
	}
	if _, err := Transform("1.2.3.4", ComponentMinor, DirectionIncrement); !errors.Is(err, ErrTooManyComponents) {
		t.Errorf("expected ErrTooManyComponents, got %v", err)
	}
}

func TestBumpDoesNotMutateReceiver(t *testing.T) {
	v := MustParseVersion("v1.2.3-rc1")
	orig := v
	if _, err := v.Bump(ComponentMajor, DirectionIncrement); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Equals(orig) {
		t.Errorf("receiver mutated: %+v != %+v", v, orig)
	}
}

// Increment followed by decrement of the same component is the identity,
// except across component-creation and borrow-cascade boundaries.
func TestBumpRoundTrip(t *testing.T) {
	inputs := []string{
		"v1.2.3",
		"v1.2.3-rc1",
		"v0.0.5",
		"v2.7",
		"v10.0.0",
	}
	components := []Component{ComponentMajor, ComponentMinor, ComponentPatch}

	for _, in := range inputs {
		v := MustParseVersion(in)
		for _, c := range components {
			// Creation boundaries: bumping a component the input does not
			// carry changes shape and cannot round-trip
			if (c == ComponentMinor && v.Precision < 2) ||
				(c == ComponentPatch && v.Precision < 3) {
				continue
			}
			// Value resets below the bumped component are not reversible
			if c == ComponentMajor && (v.Minor != 0 || v.Patch != 0) {
				continue
			}
			if c == ComponentMinor && v.Patch != 0 {
				continue
			}

			up, err := v.Bump(c, DirectionIncrement)
			if err != nil {
				t.Fatalf("%s %s increment: %v", in, c, err)
			}
			down, err := up.Bump(c, DirectionDecrement)
			if err != nil {
				t.Fatalf("%s %s decrement: %v", in, c, err)
			}
			if !down.Equals(v) {
				t.Errorf("%s: %s round-trip = %s, want identity", in, c, down)
			}
		}
	}
}

func TestParseComponent(t *testing.T) {
	for _, s := range SupportedComponents() {
		c, err := ParseComponent(s)
		if err != nil {
			t.Errorf("ParseComponent(%q): %v", s, err)
		}
		if c.String() != s {
			t.Errorf("ParseComponent(%q) = %q", s, c)
		}
	}
	if _, err := ParseComponent("current"); !errors.Is(err, ErrInvalidComponent) {
		t.Errorf("expected ErrInvalidComponent for non-bump component, got %v", err)
	}
}
