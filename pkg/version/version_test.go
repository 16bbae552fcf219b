package version

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Version
		expectedError bool
	}{
		{
			name:  "major only",
			input: "1",
			expected: Version{
				Major:     1,
				Precision: 1,
			},
		},
		{
			name:  "major only with v prefix",
			input: "v2",
			expected: Version{
				Major:     2,
				Precision: 1,
			},
		},
		{
			name:  "major.minor",
			input: "1.2",
			expected: Version{
				Major:     1,
				Minor:     2,
				Precision: 2,
			},
		},
		{
			name:  "major.minor with v prefix",
			input: "v0.1",
			expected: Version{
				Major:     0,
				Minor:     1,
				Precision: 2,
			},
		},
		{
			name:  "full version",
			input: "1.2.3",
			expected: Version{
				Major:     1,
				Minor:     2,
				Patch:     3,
				Precision: 3,
			},
		},
		{
			name:  "full version with v prefix",
			input: "v1.2.3",
			expected: Version{
				Major:     1,
				Minor:     2,
				Patch:     3,
				Precision: 3,
			},
		},
		{
			name:  "version with zeros",
			input: "v0.0.0",
			expected: Version{
				Major:     0,
				Minor:     0,
				Patch:     0,
				Precision: 3,
			},
		},
		{
			name:  "empty string defaults to zero version",
			input: "",
			expected: Version{
				Major:     0,
				Precision: 1,
			},
		},
		{
			name:  "full version with suffix",
			input: "v1.2.3-rc1",
			expected: Version{
				Major:     1,
				Minor:     2,
				Patch:     3,
				Precision: 3,
				Suffix:    "-rc1",
			},
		},
		{
			name:  "major only with suffix",
			input: "2-beta",
			expected: Version{
				Major:     2,
				Precision: 1,
				Suffix:    "-beta",
			},
		},
		{
			name:  "suffix containing dots and dashes",
			input: "v1.33.5-eks-3025e55",
			expected: Version{
				Major:     1,
				Minor:     33,
				Patch:     5,
				Precision: 3,
				Suffix:    "-eks-3025e55",
			},
		},
		{
			name:          "invalid - too many components",
			input:         "1.2.3.4",
			expectedError: true,
		},
		{
			name:          "invalid - non-numeric",
			input:         "v1.2.a",
			expectedError: true,
		},
		{
			name:          "invalid - empty component",
			input:         "1..3",
			expectedError: true,
		},
		{
			name:          "invalid - bare v",
			input:         "v",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseVersion(tt.input)
			if tt.expectedError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if !result.Equals(tt.expected) {
				t.Errorf("got %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestParseVersionErrorKinds(t *testing.T) {
	if _, err := ParseVersion("1.2.3.4"); !errors.Is(err, ErrTooManyComponents) {
		t.Errorf("expected ErrTooManyComponents, got %v", err)
	}
	if _, err := ParseVersion("1.x.3"); !errors.Is(err, ErrNonNumeric) {
		t.Errorf("expected ErrNonNumeric, got %v", err)
	}
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		name     string
		version  Version
		expected string
	}{
		{
			name:     "major only",
			version:  Version{Major: 1, Precision: 1},
			expected: "v1",
		},
		{
			name:     "major.minor",
			version:  Version{Major: 1, Minor: 2, Precision: 2},
			expected: "v1.2",
		},
		{
			name:     "full version",
			version:  Version{Major: 1, Minor: 2, Patch: 3, Precision: 3},
			expected: "v1.2.3",
		},
		{
			name:     "zero version",
			version:  Zero(),
			expected: "v0",
		},
		{
			name:     "hidden components are not emitted",
			version:  Version{Major: 0, Minor: 1, Patch: 5, Precision: 2},
			expected: "v0.1",
		},
		{
			name:     "suffix emitted verbatim",
			version:  Version{Major: 1, Minor: 2, Patch: 3, Precision: 3, Suffix: "-rc.1"},
			expected: "v1.2.3-rc.1",
		},
		{
			name:     "major only with suffix",
			version:  Version{Major: 2, Precision: 1, Suffix: "-beta"},
			expected: "v2-beta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.version.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMustParseVersionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid version")
		}
	}()
	MustParseVersion("not.a.version")
}

func TestIsValid(t *testing.T) {
	if !NewVersion(1, 2, 3).IsValid() {
		t.Error("NewVersion(1,2,3) should be valid")
	}
	if (Version{Major: 1}).IsValid() {
		t.Error("zero precision should be invalid")
	}
	if (Version{Major: -1, Precision: 1}).IsValid() {
		t.Error("negative major should be invalid")
	}
}
