package version

import (
	"testing"
)

func BenchmarkParseVersion(b *testing.B) {
	tests := []string{
		"1",
		"v2",
		"1.2",
		"v1.2",
		"1.2.3",
		"v1.2.3",
		"v1.2.3-rc1",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_, _ = ParseVersion(input)
	}
}

func BenchmarkParseVersionMajorOnly(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseVersion("1")
	}
}

func BenchmarkParseVersionFull(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseVersion("1.2.3")
	}
}

func BenchmarkParseVersionWithSuffix(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseVersion("v1.2.3-rc.1")
	}
}

func BenchmarkVersionString(b *testing.B) {
	v := NewVersion(1, 2, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkVersionStringPrecision1(b *testing.B) {
	v := Version{Major: 1, Precision: 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkVersionStringWithSuffix(b *testing.B) {
	v := Version{Major: 1, Minor: 2, Patch: 3, Precision: 3, Suffix: "-rc1"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkBumpMajor(b *testing.B) {
	v := MustParseVersion("v1.2.3")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Bump(ComponentMajor, DirectionIncrement)
	}
}

func BenchmarkBumpPatchBorrow(b *testing.B) {
	v := MustParseVersion("v1.0.0")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Bump(ComponentPatch, DirectionDecrement)
	}
}

func BenchmarkTransform(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Transform("v1.2.3", ComponentPatch, DirectionIncrement)
	}
}
