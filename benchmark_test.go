package envassert

import (
	"context"
	"testing"
)

// Benchmarks verify the disabled path stays cheap enough to leave check
// sites in production code: one env lookup, one comparison, no message
// formatting.

func BenchmarkCheck_Disabled(b *testing.B) {
	b.Setenv(EnvKey, "false")

	for i := 0; i < b.N; i++ {
		Check(false)
	}
}

func BenchmarkCheckf_Disabled(b *testing.B) {
	b.Setenv(EnvKey, "false")

	for i := 0; i < b.N; i++ {
		Checkf(false, "iteration %d of %d", i, b.N)
	}
}

func BenchmarkCheck_EnabledTrue(b *testing.B) {
	b.Setenv(EnvKey, "true")

	for i := 0; i < b.N; i++ {
		Check(true)
	}
}

func BenchmarkChecker_StaticDisabled(b *testing.B) {
	checker := New(StaticEnabler(false), nil, "bench")

	for i := 0; i < b.N; i++ {
		checker.Checkf(context.Background(), false, "iteration %d", i)
	}
}

func BenchmarkChecker_StaticEnabledTrue(b *testing.B) {
	checker := New(StaticEnabler(true), nil, "bench")

	for i := 0; i < b.N; i++ {
		checker.Check(context.Background(), true)
	}
}
