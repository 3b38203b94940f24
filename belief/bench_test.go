package belief

import (
	"testing"

	"github.com/Temi-Tory/ipm/prob"
)

// BenchmarkInclusionExclusion tracks the combinatorial blow-up spec.md §4.E
// accepts as the price of exactness: 2^m subset evaluations for m
// contributions.
func BenchmarkInclusionExclusion(b *testing.B) {
	contributions := make([]prob.Value, 12)
	for i := range contributions {
		contributions[i] = prob.MustScalar(0.5)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inclusionExclusion(contributions)
	}
}
