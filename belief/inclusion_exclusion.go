// File: inclusion_exclusion.go
// Role: inclusionExclusion implements spec.md §4.E's exact formula over a
// list of independent contributions:
//
//	IE(b) = sum_{S subset {1..m}, S != empty} (-1)^(|S|+1) * prod_{i in S} b_i
//
// Every non-empty subset is enumerated; callers are expected to keep m
// small by folding dependent contributions into diamond joins first.
package belief

import "github.com/Temi-Tory/ipm/prob"

func inclusionExclusion(b []prob.Value) prob.Value {
	m := len(b)
	acc := prob.Zero()

	for mask := 1; mask < (1 << uint(m)); mask++ {
		term := prob.One()
		bits := 0
		for i := 0; i < m; i++ {
			if mask&(1<<uint(i)) != 0 {
				term = prob.Mul(term, b[i])
				bits++
			}
		}
		if bits%2 == 1 {
			acc = prob.Add(acc, term)
		} else {
			acc = prob.Sub(acc, term)
		}
	}

	return acc
}
