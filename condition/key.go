// File: key.go
// Role: DiamondCacheKey and its prior-vector hashing, per spec.md §4.G:
// "DiamondCacheKey = (diamond_structural_hash, prior_vector_hash) where
// prior_vector_hash hashes the induced-prior values (for intervals:
// endpoint pairs; for p-boxes: discretized bound sequences)".
package condition

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/Temi-Tory/ipm/prob"
)

// DiamondCacheKey identifies one (diamond shape, induced-prior assignment)
// pair for cross-call memoization.
type DiamondCacheKey struct {
	DiamondHash uint64
	PriorHash   uint64
}

// DiamondCacheEntry is the cached payload: the full induced-belief map, so
// callers can look up any sub-node of the diamond, not just its join.
type DiamondCacheEntry struct {
	Beliefs map[string]prob.Value
}

// priorVectorHash hashes an induced node-priors template by its node IDs and
// values, independent of Go map iteration order.
func priorVectorHash(priors map[string]prob.Value) uint64 {
	ids := make([]string, 0, len(priors))
	for id := range priors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	h := xxhash.New()
	for _, id := range ids {
		h.WriteString(id)
		h.WriteString("=")
		writeValueBytes(h, priors[id])
		h.WriteString(";")
	}
	return h.Sum64()
}

// byteWriter is the subset of hash.Hash64 writeValueBytes needs, satisfied
// by *xxhash.Digest.
type byteWriter interface {
	WriteString(string) (int, error)
}

func writeValueBytes(h byteWriter, v prob.Value) {
	h.WriteString(v.Kind().String())
	h.WriteString(":")
	switch v.Kind() {
	case prob.KindScalar:
		h.WriteString(strconv.FormatFloat(v.Lo(), 'g', -1, 64))
	case prob.KindInterval:
		h.WriteString(strconv.FormatFloat(v.Lo(), 'g', -1, 64))
		h.WriteString(",")
		h.WriteString(strconv.FormatFloat(v.Hi(), 'g', -1, 64))
	case prob.KindPBox:
		left, right := v.Box().FocalIntervals()
		for i := range left {
			h.WriteString(strconv.FormatFloat(left[i], 'g', -1, 64))
			h.WriteString("/")
			h.WriteString(strconv.FormatFloat(right[i], 'g', -1, 64))
			h.WriteString(",")
		}
	}
}
