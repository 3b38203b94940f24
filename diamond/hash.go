// File: hash.go
// Role: structuralHash computes the 64-bit diamond_hash of spec §4.D:
// "a 64-bit hash of (edgelist, conditioning_nodes); stable across identical
// structural shapes regardless of node labelling order."
//
// Node IDs are canonicalized to their rank within the diamond's own sorted
// relevant-node set before hashing, so two diamonds with isomorphic
// edgelists collide when the relabelling between them preserves the
// lexicographic order of their nodes; a relabelling that reorders them can
// yield a different hash.
package diamond

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/Temi-Tory/ipm/dag"
)

// structuralHash returns a diamond_hash stable across order-preserving
// relabellings of an otherwise-identical (edgelist, conditioningNodes) shape.
func structuralHash(edgelist []dag.Edge, conditioningNodes []string, relevant map[string]struct{}) uint64 {
	rank := canonicalRanks(relevant)

	type rankedEdge struct{ from, to int }
	edges := make([]rankedEdge, 0, len(edgelist))
	for _, e := range edgelist {
		edges = append(edges, rankedEdge{rank[e.From], rank[e.To]})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].to < edges[j].to
	})

	condRanks := make([]int, 0, len(conditioningNodes))
	for _, c := range conditioningNodes {
		condRanks = append(condRanks, rank[c])
	}
	sort.Ints(condRanks)

	h := xxhash.New()
	for _, e := range edges {
		h.WriteString(strconv.Itoa(e.from))
		h.WriteString(",")
		h.WriteString(strconv.Itoa(e.to))
		h.WriteString(";")
	}
	h.WriteString("|")
	for _, r := range condRanks {
		h.WriteString(strconv.Itoa(r))
		h.WriteString(",")
	}

	return h.Sum64()
}

// canonicalRanks assigns each node in relevant a stable integer rank based
// on its lexicographic position within relevant itself, so the hash does
// not depend on the global graph's node labels.
func canonicalRanks(relevant map[string]struct{}) map[string]int {
	ids := sortedKeys(relevant)
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	return rank
}
