package condition

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Temi-Tory/ipm/belief"
	"github.com/Temi-Tory/ipm/dag"
	"github.com/Temi-Tory/ipm/diamond"
	"github.com/Temi-Tory/ipm/prob"
)

// runQuery is a minimal test harness mirroring package query's selection:
// every join node's top-level diamond is both a lookup entry and a storage
// root. That is redundant (an inner diamond's belief gets computed both on
// its own and again nested inside its outer diamond's conditioner) but
// still exact, since a diamond's induced prior template never reads an
// outer belief for its own internal, non-conditioning-source nodes.
func runQuery(t *testing.T, g *dag.Graph, opts ...Option) map[string]prob.Value {
	t.Helper()

	joins := make([]string, 0, len(g.JoinNodes()))
	for j := range g.JoinNodes() {
		joins = append(joins, j)
	}
	sort.Strings(joins)

	topLevel := make(map[string]*diamond.DiamondsAtNode, len(joins))
	var roots []*diamond.Diamond
	for _, j := range joins {
		dn, err := diamond.DetectAtNode(g, j, nil)
		require.NoError(t, err)
		if dn != nil {
			topLevel[j] = dn
			if dn.Diamond != nil {
				roots = append(roots, dn.Diamond)
			}
		}
	}

	storage, err := diamond.BuildStorage(g, roots)
	require.NoError(t, err)

	resolver := NewResolver(NewCache(), opts...)
	beliefs, err := belief.Compute(context.Background(), g, topLevel, storage, resolver.Resolve)
	require.NoError(t, err)
	return beliefs
}

func TestResolveSymmetricDiamond(t *testing.T) {
	edges := []dag.Edge{{From: "1", To: "2"}, {From: "1", To: "3"}, {From: "2", To: "4"}, {From: "3", To: "4"}}
	priors := map[string]prob.Value{
		"1": prob.MustScalar(1), "2": prob.MustScalar(1), "3": prob.MustScalar(1), "4": prob.MustScalar(1),
	}
	edgeProbs := map[dag.Edge]prob.Value{
		{From: "1", To: "2"}: prob.MustScalar(0.5),
		{From: "1", To: "3"}: prob.MustScalar(0.5),
		{From: "2", To: "4"}: prob.MustScalar(0.5),
		{From: "3", To: "4"}: prob.MustScalar(0.5),
	}
	g, err := dag.Build(edges, priors, edgeProbs)
	require.NoError(t, err)

	beliefs := runQuery(t, g)
	require.InDelta(t, 0.4375, beliefs["4"].Mid(), 1e-9)
}

func TestResolveAsymmetricDiamond(t *testing.T) {
	edges := []dag.Edge{{From: "1", To: "2"}, {From: "1", To: "3"}, {From: "2", To: "4"}, {From: "3", To: "4"}}
	priors := map[string]prob.Value{
		"1": prob.MustScalar(1), "2": prob.MustScalar(1), "3": prob.MustScalar(1), "4": prob.MustScalar(1),
	}
	edgeProbs := map[dag.Edge]prob.Value{
		{From: "1", To: "2"}: prob.MustScalar(0.9),
		{From: "1", To: "3"}: prob.MustScalar(0.3),
		{From: "2", To: "4"}: prob.MustScalar(0.8),
		{From: "3", To: "4"}: prob.MustScalar(0.8),
	}
	g, err := dag.Build(edges, priors, edgeProbs)
	require.NoError(t, err)

	beliefs := runQuery(t, g)
	require.InDelta(t, 0.7872, beliefs["4"].Mid(), 1e-9)
}

func TestResolveAsymmetricDiamondParallel(t *testing.T) {
	edges := []dag.Edge{{From: "1", To: "2"}, {From: "1", To: "3"}, {From: "2", To: "4"}, {From: "3", To: "4"}}
	priors := map[string]prob.Value{
		"1": prob.MustScalar(1), "2": prob.MustScalar(1), "3": prob.MustScalar(1), "4": prob.MustScalar(1),
	}
	edgeProbs := map[dag.Edge]prob.Value{
		{From: "1", To: "2"}: prob.MustScalar(0.9),
		{From: "1", To: "3"}: prob.MustScalar(0.3),
		{From: "2", To: "4"}: prob.MustScalar(0.8),
		{From: "3", To: "4"}: prob.MustScalar(0.8),
	}
	g, err := dag.Build(edges, priors, edgeProbs)
	require.NoError(t, err)

	beliefs := runQuery(t, g, WithParallelStates())
	require.InDelta(t, 0.7872, beliefs["4"].Mid(), 1e-9)
}

func TestResolveNestedDiamond(t *testing.T) {
	edges := []dag.Edge{
		{From: "1", To: "2"}, {From: "1", To: "3"},
		{From: "2", To: "4"}, {From: "3", To: "4"},
		{From: "4", To: "5"}, {From: "4", To: "6"},
		{From: "5", To: "7"}, {From: "6", To: "7"},
	}
	priors := make(map[string]prob.Value, 7)
	for _, n := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		priors[n] = prob.MustScalar(1)
	}
	edgeProbs := make(map[dag.Edge]prob.Value, len(edges))
	for _, e := range edges {
		edgeProbs[e] = prob.MustScalar(0.9)
	}
	g, err := dag.Build(edges, priors, edgeProbs)
	require.NoError(t, err)

	beliefs := runQuery(t, g)

	// Node 1 is deterministic (prior 1) and so irrelevant: 4 has no diamond
	// and belief4 = IE(0.9*0.9, 0.9*0.9). 5 and 6 share the fork 4, so 7 is
	// a diamond conditioned on 4: given 4 active, 7 = IE(0.9*0.9, 0.9*0.9),
	// and given 4 inactive, 7 is never reached.
	p := 0.9
	belief4 := (p * p) + (p * p) - (p*p)*(p*p)
	belief7Given4 := (p * p) + (p * p) - (p*p)*(p*p)
	belief7 := belief4 * belief7Given4

	require.InDelta(t, belief4, beliefs["4"].Mid(), 1e-9)
	require.InDelta(t, belief7, beliefs["7"].Mid(), 1e-9)
}

func TestResolveCacheIsReused(t *testing.T) {
	edges := []dag.Edge{{From: "1", To: "2"}, {From: "1", To: "3"}, {From: "2", To: "4"}, {From: "3", To: "4"}}
	// Source 1 gets prior 0.5 so that it is relevant and 4 has a diamond.
	priors := map[string]prob.Value{
		"1": prob.MustScalar(0.5), "2": prob.MustScalar(1), "3": prob.MustScalar(1), "4": prob.MustScalar(1),
	}
	edgeProbs := map[dag.Edge]prob.Value{
		{From: "1", To: "2"}: prob.MustScalar(0.9),
		{From: "1", To: "3"}: prob.MustScalar(0.3),
		{From: "2", To: "4"}: prob.MustScalar(0.8),
		{From: "3", To: "4"}: prob.MustScalar(0.8),
	}
	g, err := dag.Build(edges, priors, edgeProbs)
	require.NoError(t, err)

	dn, err := diamond.DetectAtNode(g, "4", nil)
	require.NoError(t, err)
	storage, err := diamond.BuildStorage(g, []*diamond.Diamond{dn.Diamond})
	require.NoError(t, err)

	cache := NewCache()
	resolver := NewResolver(cache)
	lookup := map[string]*diamond.DiamondsAtNode{"4": dn}

	_, err = belief.Compute(context.Background(), g, lookup, storage, resolver.Resolve)
	require.NoError(t, err)
	missesAfterFirst := cache.Stats().Misses
	require.Greater(t, missesAfterFirst, int64(0))
	require.Equal(t, 2, cache.Len())

	_, err = belief.Compute(context.Background(), g, lookup, storage, resolver.Resolve)
	require.NoError(t, err)
	require.Equal(t, int64(2), cache.Stats().Hits)
	require.Equal(t, missesAfterFirst, cache.Stats().Misses)
}
