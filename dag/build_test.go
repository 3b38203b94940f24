package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temi-Tory/ipm/prob"
)

func onesPriors(ids ...string) map[string]prob.Value {
	m := make(map[string]prob.Value, len(ids))
	for _, id := range ids {
		m[id] = prob.MustScalar(1.0)
	}
	return m
}

func TestBuildChain(t *testing.T) {
	edges := []Edge{{"1", "2"}, {"2", "3"}}
	priors := onesPriors("1", "2", "3")
	edgeProbs := map[Edge]prob.Value{
		{"1", "2"}: prob.MustScalar(0.5),
		{"2", "3"}: prob.MustScalar(0.5),
	}

	g, err := Build(edges, priors, edgeProbs)
	require.NoError(t, err)

	assert.True(t, g.IsSource("1"))
	assert.False(t, g.IsSource("2"))
	assert.False(t, g.IsFork("1"))
	assert.False(t, g.IsJoin("2"))
	assert.Equal(t, [][]string{{"1"}, {"2"}, {"3"}}, g.IterationSets())
	assert.Contains(t, g.Ancestors("3"), "1")
	assert.Contains(t, g.Descendants("1"), "3")
}

func TestBuildDetectsCycle(t *testing.T) {
	edges := []Edge{{"1", "2"}, {"2", "1"}}
	priors := onesPriors("1", "2")
	edgeProbs := map[Edge]prob.Value{
		{"1", "2"}: prob.MustScalar(0.5),
		{"2", "1"}: prob.MustScalar(0.5),
	}
	_, err := Build(edges, priors, edgeProbs)
	require.ErrorIs(t, err, ErrCycleDetected)
}

func TestBuildRejectsSelfLoop(t *testing.T) {
	edges := []Edge{{"1", "1"}}
	_, err := Build(edges, onesPriors("1"), map[Edge]prob.Value{{"1", "1"}: prob.MustScalar(0.5)})
	require.ErrorIs(t, err, ErrSelfLoop)
}

func TestBuildRejectsDuplicateEdge(t *testing.T) {
	edges := []Edge{{"1", "2"}, {"1", "2"}}
	_, err := Build(edges, onesPriors("1", "2"), map[Edge]prob.Value{{"1", "2"}: prob.MustScalar(0.5)})
	require.ErrorIs(t, err, ErrDuplicateEdge)
}

func TestBuildMissingPrior(t *testing.T) {
	edges := []Edge{{"1", "2"}}
	_, err := Build(edges, map[string]prob.Value{"1": prob.MustScalar(1)}, map[Edge]prob.Value{{"1", "2"}: prob.MustScalar(0.5)})
	var mp *MissingPriorError
	require.ErrorAs(t, err, &mp)
	assert.Equal(t, "2", mp.Node)
}

func TestBuildMissingEdgeProbability(t *testing.T) {
	edges := []Edge{{"1", "2"}}
	_, err := Build(edges, onesPriors("1", "2"), map[Edge]prob.Value{})
	var mp *MissingEdgeProbabilityError
	require.ErrorAs(t, err, &mp)
}

func TestDiamondJoinFork(t *testing.T) {
	// 1 -> {2,3} -> 4
	edges := []Edge{{"1", "2"}, {"1", "3"}, {"2", "4"}, {"3", "4"}}
	priors := onesPriors("1", "2", "3", "4")
	edgeProbs := map[Edge]prob.Value{
		{"1", "2"}: prob.MustScalar(0.5),
		{"1", "3"}: prob.MustScalar(0.5),
		{"2", "4"}: prob.MustScalar(0.5),
		{"3", "4"}: prob.MustScalar(0.5),
	}
	g, err := Build(edges, priors, edgeProbs)
	require.NoError(t, err)

	assert.True(t, g.IsFork("1"))
	assert.True(t, g.IsJoin("4"))
	assert.Equal(t, [][]string{{"1"}, {"2", "3"}, {"4"}}, g.IterationSets())
}

func TestIrrelevantSource(t *testing.T) {
	edges := []Edge{{"1", "2"}}
	priors := onesPriors("1", "2")
	edgeProbs := map[Edge]prob.Value{{"1", "2"}: prob.MustScalar(1.0)}
	g, err := Build(edges, priors, edgeProbs)
	require.NoError(t, err)
	assert.True(t, g.IsIrrelevantSource("1"))
}
