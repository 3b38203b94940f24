package belief_test

import (
	"context"
	"fmt"

	"github.com/Temi-Tory/ipm/belief"
	"github.com/Temi-Tory/ipm/dag"
	"github.com/Temi-Tory/ipm/diamond"
	"github.com/Temi-Tory/ipm/prob"
)

// ExampleCompute propagates belief over a plain join (no diamond): two
// independent sources feeding one node combine by inclusion-exclusion.
func ExampleCompute() {
	edges := []dag.Edge{{From: "s1", To: "j"}, {From: "s2", To: "j"}}
	priors := map[string]prob.Value{
		"s1": prob.MustScalar(1), "s2": prob.MustScalar(1), "j": prob.MustScalar(1),
	}
	edgeProbs := map[dag.Edge]prob.Value{
		{From: "s1", To: "j"}: prob.MustScalar(0.5),
		{From: "s2", To: "j"}: prob.MustScalar(0.3),
	}
	g, err := dag.Build(edges, priors, edgeProbs)
	if err != nil {
		panic(err)
	}

	noop := func(context.Context, *dag.Graph, *diamond.Diamond, *diamond.Storage, map[string]prob.Value) (prob.Value, error) {
		return prob.Zero(), nil
	}

	beliefs, err := belief.Compute(context.Background(), g, nil, diamond.NewStorage(), noop)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f\n", beliefs["j"].Mid())
	// Output: 0.65
}
