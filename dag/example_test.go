package dag_test

import (
	"fmt"

	"github.com/Temi-Tory/ipm/dag"
	"github.com/Temi-Tory/ipm/prob"
)

// ExampleBuild constructs the symmetric diamond from spec.md scenario S2:
//
//	  1
//	 / \
//	2   3
//	 \ /
//	  4
func ExampleBuild() {
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
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("join:", g.IsJoin("4"))
	fmt.Println("levels:", len(g.IterationSets()))
	// Output:
	// join: true
	// levels: 3
}
