package query_test

import (
	"context"
	"fmt"

	"github.com/Temi-Tory/ipm/dag"
	"github.com/Temi-Tory/ipm/prob"
	"github.com/Temi-Tory/ipm/query"
)

// ExampleCompute reproduces spec.md §8 scenario S3, the asymmetric
// diamond 1->2, 1->3, 2->4, 3->4.
func ExampleCompute() {
	edges := []dag.Edge{
		{From: "1", To: "2"}, {From: "1", To: "3"},
		{From: "2", To: "4"}, {From: "3", To: "4"},
	}
	priors := map[string]prob.Value{
		"1": prob.MustScalar(1), "2": prob.MustScalar(1),
		"3": prob.MustScalar(1), "4": prob.MustScalar(1),
	}
	edgeProbs := map[dag.Edge]prob.Value{
		{From: "1", To: "2"}: prob.MustScalar(0.9),
		{From: "1", To: "3"}: prob.MustScalar(0.3),
		{From: "2", To: "4"}: prob.MustScalar(0.8),
		{From: "3", To: "4"}: prob.MustScalar(0.8),
	}

	res, err := query.Compute(context.Background(), edges, priors, edgeProbs)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", res.Beliefs["4"].Mid())
	// Output: 0.7872
}
