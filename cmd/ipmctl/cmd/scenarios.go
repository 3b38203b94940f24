package cmd

import (
	"sort"

	"github.com/Temi-Tory/ipm/dag"
	"github.com/Temi-Tory/ipm/prob"
)

// scenario is one embedded worked example from spec.md §8.
type scenario struct {
	Name        string
	Description string
	Kind        prob.Kind
	Edges       []dag.Edge
	NodePriors  map[string]prob.Value
	EdgeProbs   map[dag.Edge]prob.Value
}

func scalarPriors(nodes ...string) map[string]prob.Value {
	out := make(map[string]prob.Value, len(nodes))
	for _, n := range nodes {
		out[n] = prob.MustScalar(1)
	}
	return out
}

// scenarios is the S1-S6 catalogue, keyed by name, in §8 order.
var scenarios = map[string]scenario{
	"S1": {
		Name:        "S1",
		Description: "Trivial chain 1 -> 2 -> 3",
		Kind:        prob.KindScalar,
		Edges:       []dag.Edge{{From: "1", To: "2"}, {From: "2", To: "3"}},
		NodePriors:  scalarPriors("1", "2", "3"),
		EdgeProbs: map[dag.Edge]prob.Value{
			{From: "1", To: "2"}: prob.MustScalar(0.5),
			{From: "2", To: "3"}: prob.MustScalar(0.5),
		},
	},
	"S2": {
		Name:        "S2",
		Description: "Symmetric diamond 1 -> {2,3} -> 4",
		Kind:        prob.KindScalar,
		Edges: []dag.Edge{
			{From: "1", To: "2"}, {From: "1", To: "3"},
			{From: "2", To: "4"}, {From: "3", To: "4"},
		},
		NodePriors: scalarPriors("1", "2", "3", "4"),
		EdgeProbs: map[dag.Edge]prob.Value{
			{From: "1", To: "2"}: prob.MustScalar(0.5),
			{From: "1", To: "3"}: prob.MustScalar(0.5),
			{From: "2", To: "4"}: prob.MustScalar(0.5),
			{From: "3", To: "4"}: prob.MustScalar(0.5),
		},
	},
	"S3": {
		Name:        "S3",
		Description: "Asymmetric diamond 1 -> 2, 1 -> 3, 2 -> 4, 3 -> 4",
		Kind:        prob.KindScalar,
		Edges: []dag.Edge{
			{From: "1", To: "2"}, {From: "1", To: "3"},
			{From: "2", To: "4"}, {From: "3", To: "4"},
		},
		NodePriors: scalarPriors("1", "2", "3", "4"),
		EdgeProbs: map[dag.Edge]prob.Value{
			{From: "1", To: "2"}: prob.MustScalar(0.9),
			{From: "1", To: "3"}: prob.MustScalar(0.3),
			{From: "2", To: "4"}: prob.MustScalar(0.8),
			{From: "3", To: "4"}: prob.MustScalar(0.8),
		},
	},
	"S4": {
		Name:        "S4",
		Description: "Nested diamond 1 -> {2,3} -> 4 -> {5,6} -> 7",
		Kind:        prob.KindScalar,
		Edges: []dag.Edge{
			{From: "1", To: "2"}, {From: "1", To: "3"},
			{From: "2", To: "4"}, {From: "3", To: "4"},
			{From: "4", To: "5"}, {From: "4", To: "6"},
			{From: "5", To: "7"}, {From: "6", To: "7"},
		},
		NodePriors: scalarPriors("1", "2", "3", "4", "5", "6", "7"),
		EdgeProbs: func() map[dag.Edge]prob.Value {
			edges := []dag.Edge{
				{From: "1", To: "2"}, {From: "1", To: "3"},
				{From: "2", To: "4"}, {From: "3", To: "4"},
				{From: "4", To: "5"}, {From: "4", To: "6"},
				{From: "5", To: "7"}, {From: "6", To: "7"},
			}
			out := make(map[dag.Edge]prob.Value, len(edges))
			for _, e := range edges {
				out[e] = prob.MustScalar(0.9)
			}
			return out
		}(),
	},
	"S5": {
		Name:        "S5",
		Description: "Irrelevant source 0 -> 1 feeding the S3 diamond, prior/edge prob both 1.0",
		Kind:        prob.KindScalar,
		Edges: []dag.Edge{
			{From: "0", To: "1"},
			{From: "1", To: "2"}, {From: "1", To: "3"},
			{From: "2", To: "4"}, {From: "3", To: "4"},
		},
		NodePriors: scalarPriors("0", "1", "2", "3", "4"),
		EdgeProbs: map[dag.Edge]prob.Value{
			{From: "0", To: "1"}: prob.MustScalar(1),
			{From: "1", To: "2"}: prob.MustScalar(0.9),
			{From: "1", To: "3"}: prob.MustScalar(0.3),
			{From: "2", To: "4"}: prob.MustScalar(0.8),
			{From: "3", To: "4"}: prob.MustScalar(0.8),
		},
	},
	"S6": {
		Name:        "S6",
		Description: "S1 under interval uncertainty",
		Kind:        prob.KindInterval,
		Edges:       []dag.Edge{{From: "1", To: "2"}, {From: "2", To: "3"}},
		NodePriors: map[string]prob.Value{
			"1": prob.MustInterval(1, 1), "2": prob.MustInterval(1, 1), "3": prob.MustInterval(1, 1),
		},
		EdgeProbs: map[dag.Edge]prob.Value{
			{From: "1", To: "2"}: prob.MustInterval(0.4, 0.6),
			{From: "2", To: "3"}: prob.MustInterval(0.4, 0.6),
		},
	},
}

// scenarioNames returns the catalogue's names in ascending order.
func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for n := range scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
