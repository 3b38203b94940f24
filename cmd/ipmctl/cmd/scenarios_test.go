package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Temi-Tory/ipm/query"
)

func TestEmbeddedScenariosComputeWithoutError(t *testing.T) {
	for _, name := range scenarioNames() {
		name := name
		t.Run(name, func(t *testing.T) {
			s := scenarios[name]
			res, err := query.Compute(context.Background(), s.Edges, s.NodePriors, s.EdgeProbs, query.WithKind(s.Kind))
			require.NoError(t, err)
			require.NotEmpty(t, res.Beliefs)
		})
	}
}

func TestScenarioS3MatchesSpecValue(t *testing.T) {
	s := scenarios["S3"]
	res, err := query.Compute(context.Background(), s.Edges, s.NodePriors, s.EdgeProbs)
	require.NoError(t, err)
	require.InDelta(t, 0.7872, res.Beliefs["4"].Mid(), 1e-12)
}
