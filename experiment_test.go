package contigsim

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExperimentRunProducesOneRecordPerReplicate(t *testing.T) {
	exp := NewExperiment(1)
	exp.Replicates = 3
	exp.BinSize = 5
	exp.AddParameterSet(10, 500, 0.02, 0.02, 0.01, 0.2, 0.2, 0.5)
	exp.AddStartingState(50, 2, 1)

	results, err := exp.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	for key, records := range results {
		require.Lenf(t, records, 3, "key %+v", key)
	}
}

func TestExperimentRunIsReproducibleForFixedSeed(t *testing.T) {
	build := func() map[ExperimentKey][]Record {
		exp := NewExperiment(777)
		exp.Replicates = 2
		exp.AddParameterSet(10, 300, 0.02, 0.02, 0.01, 0.2, 0.2, 0.5)
		exp.AddStartingState(20, 1, 1)
		results, err := exp.Run(context.Background())
		require.NoError(t, err)
		return results
	}

	r1, r2 := build(), build()

	// Replicates run on a bounded worker pool, so the order records land in
	// a key's slice can vary run to run even though the seeds themselves
	// are derived deterministically; compare the multiset of outcomes
	// rather than position-by-position.
	llCounts := func(results map[ExperimentKey][]Record) []int {
		var counts []int
		for _, recs := range results {
			for _, r := range recs {
				counts = append(counts, r.LLCount)
			}
		}
		sort.Ints(counts)
		return counts
	}

	require.Equal(t, llCounts(r1), llCounts(r2))
}

func TestExperimentPropagatesConfigError(t *testing.T) {
	exp := NewExperiment(1)
	exp.AddParameterSet(10, -5, 0.02, 0.02, 0.01, 0.2, 0.2, 0.5)
	exp.AddStartingState(0, 1, 1)

	_, err := exp.Run(context.Background())
	require.Error(t, err)
}
