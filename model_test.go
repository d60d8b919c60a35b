package contigsim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSetParametersRejectsInvalidInput(t *testing.T) {
	m := NewModel(1)
	err := m.SetParameters(0, -1, 0, 0, 2, 0, 0)
	require.Error(t, err)
}

func TestSetStartingStatePopulatesPool(t *testing.T) {
	m := NewModel(1)
	require.NoError(t, m.SetParameters(1000, 0.01, 0.01, 0.01, 0.1, 0.1, 0.5))
	require.NoError(t, m.SetStartingState(100, 3, 2))

	require.Equal(t, 1+3+2, m.Pool().Size())
	// Base counts always sum to N: garbage is circular (bases=size), and
	// every linear contig is built with one extra edge precisely to make
	// up for its own telomere loss.
	require.Equal(t, 1000, m.Pool().Weight())
}

func TestSetStartingStateRejectsOversizedState(t *testing.T) {
	m := NewModel(1)
	require.NoError(t, m.SetParameters(10, 0.01, 0.01, 0.01, 0.1, 0.1, 0.5))
	require.Error(t, m.SetStartingState(5, 3, 3))
}

// TestSimulateIsDeterministicForFixedSeed runs the same configuration twice
// with the same seed and checks the resulting histograms and event counters
// match exactly, the determinism invariant from §8.
func TestSimulateIsDeterministicForFixedSeed(t *testing.T) {
	build := func() Record {
		m := NewModel(12345)
		require.NoError(t, m.SetParameters(2000, 0.02, 0.02, 0.01, 0.3, 0.3, 0.5))
		require.NoError(t, m.SetStartingState(200, 4, 3))
		m.Simulate(50)
		return NewRecord(m, 10)
	}

	r1, r2 := build(), build()
	if diff := cmp.Diff(r1, r2); diff != "" {
		t.Errorf("identical seeded runs produced different records (-first +second):\n%s", diff)
	}
}

// TestLLEventGainBranchHandlesCircularSameOffset covers the case where both
// samples land on the same circular leaf at the same offset: isTelomericOffset
// is always false for a circular contig, so the gain branch is taken, and it
// must linearize the contig directly rather than route through dcj() (which
// requires two distinct cut positions for a same-object circular contig and
// panics otherwise). With seed 5 the 200 events reach that branch twice; the
// neutral events in between split the contig, so the pool ends with two
// contigs.
func TestLLEventGainBranchHandlesCircularSameOffset(t *testing.T) {
	m := NewModel(5)
	require.NoError(t, m.SetParameters(100, 0.1, 0, 0, 0, 1, 0))
	m.pool.Insert(NewCircularContig(4), 4)

	require.NotPanics(t, func() {
		for i := 0; i < 200; i++ {
			m.llEvent()
		}
	})
	require.Equal(t, 2, m.Pool().Size())
}

// TestSimulateConservesTotalBases checks that, with the telomere modifiers
// fl and fg at zero, no live-live/live-dead/dead-dead event changes the
// total base count in the pool — every neutral, live-dead and dead-dead DCJ
// is a cut-and-rejoin. (Telomere gain on a circular contig and telomere
// loss between two linear contigs do change it.)
func TestSimulateConservesTotalBases(t *testing.T) {
	m := NewModel(99)
	require.NoError(t, m.SetParameters(500, 0.05, 0.05, 0.02, 0, 0, 0.5))
	require.NoError(t, m.SetStartingState(50, 2, 2))

	before := m.Pool().Weight()
	m.Simulate(20)
	require.Equal(t, before, m.Pool().Weight())
}
