/**
 * Filename: experiment.go
 * Path: github.com/glennhickey/contigSim
 *
 * Copyright (c) 2024 Glenn Hickey
 */

package contigsim

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ParameterSet bundles a simulation duration with the rate constants from
// §4.D.2; it is the "parameters" half of the §6 result-record key.
type ParameterSet struct {
	T float64
	Parameters
}

// StartingState is the "starting_state" half of the §6 result-record key.
type StartingState struct {
	GarbageSize int
	NumLinear   int
	NumCircular int
}

// ExperimentKey identifies one (parameters, starting_state) combination.
type ExperimentKey struct {
	Params ParameterSet
	State  StartingState
}

// Experiment enumerates a Cartesian product of parameter sets x starting
// states x replicates. It is an external collaborator per §1/§6: it
// constructs a Model per replicate, runs it, and stores the resulting
// Record — the core itself has no opinion on how results are aggregated
// or persisted beyond this struct.
type Experiment struct {
	ParameterSets  []ParameterSet
	StartingStates []StartingState
	Replicates     int
	BinSize        int
	Seed           int64
	Degree         int
}

// NewExperiment returns an Experiment with conservative defaults: a single
// replicate, unit bin size, default tree degree.
func NewExperiment(seed int64) *Experiment {
	return &Experiment{
		Replicates: 1,
		BinSize:    1,
		Seed:       seed,
		Degree:     DefaultDegree,
	}
}

// AddParameterSet appends one (T, N, rll, rld, rdd, fl, fg, pgain) combination.
func (e *Experiment) AddParameterSet(t float64, n int, rll, rld, rdd, fl, fg, pgain float64) {
	e.ParameterSets = append(e.ParameterSets, ParameterSet{
		T:          t,
		Parameters: Parameters{N: n, Rll: rll, Rld: rld, Rdd: rdd, Fl: fl, Fg: fg, Pgain: pgain},
	})
}

// AddStartingState appends one (garbage, numLinear, numCircular) combination.
func (e *Experiment) AddStartingState(garbageSize, numLinear, numCircular int) {
	e.StartingStates = append(e.StartingStates, StartingState{
		GarbageSize: garbageSize,
		NumLinear:   numLinear,
		NumCircular: numCircular,
	})
}

// Run executes every (parameters, starting_state) combination for
// Replicates independent seeds, one goroutine per replicate bounded by
// GOMAXPROCS, and returns a mapping key -> one Record per replicate.
// Replicates are embarrassingly parallel: each owns a private Model,
// SampleTree, EventQueue and *rand.Rand, so no state crosses the goroutine
// boundary except the returned Record.
func (e *Experiment) Run(ctx context.Context) (map[ExperimentKey][]Record, error) {
	results := make(map[ExperimentKey][]Record)
	var mu sync.Mutex

	// Seeds are derived sequentially from one master source so the whole
	// experiment is reproducible regardless of goroutine scheduling order.
	master := rand.New(rand.NewSource(e.Seed))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, params := range e.ParameterSets {
		for _, state := range e.StartingStates {
			key := ExperimentKey{Params: params, State: state}
			for rep := 0; rep < e.Replicates; rep++ {
				seed := master.Int63()
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					record, err := e.runReplicate(seed, key.Params, key.State)
					if err != nil {
						return err
					}
					mu.Lock()
					results[key] = append(results[key], record)
					mu.Unlock()
					return nil
				})
			}
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Experiment) runReplicate(seed int64, params ParameterSet, state StartingState) (Record, error) {
	model := NewModelWithDegree(seed, e.Degree)
	if err := model.SetParameters(params.N, params.Rll, params.Rld, params.Rdd, params.Fl, params.Fg, params.Pgain); err != nil {
		return Record{}, err
	}
	if err := model.SetStartingState(state.GarbageSize, state.NumLinear, state.NumCircular); err != nil {
		return Record{}, err
	}
	model.Simulate(params.T)
	return NewRecord(model, e.BinSize), nil
}
