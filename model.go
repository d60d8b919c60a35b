/**
 * Filename: model.go
 * Path: github.com/glennhickey/contigSim
 *
 * Copyright (c) 2024 Glenn Hickey
 */

package contigsim

import (
	"math"
	"math/rand"
)

// Parameters fixes the rate constants and telomere modifiers for one
// simulation run. Rates are per-base; the Model multiplies by N when
// enrolling an event kind in the queue.
type Parameters struct {
	N             int
	Rll, Rld, Rdd float64
	Fl, Fg, Pgain float64
}

// Handle names one adjacency: a leaf in the sample tree plus an offset
// into the contig it owns. leaf is the identity used for same-contig
// checks — never the contig value itself, since two distinct contigs may
// share size and topology.
type Handle struct {
	Leaf   *SampleTreeNode
	Offset int
}

// Model drives one replicate: a pool of contigs sampled by weight, and an
// exponential event race between live-live, live-dead and dead-dead DCJ
// events. Every stochastic choice — exponential draws, uniform sampling,
// coin flips, offset repair, dead-output selection — routes through rng,
// so a fixed seed reproduces a fixed trajectory.
type Model struct {
	pool       *SampleTree
	eventQueue *EventQueue
	rng        *rand.Rand
	params     Parameters
	handlers   map[string]func()

	llCount     int
	fgCount     int
	flCount     int
	ldLossCount int
	ldSwapCount int
	ddGainCount int
	ddSwapCount int
}

// NewModel constructs a Model seeded for reproducibility, using the
// teacher default branching factor for its sample tree.
func NewModel(seed int64) *Model {
	return NewModelWithDegree(seed, DefaultDegree)
}

// NewModelWithDegree is NewModel with an explicit sample-tree degree.
func NewModelWithDegree(seed int64, degree int) *Model {
	rng := rand.New(rand.NewSource(seed))
	return &Model{
		pool:       NewSampleTree(degree),
		eventQueue: NewEventQueue(rng),
		rng:        rng,
		handlers:   make(map[string]func()),
	}
}

// Pool exposes the underlying sample tree, chiefly so callers can take a
// Histogram once a run finishes.
func (m *Model) Pool() *SampleTree { return m.pool }

func (m *Model) LLCount() int     { return m.llCount }
func (m *Model) FGCount() int     { return m.fgCount }
func (m *Model) FLCount() int     { return m.flCount }
func (m *Model) LDLossCount() int { return m.ldLossCount }
func (m *Model) LDSwapCount() int { return m.ldSwapCount }
func (m *Model) DDGainCount() int { return m.ddGainCount }
func (m *Model) DDSwapCount() int { return m.ddSwapCount }

// SetParameters validates and fixes the rate constants for this model.
// Only event kinds with a strictly positive rate are enrolled in the
// event queue.
func (m *Model) SetParameters(N int, rll, rld, rdd, fl, fg, pgain float64) error {
	cfg := newConfigError()
	if N <= 0 {
		cfg.add("N must be positive, got %d", N)
	}
	if rll < 0 {
		cfg.add("rll must be >= 0, got %v", rll)
	}
	if rld < 0 {
		cfg.add("rld must be >= 0, got %v", rld)
	}
	if rdd < 0 {
		cfg.add("rdd must be >= 0, got %v", rdd)
	}
	if fl < 0 || fl > 1 {
		cfg.add("fl must be in [0,1], got %v", fl)
	}
	if fg < 0 || fg > 1 {
		cfg.add("fg must be in [0,1], got %v", fg)
	}
	if pgain < 0 || pgain > 1 {
		cfg.add("pgain must be in [0,1], got %v", pgain)
	}
	if err := cfg.errOrNil(); err != nil {
		return err
	}

	m.params = Parameters{N: N, Rll: rll, Rld: rld, Rdd: rdd, Fl: fl, Fg: fg, Pgain: pgain}
	m.eventQueue.Reset()
	m.handlers = make(map[string]func())

	if rll > 0 {
		m.eventQueue.AddEventType("ll", float64(N)*rll)
		m.handlers["ll"] = m.llEvent
	}
	if rld > 0 {
		m.eventQueue.AddEventType("ld", float64(N)*rld)
		m.handlers["ld"] = m.ldEvent
	}
	if rdd > 0 {
		m.eventQueue.AddEventType("dd", float64(N)*rdd)
		m.handlers["dd"] = m.ddEvent
	}
	log.Noticef("Parameters set: N=%d rll=%v rld=%v rdd=%v fl=%v fg=%v pgain=%v",
		N, rll, rld, rdd, fl, fg, pgain)
	return nil
}

// SetStartingState populates the pool with one optional dead garbage
// circle, numLinear linear contigs and numCircular circular contigs,
// splitting N-garbageSize bases between the linear and circular groups in
// proportion to their contig counts.
func (m *Model) SetStartingState(garbageSize, numLinear, numCircular int) error {
	cfg := newConfigError()
	if garbageSize < 0 {
		cfg.add("garbageSize must be >= 0, got %d", garbageSize)
	}
	if numLinear < 0 {
		cfg.add("numLinear must be >= 0, got %d", numLinear)
	}
	if numCircular < 0 {
		cfg.add("numCircular must be >= 0, got %d", numCircular)
	}
	if garbageSize+numLinear+numCircular >= m.params.N {
		cfg.add("garbageSize+numLinear+numCircular (%d) must be < N (%d)",
			garbageSize+numLinear+numCircular, m.params.N)
	}
	if err := cfg.errOrNil(); err != nil {
		return err
	}

	if garbageSize > 0 {
		garbage := Contig(NewCircularContig(garbageSize)).SetDead(true)
		m.pool.Insert(garbage, garbage.NumBases())
	}

	remaining := m.params.N - garbageSize
	linearBases, circularBases := 0, 0
	if numLinear+numCircular > 0 {
		linearBases = int(math.Floor(float64(remaining) * float64(numLinear) / float64(numLinear+numCircular)))
		circularBases = remaining - linearBases
	}

	if numLinear > 0 {
		share, extra := linearBases/numLinear, linearBases%numLinear
		for i := 0; i < numLinear; i++ {
			bases := share
			if i < extra {
				bases++
			}
			// +1 because a linear contig's edge count is bases+1.
			contig := NewLinearContig(bases + 1)
			m.pool.Insert(contig, contig.NumBases())
		}
	}

	if numCircular > 0 {
		share, extra := circularBases/numCircular, circularBases%numCircular
		for i := 0; i < numCircular; i++ {
			bases := share
			if i < extra {
				bases++
			}
			contig := NewCircularContig(bases)
			m.pool.Insert(contig, contig.NumBases())
		}
	}

	// Postconditions mirroring original_source/src/model.py's own asserts:
	// every contig requested was actually inserted, and the pool's total
	// sampling weight is exactly the garbage plus live bases handed out
	// above (never silently dropped or double-counted).
	wantSize := numLinear + numCircular
	if garbageSize > 0 {
		wantSize++
	}
	precondition(m.pool.Size() == wantSize, "SetStartingState: pool size %d, want %d", m.pool.Size(), wantSize)
	wantWeight := garbageSize + linearBases + circularBases
	precondition(m.pool.Weight() == wantWeight, "SetStartingState: pool weight %d, want %d", m.pool.Weight(), wantWeight)

	log.Noticef("Starting state: garbage=%d linear=%d circular=%d, pool size=%d weight=%d",
		garbageSize, numLinear, numCircular, m.pool.Size(), m.pool.Weight())
	return nil
}

// Simulate resets the per-run counters and drives the event queue forward
// to time T, dispatching each fired kind to its handler. simulate runs to
// completion synchronously; there are no suspension points.
func (m *Model) Simulate(T float64) {
	m.llCount, m.fgCount, m.flCount = 0, 0, 0
	m.ldLossCount, m.ldSwapCount, m.ddGainCount, m.ddSwapCount = 0, 0, 0, 0

	m.eventQueue.Begin()
	for {
		kind, ok := m.eventQueue.Next(T)
		if !ok {
			break
		}
		m.handlers[kind]()
	}
	log.Noticef("simulate(%v) done: ll=%d fg=%d fl=%d ldLoss=%d ldSwap=%d ddGain=%d ddSwap=%d",
		T, m.llCount, m.fgCount, m.flCount, m.ldLossCount, m.ldSwapCount, m.ddGainCount, m.ddSwapCount)
}

// isTelomericOffset reports whether offset names one of the two implicit
// telomere edges of a linear contig (always false for circular contigs,
// which have none).
func isTelomericOffset(c Contig, offset int) bool {
	lc, ok := c.(LinearContig)
	if !ok {
		return false
	}
	return offset == 0 || offset == lc.size-1
}

// repairOffset gives the left-telomere edge (offset 0) and the
// right-telomere edge (offset numBases()) of a linear contig equal
// sampling probability: the sample tree weights by numBases(), so raw
// offsets only range over [0, numBases()) and the right telomere would
// otherwise never be drawn. flip, when non-nil, reuses a prior coin result
// instead of drawing a fresh one (used when both draws in a pair name the
// exact same raw offset on the same leaf).
func (m *Model) repairOffset(leaf *SampleTreeNode, offset int, flip *bool) (int, bool) {
	lc, ok := leaf.Contig().(LinearContig)
	if !ok || offset != 0 {
		return offset, false
	}
	heads := false
	if flip != nil {
		heads = *flip
	} else {
		heads = m.rng.Intn(2) == 1
	}
	if heads {
		return lc.NumBases(), heads
	}
	return offset, heads
}

// drawSamples draws two independent weighted adjacencies from the pool,
// applying the offset repair rule of §4.D.4.
func (m *Model) drawSamples() (Handle, Handle) {
	leaf1, off1 := m.pool.UniformSample(m.rng)
	leaf2, off2 := m.pool.UniformSample(m.rng)

	repaired1, flip1 := m.repairOffset(leaf1, off1, nil)
	var repaired2 int
	if leaf1 == leaf2 && off1 == off2 {
		repaired2, _ = m.repairOffset(leaf2, off2, &flip1)
	} else {
		repaired2, _ = m.repairOffset(leaf2, off2, nil)
	}

	precondition(leaf1 == nil || repaired1 < leaf1.Contig().Size(), "drawSamples: repaired offset %d out of range", repaired1)
	precondition(leaf2 == nil || repaired2 < leaf2.Contig().Size(), "drawSamples: repaired offset %d out of range", repaired2)

	return Handle{Leaf: leaf1, Offset: repaired1}, Handle{Leaf: leaf2, Offset: repaired2}
}

// insertAll reinserts every output contig from a DCJ call, weighted by
// its live-base count.
func (m *Model) insertAll(contigs []Contig) {
	for _, c := range contigs {
		m.pool.Insert(c, c.NumBases())
	}
}

// assignDeadProportional marks exactly one output dead: the whole contig
// if DCJ produced a single output, or — among two outputs — the one drawn
// with probability proportional to its size (rng.Intn(s1+s2) >= s1 picks
// the second output).
func (m *Model) assignDeadProportional(outputs []Contig) []Contig {
	if len(outputs) == 1 {
		outputs[0] = outputs[0].SetDead(true)
		return outputs
	}
	s1, s2 := outputs[0].Size(), outputs[1].Size()
	if m.rng.Intn(s1+s2) >= s1 {
		outputs[1] = outputs[1].SetDead(true)
	} else {
		outputs[0] = outputs[0].SetDead(true)
	}
	return outputs
}

// llEvent is the live-live handler: samples two adjacencies, and — unless
// either is dead — performs either a telomere-gain DCJ, a telomere-loss
// DCJ, or a neutral DCJ, per §4.D.5.
func (m *Model) llEvent() {
	if m.pool.Size() == 0 || m.pool.Weight() <= 1 {
		return
	}
	h1, h2 := m.drawSamples()
	c1, c2 := h1.Leaf.Contig(), h2.Leaf.Contig()
	if c1.IsDead() || c2.IsDead() {
		return
	}
	sameLeaf := h1.Leaf == h2.Leaf

	if sameLeaf {
		c1 = m.pool.Remove(h1.Leaf)
		c2 = c1
	} else {
		c1 = m.pool.Remove(h1.Leaf)
		c2 = m.pool.Remove(h2.Leaf)
	}

	// Gain branch: same contig, same edge, and that edge is not already a
	// telomere. dcj()'s equal-offset provision (dcjLinearSame) only covers
	// linear contigs — spec.md's CC-same case requires p1 != p2 and panics
	// otherwise — so a circular contig is linearized directly instead of
	// routing through dcj().
	if sameLeaf && h1.Offset == h2.Offset && !isTelomericOffset(c1, h1.Offset) {
		if m.rng.Float64() < m.params.Fg {
			m.fgCount++
			if cc1, ok := c1.(CircularContig); ok {
				m.insertAll([]Contig{cc1.Linearize(h1.Offset)})
			} else {
				outputs := dcj(c1, h1.Offset, c1, h1.Offset, true, true)
				m.insertAll(outputs)
			}
		} else {
			m.insertAll([]Contig{c1})
		}
		return
	}

	// Loss branch: both linear, both offsets telomeric.
	if c1.IsLinear() && c2.IsLinear() && isTelomericOffset(c1, h1.Offset) && isTelomericOffset(c2, h2.Offset) {
		forward := m.rng.Intn(2) == 0
		if sameLeaf {
			if m.rng.Float64() < m.params.Fl/4 {
				outputs := dcj(c1, h1.Offset, c1, h2.Offset, true, forward)
				m.flCount++
				m.insertAll(outputs)
			} else {
				m.insertAll([]Contig{c1})
			}
			return
		}
		if m.rng.Float64() < m.params.Fl/2 {
			cc1 := c1.(LinearContig).Circularize()
			cc2 := c2.(LinearContig).Circularize()
			outputs := dcj(cc1, 0, cc2, 0, false, forward)
			m.flCount++
			m.insertAll(outputs)
		} else {
			m.insertAll([]Contig{c1, c2})
		}
		return
	}

	// Neutral branch.
	forward := m.rng.Intn(2) == 0
	outputs := dcj(c1, h1.Offset, c2, h2.Offset, sameLeaf, forward)
	m.llCount++
	m.insertAll(outputs)
}

// ldEvent is the live-dead handler: one sampled contig must be live and
// the other dead, or the draw is a no-op. The DCJ result inherits dead
// status per §4.D.6.
func (m *Model) ldEvent() {
	if m.pool.Size() == 0 || m.pool.Weight() <= 1 {
		return
	}
	h1, h2 := m.drawSamples()
	c1, c2 := h1.Leaf.Contig(), h2.Leaf.Contig()
	if c1.IsDead() == c2.IsDead() {
		return
	}
	if c1.IsDead() {
		h1, h2 = h2, h1
		c1, c2 = c2, c1
	}

	rc1 := m.pool.Remove(h1.Leaf)
	rc2 := m.pool.Remove(h2.Leaf)
	forward := m.rng.Intn(2) == 0
	outputs := dcj(rc1, h1.Offset, rc2, h2.Offset, false, forward)
	outputs = m.assignDeadProportional(outputs)

	if len(outputs) == 1 {
		m.ldLossCount++
	} else {
		m.ldSwapCount++
	}
	m.insertAll(outputs)
}

// ddEvent is the dead-dead handler: both sampled adjacencies must name the
// same dead contig at distinct offsets, or the draw is a no-op. forward is
// drawn so that the event spawns a live piece with probability pgain
// (forward=false, two outputs) and otherwise just rearranges the dead
// contig (forward=true, one output), per §4.D.7.
func (m *Model) ddEvent() {
	if m.pool.Size() == 0 || m.pool.Weight() <= 1 {
		return
	}
	h1, h2 := m.drawSamples()
	c1, c2 := h1.Leaf.Contig(), h2.Leaf.Contig()
	if !c1.IsDead() || !c2.IsDead() || h1.Leaf != h2.Leaf {
		return
	}
	if h1.Offset == h2.Offset {
		return
	}

	c1 = m.pool.Remove(h1.Leaf)
	forward := m.rng.Float64() > m.params.Pgain
	outputs := dcj(c1, h1.Offset, c1, h2.Offset, true, forward)

	if forward {
		precondition(len(outputs) == 1, "ddEvent: forward dcj must yield one output, got %d", len(outputs))
	} else {
		precondition(len(outputs) == 2, "ddEvent: non-forward dcj must yield two outputs, got %d", len(outputs))
	}
	outputs = m.assignDeadProportional(outputs)

	if forward {
		m.ddSwapCount++
	} else {
		m.ddGainCount++
	}
	m.insertAll(outputs)
}
