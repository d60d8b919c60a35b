/**
 * Filename: eventqueue.go
 * Path: github.com/glennhickey/contigSim
 *
 * Copyright (c) 2024 Glenn Hickey
 */

package contigsim

import (
	"math/rand"
	"sort"

	"github.com/emirpasic/gods/trees/binaryheap"
	"gonum.org/v1/gonum/stat/distuv"
)

// eventQueueItem is a scheduled (fire_time, kind) pair.
type eventQueueItem struct {
	fireTime float64
	kind     string
}

func eventQueueComparator(a, b interface{}) int {
	ai, bi := a.(eventQueueItem), b.(eventQueueItem)
	switch {
	case ai.fireTime < bi.fireTime:
		return -1
	case ai.fireTime > bi.fireTime:
		return 1
	default:
		return 0
	}
}

// EventQueue is a min-heap of (fire_time, kind) pairs driving a Gillespie-
// style exponential race between event kinds. Exactly one entry per
// registered kind is live at any time; on fire it is popped and
// immediately re-pushed with a fresh exponential draw.
type EventQueue struct {
	heap  *binaryheap.Heap
	rates map[string]float64
	time  float64
	rng   *rand.Rand
}

// NewEventQueue constructs an empty queue. rng is shared with the owning
// Model so that every stochastic draw in a simulation run traces back to
// one seed.
func NewEventQueue(rng *rand.Rand) *EventQueue {
	return &EventQueue{
		heap:  binaryheap.NewWith(eventQueueComparator),
		rates: make(map[string]float64),
		rng:   rng,
	}
}

// AddEventType registers a kind with an exponential rate. Only kinds with
// rate > 0 should be registered — the Model filters these before calling
// in.
func (q *EventQueue) AddEventType(kind string, rate float64) {
	precondition(rate > 0, "event queue: rate for %q must be > 0, got %v", kind, rate)
	q.rates[kind] = rate
}

// Reset clears every registered kind and the heap, returning the queue to
// its zero state.
func (q *EventQueue) Reset() {
	q.time = 0
	q.rates = make(map[string]float64)
	q.heap.Clear()
}

// Begin starts the race at time=0: one entry per registered kind is
// scheduled with an independent Exp(rate) draw.
func (q *EventQueue) Begin() {
	q.time = 0
	q.heap.Clear()
	// Draw in sorted kind order so a seeded rng yields the same schedule on
	// every run (map iteration order is random).
	kinds := make([]string, 0, len(q.rates))
	for kind := range q.rates {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		delta := distuv.Exponential{Rate: q.rates[kind], Src: q.rng}.Rand()
		q.heap.Push(eventQueueItem{fireTime: delta, kind: kind})
	}
}

// Time returns the current simulation clock.
func (q *EventQueue) Time() float64 { return q.time }

// Next advances the clock to the next event and returns its kind. If the
// next fire time exceeds maxTime, the clock is pinned to maxTime and ok is
// false. If the heap is empty, ok is false and the clock is left as it is.
func (q *EventQueue) Next(maxTime float64) (kind string, ok bool) {
	item, exists := q.heap.Pop()
	if !exists {
		return "", false
	}
	fired := item.(eventQueueItem)

	if fired.fireTime > maxTime {
		q.time = maxTime
		return "", false
	}
	q.time = fired.fireTime
	delta := distuv.Exponential{Rate: q.rates[fired.kind], Src: q.rng}.Rand()
	q.heap.Push(eventQueueItem{fireTime: q.time + delta, kind: fired.kind})
	return fired.kind, true
}
