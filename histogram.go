/**
 * Filename: histogram.go
 * Path: github.com/glennhickey/contigSim
 *
 * Copyright (c) 2024 Glenn Hickey
 */

package contigsim

// Filter selects which contigs contribute to a histogram.
type Filter func(Contig) bool

// Standard filters exposed by the core, matching the categories in §6 of
// the design.
var (
	FilterAll            Filter = func(c Contig) bool { return true }
	FilterDead           Filter = func(c Contig) bool { return c.IsDead() }
	FilterAlive          Filter = func(c Contig) bool { return !c.IsDead() }
	FilterAliveLinear    Filter = func(c Contig) bool { return !c.IsDead() && c.IsLinear() }
	FilterAliveCircular  Filter = func(c Contig) bool { return !c.IsDead() && c.IsCircular() }
	FilterDeadLinear     Filter = func(c Contig) bool { return c.IsDead() && c.IsLinear() }
	FilterDeadCircular   Filter = func(c Contig) bool { return c.IsDead() && c.IsCircular() }
)

// Histogram folds the leaves matching filter into bin -> count, where
// bin = leaf.weight / binSize (integer division).
func (t *SampleTree) Histogram(binSize int, filter Filter) map[int]int {
	precondition(binSize > 0, "histogram: binSize must be > 0, got %d", binSize)
	if filter == nil {
		filter = FilterAll
	}
	hist := make(map[int]int)
	t.Nodes(func(n *SampleTreeNode) {
		if !n.IsLeaf() || !filter(n.data) {
			return
		}
		bin := n.weight / binSize
		hist[bin]++
	})
	return hist
}
