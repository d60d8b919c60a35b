package contigsim

import "testing"

// TestDCJLinearSameForward mirrors original_source/tests/dcjTests.py's
// same-contig, different-offset, forward case: cutting and rejoining a
// single linear contig at two distinct positions yields one linear contig
// of the same total size.
func TestDCJLinearSameForward(t *testing.T) {
	c := NewLinearContig(10)
	out := dcj(c, 2, c, 6, true, true)
	if len(out) != 1 {
		t.Fatalf("same-contig forward dcj: got %d outputs, want 1", len(out))
	}
	if out[0].Size() != 10 {
		t.Errorf("same-contig forward dcj size = %d, want 10", out[0].Size())
	}
}

// TestDCJLinearSameNotForward mirrors the fission case: cutting the same
// contig at two positions without rejoining splits it into a linear piece
// and a circular piece.
func TestDCJLinearSameNotForward(t *testing.T) {
	c := NewLinearContig(10)
	out := dcj(c, 2, c, 6, true, false)
	if len(out) != 2 {
		t.Fatalf("same-contig non-forward dcj: got %d outputs, want 2", len(out))
	}
	total := 0
	for _, o := range out {
		total += o.Size()
	}
	if total != 10 {
		t.Errorf("same-contig non-forward dcj total size = %d, want 10", total)
	}
}

// TestDCJLinearSameEqualOffsetForward exercises the equal-offset gain
// branch: a stub split at one edge produces two telomere-capped pieces.
func TestDCJLinearSameEqualOffsetForward(t *testing.T) {
	c := NewLinearContig(10)
	out := dcj(c, 1, c, 1, true, true)
	if len(out) != 2 {
		t.Fatalf("equal-offset forward dcj: got %d outputs, want 2", len(out))
	}
	if out[0].Size() != 2 || out[1].Size() != 9 {
		t.Errorf("equal-offset forward dcj = (%d,%d), want (2,9)", out[0].Size(), out[1].Size())
	}
}

// TestDCJLinearSameEqualOffsetNotForward is the equal-offset no-op case.
func TestDCJLinearSameEqualOffsetNotForward(t *testing.T) {
	c := NewLinearContig(10)
	out := dcj(c, 1, c, 1, true, false)
	if len(out) != 1 || out[0].Size() != 10 {
		t.Fatalf("equal-offset non-forward dcj = %v, want single Linear(10)", out)
	}
}

// TestDCJCircularSameNotForward mirrors the circular fission scenario.
func TestDCJCircularSameNotForward(t *testing.T) {
	c := NewCircularContig(10)
	out := dcj(c, 2, c, 9, true, false)
	if len(out) != 2 {
		t.Fatalf("circular-same non-forward dcj: got %d outputs, want 2", len(out))
	}
	sizes := map[int]bool{out[0].Size(): true, out[1].Size(): true}
	if !sizes[7] || !sizes[3] {
		t.Errorf("circular-same non-forward dcj sizes = %v, want {7,3}", sizes)
	}
}

// TestDCJCircularCircularJoin mirrors Circular(33).join(Circular(15)).
func TestDCJCircularCircularJoin(t *testing.T) {
	c1, c2 := NewCircularContig(33), NewCircularContig(15)
	out := dcj(c1, 2, c2, 9, false, true)
	if len(out) != 1 || out[0].Size() != 48 {
		t.Fatalf("circular-circular join dcj = %v, want single Circular(48)", out)
	}
	if !out[0].IsCircular() {
		t.Errorf("circular-circular join dcj output is not circular")
	}
}

// TestDCJLinearCircularSwap covers both directions of the implicit
// circular-linear swap case producing a single linear contig.
func TestDCJLinearCircularSwap(t *testing.T) {
	lin := NewLinearContig(5)
	circ := NewCircularContig(10)

	out1 := dcj(lin, 2, circ, 3, false, true)
	if len(out1) != 1 || !out1[0].IsLinear() {
		t.Fatalf("linear-circular dcj = %v, want single linear contig", out1)
	}
	if out1[0].Size() != 15 {
		t.Errorf("linear-circular dcj size = %d, want 15", out1[0].Size())
	}

	out2 := dcj(circ, 3, lin, 2, false, true)
	if len(out2) != 1 || !out2[0].IsLinear() {
		t.Fatalf("circular-linear dcj = %v, want single linear contig", out2)
	}
	if out2[0].Size() != 15 {
		t.Errorf("circular-linear dcj size = %d, want 15", out2[0].Size())
	}
}

// TestDCJLinearLinearDifferentConservesEdges checks the general LL-
// different case conserves total edge count (minus the one edge consumed
// by each cut, plus the two introduced by the join).
func TestDCJLinearLinearDifferentConservesEdges(t *testing.T) {
	c1, c2 := NewLinearContig(6), NewLinearContig(4)
	out := dcj(c1, 2, c2, 1, false, true)
	total := 0
	for _, o := range out {
		total += o.Size()
	}
	if total != c1.Size()+c2.Size() {
		t.Errorf("LL-different dcj total size = %d, want %d", total, c1.Size()+c2.Size())
	}
}
