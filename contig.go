/**
 * Filename: contig.go
 * Path: github.com/glennhickey/contigSim
 *
 * Copyright (c) 2024 Glenn Hickey
 */

package contigsim

import "fmt"

// Contig is an abstract DNA molecule parameterized only by topology and
// edge count (never base-level sequence). A contig can be decomposed into
// an alternating walk of bases and adjacency edges; only the number of
// adjacency edges is tracked, plus whether the walk is open (linear) or
// closed (circular). Linear contigs carry an extra edge for the implicit
// telomeres at each end. All operations return new values; none of them
// mutate the receiver.
type Contig interface {
	// Size is the number of adjacency edges (s).
	Size() int
	// NumBases is the live-base weight used for sampling.
	NumBases() int
	IsLinear() bool
	IsCircular() bool
	IsDead() bool
	// SetDead returns a copy of this contig with the dead flag set.
	SetDead(dead bool) Contig
	fmt.Stringer
}

// LinearContig is an open walk o-x-x-...-x-o with one telomere ('o') at
// each end. size counts the '-' edges, so numBases = size-1.
type LinearContig struct {
	size int
	dead bool
}

// NewLinearContig constructs a linear contig of the given edge count.
func NewLinearContig(size int) LinearContig {
	precondition(size >= 0, "linear contig size must be >= 0, got %d", size)
	return LinearContig{size: size}
}

func (c LinearContig) Size() int       { return c.size }
func (c LinearContig) IsLinear() bool   { return true }
func (c LinearContig) IsCircular() bool { return false }
func (c LinearContig) IsDead() bool     { return c.dead }

func (c LinearContig) SetDead(dead bool) Contig {
	c.dead = dead
	return c
}

// NumBases returns max(0, size-1): a telomere-capped contig of size <= 1
// has no interior bases.
func (c LinearContig) NumBases() int {
	if c.size <= 1 {
		return 0
	}
	return c.size - 1
}

func (c LinearContig) String() string {
	return fmt.Sprintf("Linear(size=%d,bases=%d,dead=%v)", c.size, c.NumBases(), c.dead)
}

// Cut removes the edge at position, splitting the contig into a left piece
// of `position` edges and a right piece of the remainder. The sum of
// output sizes is size-1, matching the one edge consumed.
func (c LinearContig) Cut(position int) (LinearContig, LinearContig) {
	precondition(position >= 0 && position < c.size, "cut position %d out of range for linear contig of size %d", position, c.size)
	return NewLinearContig(position), NewLinearContig(c.size - position - 1)
}

// Circularize joins the two telomeres into one new edge.
func (c LinearContig) Circularize() CircularContig {
	return NewCircularContig(c.size + 1)
}

// JoinToLeft sticks `other` to the left end of c, introducing one new
// edge. The forward flag records orientation for the caller's
// bookkeeping; it does not affect size.
func (c LinearContig) JoinToLeft(other LinearContig, forward bool) LinearContig {
	return NewLinearContig(c.size + other.size + 1)
}

// JoinToRight sticks `other` to the right end of c, introducing one new
// edge.
func (c LinearContig) JoinToRight(other LinearContig, forward bool) LinearContig {
	return NewLinearContig(c.size + other.size + 1)
}

// CircularContig is a closed walk of `size` edges (and `size` bases).
type CircularContig struct {
	size int
	dead bool
}

// NewCircularContig constructs a circular contig of the given edge count.
func NewCircularContig(size int) CircularContig {
	precondition(size >= 0, "circular contig size must be >= 0, got %d", size)
	return CircularContig{size: size}
}

func (c CircularContig) Size() int       { return c.size }
func (c CircularContig) NumBases() int   { return c.size }
func (c CircularContig) IsLinear() bool   { return false }
func (c CircularContig) IsCircular() bool { return true }
func (c CircularContig) IsDead() bool     { return c.dead }

func (c CircularContig) SetDead(dead bool) Contig {
	c.dead = dead
	return c
}

func (c CircularContig) String() string {
	return fmt.Sprintf("Circular(size=%d,dead=%v)", c.size, c.dead)
}

// Cut chops the circle into two circles at two distinct edges, p1 != p2.
// The outputs' sizes sum to size: size-|p1-p2| and |p1-p2|, in that order.
func (c CircularContig) Cut(p1, p2 int) (CircularContig, CircularContig) {
	precondition(p1 != p2, "circular cut requires two distinct positions, got %d twice", p1)
	precondition(p1 >= 0 && p1 < c.size && p2 >= 0 && p2 < c.size, "cut positions (%d,%d) out of range for circular contig of size %d", p1, p2, c.size)
	d := p1 - p2
	if d < 0 {
		d = -d
	}
	return NewCircularContig(c.size - d), NewCircularContig(d)
}

// Linearize removes the edge at position, opening the circle into a
// linear contig of size-1 with two fresh telomeres.
func (c CircularContig) Linearize(position int) LinearContig {
	precondition(position >= 0 && position < c.size, "linearize position %d out of range for circular contig of size %d", position, c.size)
	return NewLinearContig(c.size - 1)
}

// Join fuses two circles into one of size + other.size by replacing one
// edge in each with two cross-edges.
func (c CircularContig) Join(other CircularContig, p1, p2 int, forward bool) CircularContig {
	return NewCircularContig(c.size + other.size)
}
