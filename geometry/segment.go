// SPDX-License-Identifier: MIT

package geometry

import "gonum.org/v1/gonum/spatial/r2"

// Segment is the straight line between two points.
type Segment struct {
	A, B Point
}

// NewSegment returns the segment from a to b.
func NewSegment(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 { return s.A.DistanceTo(s.B) }

// Midpoint returns the point halfway between s.A and s.B.
func (s Segment) Midpoint() Point {
	return Point(r2.Scale(0.5, r2.Add(s.A.vec(), s.B.vec())))
}
