// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// equalScale is the number of decimal places kept by Point.Equal.
const equalScale = 3

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point { return Point{X: x, Y: y} }

// IntPoint returns the point with integer coordinates (x, y).
func IntPoint(x, y int64) Point { return Point{X: float64(x), Y: float64(y)} }

func (p Point) vec() r2.Vec { return r2.Vec(p) }

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return r2.Norm(r2.Sub(p.vec(), q.vec()))
}

// LineTo returns the segment from p to q.
func (p Point) LineTo(q Point) Segment { return NewSegment(p, q) }

// Equal reports whether p and q coincide once both coordinates are
// truncated toward zero to three decimals.
func (p Point) Equal(q Point) bool {
	return truncKey(p.X) == truncKey(q.X) && truncKey(p.Y) == truncKey(q.Y)
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)",
		strconv.FormatFloat(p.X, 'f', -1, 64), strconv.FormatFloat(p.Y, 'f', -1, 64))
}

// truncKey returns v truncated toward zero to equalScale decimals, as a
// canonical string. Truncation works on the shortest decimal form of v so
// that literals such as 0.255 keep their last digit.
func truncKey(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	if intPart == "NaN" || strings.HasSuffix(intPart, "Inf") {
		return s
	}
	if len(frac) > equalScale {
		frac = frac[:equalScale]
	}
	frac += strings.Repeat("0", equalScale-len(frac))

	// -0.0004 truncates to zero, which carries no sign.
	if strings.TrimLeft(intPart, "-0") == "" && strings.Trim(frac, "0") == "" {
		return "0." + frac
	}

	return intPart + "." + frac
}
