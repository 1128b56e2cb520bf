// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
)

// ErrNonPositiveSide is returned when a rectangle side length is <= 0.
var ErrNonPositiveSide = errors.New("geometry: side length should be a positive number")

// Rectangle is an axis-aligned rectangle described by its four corners,
// clockwise from the top-left one.
type Rectangle struct {
	topLeft, topRight, bottomRight, bottomLeft Point
}

// NewRectangle returns the rectangle of the given width (along X) and height
// (along Y) centred on center.
func NewRectangle(center Point, width, height int64) (Rectangle, error) {
	if width <= 0 || height <= 0 {
		return Rectangle{}, fmt.Errorf("NewRectangle: %dx%d: %w", width, height, ErrNonPositiveSide)
	}
	halfX := float64(width) / 2
	halfY := float64(height) / 2

	return Rectangle{
		topLeft:     Point{X: center.X - halfX, Y: center.Y + halfY},
		topRight:    Point{X: center.X + halfX, Y: center.Y + halfY},
		bottomRight: Point{X: center.X + halfX, Y: center.Y - halfY},
		bottomLeft:  Point{X: center.X - halfX, Y: center.Y - halfY},
	}, nil
}

// Corners returns the corners clockwise from the top-left one.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{r.topLeft, r.topRight, r.bottomRight, r.bottomLeft}
}

// Width returns the length of the horizontal sides.
func (r Rectangle) Width() float64 { return r.topLeft.DistanceTo(r.topRight) }

// Height returns the length of the vertical sides.
func (r Rectangle) Height() float64 { return r.topRight.DistanceTo(r.bottomRight) }

// Area returns Width * Height.
func (r Rectangle) Area() float64 { return r.Width() * r.Height() }
