// SPDX-License-Identifier: MIT

// Package geometry provides small immutable plane value objects: points,
// straight segments between them and axis-aligned rectangles.
//
// Points compare equal when both coordinates agree after truncation toward
// zero to three decimal places, so 0.2559 and 0.255 are the same point while
// 0.254 is not. Distances are Euclidean and computed with gonum's r2 vectors.
package geometry
