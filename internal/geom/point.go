// Package geom provides the coordinate, vertex and curve primitives that
// the area-pocketing core is built from: points, axis-aligned boxes, and
// curves made of straight and circular-arc segments.
package geom

import "math"

// Point is a 2D coordinate in user units.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Scale returns p scaled by s about the origin.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Rotated returns p rotated counter-clockwise by the angle whose sine and
// cosine are given, about the origin.
func (p Point) Rotated(sin, cos float64) Point {
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// Near reports whether p and q coincide within tol.
func (p Point) Near(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) < tol && math.Abs(p.Y-q.Y) < tol
}

// NearY reports whether p.Y equals y within tol.
func (p Point) NearY(y, tol float64) bool {
	return math.Abs(p.Y-y) < tol
}
