// Package mesh implements the in-memory triangular surface mesh: the
// point/edge/face arrays, the hash-based edge lookup, and the small
// set of topology operations (orientation, clocking) that the
// refinement transform in package splitop builds on.
package mesh

import "math"

// Point is a 3-vector of real coordinates. It carries no identity
// beyond its position in a Store's Points slice.
type Point struct {
	X, Y, Z float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns p+other.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y, p.Z + other.Z}
}

// Sub returns p-other.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Dot returns the dot product of p and other.
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y + p.Z*other.Z
}

// Cross returns the cross product p x other.
func (p Point) Cross(other Point) Point {
	return Point{
		p.Y*other.Z - p.Z*other.Y,
		p.Z*other.X - p.X*other.Z,
		p.X*other.Y - p.Y*other.X,
	}
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Dist returns the Euclidean distance between p and other.
func (p Point) Dist(other Point) float64 {
	return p.Sub(other).Norm()
}

// Mid returns the midpoint of p and other.
func (p Point) Mid(other Point) Point {
	return p.Add(other).Scale(0.5)
}
