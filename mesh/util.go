package mesh

import "math"

func cosDegrees(deg float64) float64 {
	return math.Cos(deg * math.Pi / 180)
}

// TriangleEdgeLengths returns the three side lengths of the triangle
// (p0, p1, p2) in the order (p0p1, p1p2, p2p0).
func (s *Store) TriangleEdgeLengths(f Face) (e01, e12, e20 float64) {
	p0 := s.Points[f.Nodes[0]]
	p1 := s.Points[f.Nodes[1]]
	p2 := s.Points[f.Nodes[2]]
	return p0.Dist(p1), p1.Dist(p2), p2.Dist(p0)
}
