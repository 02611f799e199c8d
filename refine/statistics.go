package refine

import (
	"math"

	"github.com/unixpickle/meshrefine/mesh"
	"github.com/unixpickle/meshrefine/quality"
)

// curvatureConstraintRadiusCutoff bounds which edges count as
// curvature-constrained for Statistics: an edge whose minimum radius
// of curvature is at or above this is considered to be on a
// near-flat region, not meaningfully limited by curvature.
const curvatureConstraintRadiusCutoff = 1e2

// edgeLengthThreshFactor mirrors quality's shortEdgeFactor: an edge at
// or below this multiple of the mesh's minimum allowed length is
// excluded from the curvature-span accounting. ComputeQuality uses the
// same factor as its short-edge floor but excludes only edges strictly
// below it.
const edgeLengthThreshFactor = 1.5

// Statistics summarizes the geometric resolution of a mesh at the end
// of a refinement run: how many edges are meaningfully curvature
// constrained, and how much arc each such edge subtends.
type Statistics struct {
	NumFaces int
	NumEdges int

	NumConstrainedEdges int
	AvgCurveSpanDeg     float64
	MaxCurveSpanDeg     float64

	MaxCurveSpanEdge    [2]mesh.Point
	MaxCurveSpanEdgeLen float64
	MaxCurveSpanRadius  float64
}

// ComputeStatistics reports on how well store's current edges resolve
// the geometry scorer samples. An edge below the short-edge floor is
// skipped (it was never a candidate for curvature scoring); of the
// rest, those whose sampled minimum radius of curvature is under
// curvatureConstraintRadiusCutoff are counted as curvature
// constrained, and their subtended arc (in degrees, the same
// 360*L/(2*pi*R) law ComputeQuality uses) is tracked for its average
// and worst case.
func ComputeStatistics(store *mesh.Store, scorer *quality.Scorer) Statistics {
	stats := Statistics{NumFaces: len(store.Faces), NumEdges: len(store.Edges)}

	thresh := edgeLengthThreshFactor * store.MinAllowedEdgeLength
	var totalSpan float64
	for _, e := range store.Edges {
		p0, p1 := store.Points[e.N0], store.Points[e.N1]
		length := p0.Dist(p1)
		if length <= thresh {
			continue
		}
		radius, ok := scorer.EdgeMinRadiusOfCurvature(e)
		if !ok || radius >= curvatureConstraintRadiusCutoff {
			continue
		}
		span := 360 * length / (2 * math.Pi * radius)
		stats.NumConstrainedEdges++
		totalSpan += span
		if span > stats.MaxCurveSpanDeg {
			stats.MaxCurveSpanDeg = span
			stats.MaxCurveSpanEdge = [2]mesh.Point{p0, p1}
			stats.MaxCurveSpanEdgeLen = length
			stats.MaxCurveSpanRadius = radius
		}
	}
	if stats.NumConstrainedEdges > 0 {
		stats.AvgCurveSpanDeg = totalSpan / float64(stats.NumConstrainedEdges)
	}
	return stats
}
