// Package quality scores how urgently a mesh edge should be split,
// mixing mesh-shape constraints (aspect ratio, included angle, a
// minimum-length floor) with geometry-curvature subtension sampled
// through package geomkernel. Higher scores are more urgent; the
// queue package interprets the score as a priority.
package quality

import (
	"math"

	"github.com/unixpickle/meshrefine/assoc"
	"github.com/unixpickle/meshrefine/geomkernel"
	"github.com/unixpickle/meshrefine/mesh"
)

// PreventSplit and ForceSplit are the two sentinel quality scores:
// an edge too short to usefully split, and an edge whose shape
// violates a hard mesh constraint and must split regardless of
// curvature.
const (
	PreventSplit = 0
	ForceSplit   = 1e9
)

// Numeric tolerances from the shape heuristic (§4.4), named rather
// than inlined since they are part of the scoring contract, not
// tuning knobs.
const (
	shortEdgeFactor        = 1.5 // L < shortEdgeFactor * minAllowedEdgeLength -> PreventSplit
	longEdgeFactor         = 0.8 // L must exceed longEdgeFactor * maxEdge to trigger AR/angle rules
	aspectRatioForceCutoff = 3.0 // the included-angle rule applies only when AR is below this
)

// Scorer computes edge quality scores against a mesh store, an
// associativity, and a geometry kernel.
type Scorer struct {
	Store     *mesh.Store
	Model     assoc.MeshModel
	Kernel    geomkernel.Kernel
	Resolve   assoc.GroupResolver
	Curvature geomkernel.EdgeCurvatureConfig
}

// ComputeQuality scores the edge e (whose endpoints are e.N0, e.N1)
// per §4.4's ordered rule list:
//  1. too short to split -> PreventSplit
//  2. aspect-ratio or included-angle shape violation -> ForceSplit
//  3. otherwise, curvature subtension: 360*L/(2*pi*R)
func (s *Scorer) ComputeQuality(e mesh.Edge) float64 {
	p0 := s.Store.Points[e.N0]
	p1 := s.Store.Points[e.N1]
	l := p0.Dist(p1)

	if l < shortEdgeFactor*s.Store.MinAllowedEdgeLength {
		return PreventSplit
	}

	if q, forced := s.shapeForceSplit(e, l); forced {
		return q
	}

	r := s.computeEdgeMinRadiusOfCurvature(e)
	if r <= 0 {
		return PreventSplit
	}
	return 360 * l / (2 * math.Pi * r)
}

// shapeForceSplit implements rule 2: examine every adjacent
// triangle's aspect ratio and minimum included angle.
func (s *Scorer) shapeForceSplit(e mesh.Edge, l float64) (quality float64, forced bool) {
	for _, fi := range []int{e.F0, e.F1} {
		if fi == mesh.NoFace {
			continue
		}
		f := s.Store.Faces[fi]
		e01, e12, e20 := s.Store.TriangleEdgeLengths(f)
		minEdge := math.Min(e01, math.Min(e12, e20))
		maxEdge := math.Max(e01, math.Max(e12, e20))
		if minEdge <= 0 {
			continue
		}
		ar := maxEdge / minEdge
		if l <= longEdgeFactor*maxEdge {
			continue
		}
		if ar > s.Store.MaxAllowedTriAspectRatio {
			return ForceSplit, true
		}
		if ar < aspectRatioForceCutoff {
			if triangleMinAngleCosine(e01, e12, e20) > s.Store.MinIncludedAngleCosine() {
				return ForceSplit, true
			}
		}
	}
	return 0, false
}

// triangleMinAngleCosine returns the largest of the three vertex
// angle cosines of a triangle with the given side lengths, i.e. the
// cosine of its minimum included angle.
func triangleMinAngleCosine(a, b, c float64) float64 {
	cosA := angleCosine(b, c, a)
	cosB := angleCosine(a, c, b)
	cosC := angleCosine(a, b, c)
	return math.Max(cosA, math.Max(cosB, cosC))
}

// angleCosine returns the cosine of the angle opposite side `opp` in
// a triangle with the other two sides `s1`, `s2`, via the law of
// cosines.
func angleCosine(s1, s2, opp float64) float64 {
	if s1 <= 0 || s2 <= 0 {
		return 1
	}
	cos := (s1*s1 + s2*s2 - opp*opp) / (2 * s1 * s2)
	if cos > 1 {
		return 1
	}
	if cos < -1 {
		return -1
	}
	return cos
}

// EdgeMinRadiusOfCurvature exports the same associativity-walk
// curvature sample ComputeQuality uses internally, for callers (such
// as diagnostic reporting) that need the raw radius rather than a
// derived quality score. ok is false when no sheet's group resolved
// or no sample succeeded.
func (s *Scorer) EdgeMinRadiusOfCurvature(e mesh.Edge) (radius float64, ok bool) {
	r := s.computeEdgeMinRadiusOfCurvature(e)
	return r, r > 0
}

// computeEdgeMinRadiusOfCurvature implements §4.4's associativity
// walk: every MeshSheet holding a face-edge record for the 1-based
// pair (n0+1, n1+1), grouped by Gref, minimized over
// geomkernel.EdgeMinRadiusOfCurvature per distinct group. Returns 0
// if no sheet's group resolves or no sample succeeds, which
// ComputeQuality treats as PreventSplit (an edge whose curvature
// cannot be assessed is not forced to split).
func (s *Scorer) computeEdgeMinRadiusOfCurvature(e mesh.Edge) float64 {
	if s.Model == nil || s.Kernel == nil || s.Resolve == nil {
		return 0
	}
	p0 := s.Store.Points[e.N0]
	p1 := s.Store.Points[e.N1]

	seen := map[assoc.Gref]bool{}
	best := 0.0
	first := true
	for _, sheet := range s.Model.GetMeshSheetsForFaceEdge(e.N0+1, e.N1+1) {
		rec, ok := sheet.FindFaceEdgeByInds(e.N0+1, e.N1+1)
		if !ok || seen[rec.Gref] {
			continue
		}
		seen[rec.Gref] = true
		group, ok := s.Resolve(rec.Gref)
		if !ok {
			continue
		}
		r, err := geomkernel.EdgeMinRadiusOfCurvature(s.Kernel, group, p0, p1, nil, nil, s.Curvature)
		if err != nil {
			continue
		}
		if first || r < best {
			best = r
			first = false
		}
	}
	return best
}
