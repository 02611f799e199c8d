package geomkernel

import (
	"github.com/pkg/errors"

	"github.com/unixpickle/meshrefine/mesh"
)

// ProjectToGroup projects xyz onto group via kernel and returns the
// projected point, its entity name, and the minimum principal radius
// of curvature at the projection. A projection failure is wrapped
// with context and returned; per §4.5.3 this must abort a split
// before any mesh mutation occurs.
func ProjectToGroup(kernel Kernel, group Group, xyz mesh.Point) (proj mesh.Point, entity string, minR float64, err error) {
	data, err := kernel.ProjectPoint(group, xyz)
	if err != nil {
		return mesh.Point{}, "", 0, errors.Wrap(err, "geomkernel: project point")
	}
	proj = kernel.ProjectionXYZ(data)
	u, v := kernel.ProjectionUV(data)
	entity = kernel.ProjectionEntityName(data)
	minR, _, err = kernel.EvalRadiusOfCurvature(u, v, entity)
	if err != nil {
		return mesh.Point{}, "", 0, errors.Wrap(err, "geomkernel: eval radius of curvature")
	}
	return proj, entity, minR, nil
}

// EdgeMinRadiusOfCurvature samples the minimum principal radius of
// curvature at three interior points along the edge (p0, p1),
// w in {0.25, 0.5, 0.75}, and returns the smallest radius seen across
// whichever samples succeed (§4.4's curvature scoring uses this as
// the edge's characteristic radius). A sample that fails to project
// or evaluate is skipped, not fatal; only when all three samples fail
// does this return an error. cfg.InterpolateUVForSharedEntity, when
// true and both endpoints carry a ParamVert on the same entity,
// instead interpolates UV linearly at each sample and evaluates
// curvature directly, skipping re-projection; it is off by default
// (see EdgeCurvatureConfig).
func EdgeMinRadiusOfCurvature(kernel Kernel, group Group, p0, p1 mesh.Point, pv0, pv1 *ParamVert, cfg EdgeCurvatureConfig) (float64, error) {
	if cfg.InterpolateUVForSharedEntity && pv0 != nil && pv1 != nil && pv0.Entity == pv1.Entity && pv0.Entity != "" {
		best := 0.0
		first := true
		for _, w := range sampleWeights {
			u := pv0.U + w*(pv1.U-pv0.U)
			v := pv0.V + w*(pv1.V-pv0.V)
			r, _, err := kernel.EvalRadiusOfCurvature(u, v, pv0.Entity)
			if err != nil {
				continue
			}
			if first || r < best {
				best = r
				first = false
			}
		}
		if first {
			return 0, errors.New("geomkernel: eval radius of curvature (interpolated): no sample succeeded")
		}
		return best, nil
	}

	best := 0.0
	first := true
	for _, w := range sampleWeights {
		mid := mesh.Pt(
			p0.X+w*(p1.X-p0.X),
			p0.Y+w*(p1.Y-p0.Y),
			p0.Z+w*(p1.Z-p0.Z),
		)
		_, _, r, err := ProjectToGroup(kernel, group, mid)
		if err != nil {
			continue
		}
		if first || r < best {
			best = r
			first = false
		}
	}
	if first {
		return 0, errors.New("geomkernel: curvature sampling: no sample succeeded")
	}
	return best, nil
}

// sampleWeights are the three interior sample points along an edge
// used by EdgeMinRadiusOfCurvature (§4.4).
var sampleWeights = [3]float64{0.25, 0.5, 0.75}
