// Package geomkernel defines the geometry-kernel interface the core
// refinement engine consumes (§6), and the thin GeomBridge adapters
// over it (§4.3): projecting a point onto a geometry group, and
// sampling curvature along a mesh edge.
//
// The kernel itself — parametric evaluation, point projection,
// principal-curvature evaluation — is an external collaborator (§1);
// this package only describes the shape of that collaborator and
// hosts a small analytic reference implementation used by tests.
package geomkernel

import "github.com/unixpickle/meshrefine/mesh"

// Group is an opaque handle to a geometry group, as resolved by the
// associativity from a Gref tag. The core never inspects a Group's
// contents; it only ever hands one back to the Kernel that produced
// it.
type Group interface{}

// ProjectionData is an opaque result of a single ProjectPoint call.
// Like Group, the core never inspects it directly; it extracts
// values via ProjectionXYZ/ProjectionUV/ProjectionEntityName.
type ProjectionData interface{}

// Kernel is the set of geometry-kernel operations the core requires
// (§6). A real implementation wraps a CAD/B-rep evaluator; the
// reference SphereKernel in this package is an analytic stand-in
// used for tests and the curvature-law property check.
type Kernel interface {
	// ProjectPoint projects xyz onto group, returning an opaque
	// result or an error if the group is unknown or the projection
	// fails.
	ProjectPoint(group Group, xyz mesh.Point) (ProjectionData, error)

	// ProjectionXYZ returns the projected 3-point for a result of
	// ProjectPoint.
	ProjectionXYZ(p ProjectionData) mesh.Point

	// ProjectionUV returns the parametric coordinates of a
	// projection on its entity.
	ProjectionUV(p ProjectionData) (u, v float64)

	// ProjectionEntityName names the geometry entity (face, surface,
	// patch...) the projection landed on.
	ProjectionEntityName(p ProjectionData) string

	// EvalRadiusOfCurvature evaluates the principal radii of
	// curvature at (u, v) on the named entity.
	EvalRadiusOfCurvature(u, v float64, entityName string) (minR, maxR float64, err error)
}

// ParamVert enriches a mesh vertex with parametric UV coordinates on
// a named geometry entity. Used by the (disabled-by-default)
// UV-interpolation short-circuit in EdgeMinRadiusOfCurvature; see
// EdgeCurvatureConfig.
type ParamVert struct {
	U, V   float64
	Entity string
}

// EdgeCurvatureConfig toggles the UV-interpolation short-circuit
// described in §4.3/§9: when both mesh-edge endpoints carry
// ParamVerts bound to the same geometry entity, the sampler may
// interpolate UV linearly instead of projecting each sample. In the
// original source this branch was gated by a literal `if (0 && ...)`
// and was therefore always disabled; per §9 this implementation does
// not guess that the author intended it enabled, and instead exposes
// it behind this explicit, default-off switch.
type EdgeCurvatureConfig struct {
	InterpolateUVForSharedEntity bool
}
