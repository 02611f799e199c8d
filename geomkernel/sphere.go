package geomkernel

import (
	"math"

	"github.com/pkg/errors"

	"github.com/unixpickle/meshrefine/mesh"
)

// SphereGroup names a single spherical entity, for use as a Group
// handle with SphereKernel.
type SphereGroup struct {
	Entity string
	Center mesh.Point
	Radius float64
}

// sphereProjection is the ProjectionData SphereKernel produces.
type sphereProjection struct {
	xyz    mesh.Point
	u, v   float64
	entity string
}

// SphereKernel is an analytic Kernel over one or more spheres,
// addressed by group. It exists for tests and for the curvature-law
// property check: every point on a sphere of radius R has both
// principal radii equal to R, independent of (u, v).
type SphereKernel struct {
	Groups map[string]SphereGroup
}

// NewSphereKernel builds a SphereKernel from a list of groups, keyed
// by their Entity name.
func NewSphereKernel(groups ...SphereGroup) *SphereKernel {
	k := &SphereKernel{Groups: map[string]SphereGroup{}}
	for _, g := range groups {
		k.Groups[g.Entity] = g
	}
	return k
}

func (k *SphereKernel) ProjectPoint(group Group, xyz mesh.Point) (ProjectionData, error) {
	g, ok := group.(SphereGroup)
	if !ok {
		return nil, errors.Errorf("geomkernel: SphereKernel requires a SphereGroup, got %T", group)
	}
	d := xyz.Sub(g.Center)
	n := d.Norm()
	if n == 0 {
		return nil, errors.Errorf("geomkernel: cannot project the sphere center onto entity %q", g.Entity)
	}
	proj := g.Center.Add(d.Scale(g.Radius / n))
	u := math.Atan2(d.Y, d.X)
	v := math.Asin(clamp(d.Z/n, -1, 1))
	return sphereProjection{xyz: proj, u: u, v: v, entity: g.Entity}, nil
}

func (k *SphereKernel) ProjectionXYZ(p ProjectionData) mesh.Point {
	return p.(sphereProjection).xyz
}

func (k *SphereKernel) ProjectionUV(p ProjectionData) (u, v float64) {
	sp := p.(sphereProjection)
	return sp.u, sp.v
}

func (k *SphereKernel) ProjectionEntityName(p ProjectionData) string {
	return p.(sphereProjection).entity
}

func (k *SphereKernel) EvalRadiusOfCurvature(u, v float64, entityName string) (minR, maxR float64, err error) {
	g, ok := k.Groups[entityName]
	if !ok {
		return 0, 0, errors.Errorf("geomkernel: unknown entity %q", entityName)
	}
	return g.Radius, g.Radius, nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
