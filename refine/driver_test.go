package refine

import (
	"errors"
	"math"
	"testing"

	"github.com/unixpickle/meshrefine/assoc"
	"github.com/unixpickle/meshrefine/geomkernel"
	"github.com/unixpickle/meshrefine/mesh"
	"github.com/unixpickle/meshrefine/quality"
)

// slenderStore builds two right-isoceles triangles sharing edge {0,1},
// each with a hypotenuse long enough (relative to its legs) to exceed
// a tight aspect-ratio constraint on the hypotenuse edges only.
func slenderStore(t *testing.T) *mesh.Store {
	t.Helper()
	s := mesh.NewStore()
	s.Points = []mesh.Point{mesh.Pt(0, 0, 0), mesh.Pt(1, 0, 0), mesh.Pt(0, 1, 0), mesh.Pt(1, 1, 0)}
	s.Faces = []mesh.Face{
		mesh.NewTriangle(0, 1, 2),
		mesh.NewTriangle(1, 0, 3),
	}
	s.MinAllowedEdgeLength = 0
	s.MaxAllowedTriAspectRatio = 1.3
	s.SetMinIncludedAngle(0)
	return s
}

func TestRunSplitsForceSplitEdges(t *testing.T) {
	s := slenderStore(t)
	d := &Driver{
		Store:      s,
		Model:      assoc.NewRegistry(),
		Threshold:  quality.PreventSplit,
		PassBudget: 1,
	}
	res, err := d.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Passes != 1 {
		t.Errorf("expected 1 pass, got %d", res.Passes)
	}
	if res.Splits < 2 {
		t.Fatalf("expected at least 2 force-split hypotenuse edges, got %d", res.Splits)
	}
	if errs := s.CheckEdges(); len(errs) != 0 {
		t.Errorf("CheckEdges found violations after refinement: %v", errs)
	}
	if errs := s.CheckFaces(); len(errs) != 0 {
		t.Errorf("CheckFaces found violations after refinement: %v", errs)
	}
}

func TestRunProducesNoSplitsAboveAllPossibleQuality(t *testing.T) {
	s := slenderStore(t)
	d := &Driver{
		Store:      s,
		Model:      assoc.NewRegistry(),
		Threshold:  quality.ForceSplit + 1,
		PassBudget: 3,
	}
	res, err := d.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Splits != 0 {
		t.Errorf("expected zero splits with an unreachable threshold, got %d", res.Splits)
	}
	if len(s.Faces) != 2 {
		t.Errorf("expected the mesh to be untouched, got %d faces", len(s.Faces))
	}
}

func TestRunStopsEarlyWhenAPassMakesNoSplits(t *testing.T) {
	s := mesh.NewStore()
	s.Points = []mesh.Point{mesh.Pt(0, 0, 0), mesh.Pt(1, 0, 0), mesh.Pt(0, 1, 0)}
	s.Faces = []mesh.Face{mesh.NewTriangle(0, 1, 2)}
	s.MinAllowedEdgeLength = 10
	s.MaxAllowedTriAspectRatio = 1e6
	s.SetMinIncludedAngle(0)

	d := &Driver{
		Store:      s,
		Model:      assoc.NewRegistry(),
		Threshold:  quality.PreventSplit,
		PassBudget: 5,
	}
	res, err := d.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Passes != 1 {
		t.Errorf("expected the loop to stop after the first dry pass, got %d passes", res.Passes)
	}
	if res.Splits != 0 {
		t.Errorf("expected zero splits when every edge is below the short-edge floor, got %d", res.Splits)
	}
}

func TestComputeStatisticsCountsCurvatureConstrainedEdges(t *testing.T) {
	g := geomkernel.SphereGroup{Entity: "s0", Center: mesh.Pt(0, 0, 0), Radius: 5}
	k := geomkernel.NewSphereKernel(g)
	model := assoc.NewRegistry()
	sheet := model.AddSheet("skin")

	s := mesh.NewStore()
	s.Points = []mesh.Point{mesh.Pt(5, 0, 0), mesh.Pt(0, 5, 0), mesh.Pt(0, 0, 5)}
	s.Faces = []mesh.Face{mesh.NewTriangle(0, 1, 2)}
	s.MinAllowedEdgeLength = 0
	if err := s.CreateEdges(); err != nil {
		t.Fatal(err)
	}
	for _, pair := range [][2]int{{1, 2}, {2, 3}, {3, 1}} {
		sheet.AddFaceEdge(pair[0], pair[1], assoc.AddParams{ID: "e", Gref: "g0"})
	}

	scorer := &quality.Scorer{
		Store:   s,
		Model:   model,
		Kernel:  k,
		Resolve: func(gr assoc.Gref) (geomkernel.Group, bool) { return g, gr == "g0" },
	}
	stats := ComputeStatistics(s, scorer)
	if stats.NumFaces != 1 || stats.NumEdges != 3 {
		t.Fatalf("expected 1 face / 3 edges, got %d/%d", stats.NumFaces, stats.NumEdges)
	}
	if stats.NumConstrainedEdges != 3 {
		t.Errorf("expected all 3 edges to be curvature constrained on a radius-5 sphere, got %d", stats.NumConstrainedEdges)
	}
	if stats.MaxCurveSpanDeg <= 0 {
		t.Errorf("expected a positive max curve span, got %v", stats.MaxCurveSpanDeg)
	}
	if math.Abs(stats.MaxCurveSpanRadius-5) > 1e-6 {
		t.Errorf("expected max-span edge radius 5, got %v", stats.MaxCurveSpanRadius)
	}
}

// failingKernel always fails to project, so any edge whose associativity
// record resolves a group forces a non-fatal midpoint-projection failure
// in Splitter.Split.
type failingKernel struct{}

func (failingKernel) ProjectPoint(group geomkernel.Group, xyz mesh.Point) (geomkernel.ProjectionData, error) {
	return nil, errFailingProjection
}
func (failingKernel) ProjectionXYZ(p geomkernel.ProjectionData) mesh.Point     { return mesh.Point{} }
func (failingKernel) ProjectionUV(p geomkernel.ProjectionData) (u, v float64)  { return 0, 0 }
func (failingKernel) ProjectionEntityName(p geomkernel.ProjectionData) string  { return "" }
func (failingKernel) EvalRadiusOfCurvature(u, v float64, entityName string) (float64, float64, error) {
	return 1, 1, nil
}

var errFailingProjection = errors.New("refine test: projection always fails")

func TestRunSkipsEdgeOnProjectionFailureInsteadOfAborting(t *testing.T) {
	s := slenderStore(t)
	model := assoc.NewRegistry()
	model.AddEdge(2, 3, assoc.AddParams{ID: "e23", Gref: "g0"})

	d := &Driver{
		Store:      s,
		Model:      model,
		Kernel:     failingKernel{},
		Resolve:    func(g assoc.Gref) (geomkernel.Group, bool) { return struct{}{}, g == "g0" },
		Threshold:  quality.PreventSplit,
		PassBudget: 1,
	}
	res, err := d.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Passes != 1 {
		t.Errorf("expected the run to complete its one pass, got %d passes", res.Passes)
	}
	if errs := s.CheckEdges(); len(errs) != 0 {
		t.Errorf("CheckEdges found violations after refinement: %v", errs)
	}
	if errs := s.CheckFaces(); len(errs) != 0 {
		t.Errorf("CheckFaces found violations after refinement: %v", errs)
	}
}
