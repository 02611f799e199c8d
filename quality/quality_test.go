package quality

import (
	"math"
	"testing"

	"github.com/unixpickle/meshrefine/assoc"
	"github.com/unixpickle/meshrefine/geomkernel"
	"github.com/unixpickle/meshrefine/mesh"
)

// triangle10_10_1 builds a single triangle whose three sides are
// 10, 10 and 1 (an isoceles sliver), with the long edge e01.
func triangle10_10_1(t *testing.T) (*mesh.Store, mesh.Edge, mesh.Edge) {
	t.Helper()
	s := mesh.NewStore()
	// Side lengths: p0-p1 = 10, p1-p2 = 10, p2-p0 = 1.
	// Solve p2 via the law of cosines from p0=(0,0,0), p1=(10,0,0).
	a, b, c := 10.0, 10.0, 1.0
	cosTheta := (a*a + c*c - b*b) / (2 * a * c)
	x := c * cosTheta
	y := math.Sqrt(math.Max(0, c*c-x*x))
	s.Points = []mesh.Point{mesh.Pt(0, 0, 0), mesh.Pt(a, 0, 0), mesh.Pt(x, y, 0)}
	s.Faces = []mesh.Face{mesh.NewTriangle(0, 1, 2)}
	if err := s.CreateEdges(); err != nil {
		t.Fatal(err)
	}
	s.MaxAllowedTriAspectRatio = 5
	s.MinAllowedEdgeLength = 0.01
	s.SetMinIncludedAngle(10)

	longID, ok := s.LookupEdge(0, 1)
	if !ok {
		t.Fatal("missing long edge")
	}
	shortID, ok := s.LookupEdge(2, 0)
	if !ok {
		t.Fatal("missing short edge")
	}
	return s, *s.Edge(longID), *s.Edge(shortID)
}

func TestForceSplitOnAspectRatio(t *testing.T) {
	s, long, short := triangle10_10_1(t)
	sc := &Scorer{Store: s}

	if q := sc.ComputeQuality(long); q != ForceSplit {
		t.Errorf("expected long edge to force-split, got %v", q)
	}
	if q := sc.ComputeQuality(short); q != PreventSplit {
		t.Errorf("expected short edge to be prevented, got %v", q)
	}
}

func TestCurvatureLawOnSphere(t *testing.T) {
	radius := 10.0
	group := geomkernel.SphereGroup{Entity: "sphere", Center: mesh.Pt(0, 0, 0), Radius: radius}
	kernel := geomkernel.NewSphereKernel(group)

	s := mesh.NewStore()
	s.Points = []mesh.Point{mesh.Pt(radius, 0, 0), mesh.Pt(0, radius, 0), mesh.Pt(0, 0, radius)}
	s.Faces = []mesh.Face{mesh.NewTriangle(0, 1, 2)}
	if err := s.CreateEdges(); err != nil {
		t.Fatal(err)
	}
	s.MaxAllowedTriAspectRatio = 1000
	s.MinAllowedEdgeLength = 1e-6
	s.SetMinIncludedAngle(0)

	model := assoc.NewRegistry()
	sheet := model.AddSheet("skin")
	sheet.AddFaceEdge(1, 2, assoc.AddParams{Gref: "sphere"})

	sc := &Scorer{
		Store:  s,
		Model:  model,
		Kernel: kernel,
		Resolve: func(g assoc.Gref) (geomkernel.Group, bool) {
			if g == "sphere" {
				return group, true
			}
			return nil, false
		},
	}

	e01, ok := s.LookupEdge(0, 1)
	if !ok {
		t.Fatal("missing edge")
	}
	edge := *s.Edge(e01)
	l := s.Points[edge.N0].Dist(s.Points[edge.N1])
	want := 360 * l / (2 * math.Pi * radius)

	got := sc.ComputeQuality(edge)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("expected curvature-law score %v, got %v", want, got)
	}
}

func TestComputeQualityNoCurvatureDataYieldsPreventSplit(t *testing.T) {
	s := mesh.NewStore()
	s.Points = []mesh.Point{mesh.Pt(0, 0, 0), mesh.Pt(5, 0, 0), mesh.Pt(0, 5, 0)}
	s.Faces = []mesh.Face{mesh.NewTriangle(0, 1, 2)}
	if err := s.CreateEdges(); err != nil {
		t.Fatal(err)
	}
	s.MaxAllowedTriAspectRatio = 1000
	s.MinAllowedEdgeLength = 1e-6
	s.SetMinIncludedAngle(0)

	sc := &Scorer{Store: s}
	id, _ := s.LookupEdge(0, 1)
	if q := sc.ComputeQuality(*s.Edge(id)); q != PreventSplit {
		t.Errorf("expected PreventSplit with no associativity wired, got %v", q)
	}
}
