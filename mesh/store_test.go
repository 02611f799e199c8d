package mesh

import "testing"

func twoTriangleStore() *Store {
	s := NewStore()
	s.Points = []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(0, 1, 0), Pt(1, 1, 0)}
	s.Faces = []Face{
		NewTriangle(0, 1, 2),
		NewTriangle(1, 0, 3),
	}
	return s
}

func TestCreateEdges(t *testing.T) {
	s := twoTriangleStore()
	if err := s.CreateEdges(); err != nil {
		t.Fatalf("CreateEdges: %v", err)
	}
	if len(s.Edges) != 5 {
		t.Fatalf("expected 5 edges, got %d", len(s.Edges))
	}
	id, ok := s.LookupEdge(0, 1)
	if !ok {
		t.Fatal("expected edge {0,1} to exist")
	}
	e := *s.Edge(id)
	if e.F0 == NoFace || e.F1 == NoFace {
		t.Errorf("shared edge {0,1} should have two adjacent faces, got %+v", e)
	}
	for _, pair := range [][2]int{{1, 2}, {2, 0}, {0, 3}, {3, 1}} {
		id, ok := s.LookupEdge(pair[0], pair[1])
		if !ok {
			t.Fatalf("expected edge {%d,%d} to exist", pair[0], pair[1])
		}
		e := *s.Edge(id)
		if e.F1 != NoFace {
			t.Errorf("edge {%d,%d} should be lamina, got F1=%d", pair[0], pair[1], e.F1)
		}
	}
}

func TestCreateEdgesRejectsQuads(t *testing.T) {
	s := NewStore()
	s.Points = []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0), Pt(0, 1, 0)}
	s.Faces = []Face{{Nodes: [MaxFaceNodes]int{0, 1, 2, 3}, NumNodes: 4}}
	if err := s.CreateEdges(); err == nil {
		t.Fatal("expected ErrNonTriangleFace")
	}
}

func TestCreateEdgesNonManifold(t *testing.T) {
	s := NewStore()
	s.Points = []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(0, 1, 0), Pt(1, 1, 0), Pt(0, 0, 1)}
	s.Faces = []Face{
		NewTriangle(0, 1, 2),
		NewTriangle(1, 0, 3),
		NewTriangle(0, 1, 4),
	}
	if err := s.CreateEdges(); err == nil {
		t.Fatal("expected ErrNonManifoldEdge")
	}
}

func TestFindAndOrientEdge(t *testing.T) {
	s := twoTriangleStore()
	if err := s.CreateEdges(); err != nil {
		t.Fatal(err)
	}
	id, ok := s.FindAndOrientEdge(1, 0)
	if !ok {
		t.Fatal("expected edge to be found")
	}
	e := *s.Edge(id)
	if e.N0 != 1 || e.N1 != 0 {
		t.Errorf("expected orientation (1,0), got (%d,%d)", e.N0, e.N1)
	}

	// Re-orienting back and forth should leave the store in the same
	// observable state (idempotence of repeated orientation).
	id2, ok := s.FindAndOrientEdge(1, 0)
	if !ok || id2 != id {
		t.Fatal("second FindAndOrientEdge(1,0) should return the same edge")
	}
	e2 := *s.Edge(id2)
	if e2.N0 != 1 || e2.N1 != 0 {
		t.Errorf("expected orientation to still be (1,0), got (%d,%d)", e2.N0, e2.N1)
	}
}

func TestUpdateEdge(t *testing.T) {
	s := twoTriangleStore()
	if err := s.CreateEdges(); err != nil {
		t.Fatal(err)
	}
	id, ok := s.LookupEdge(0, 1)
	if !ok {
		t.Fatal("edge not found")
	}
	if err := s.UpdateEdge(id, Edge{N0: 0, N1: 4, F0: 0, F1: NoFace}); err != nil {
		t.Fatalf("UpdateEdge: %v", err)
	}
	if _, ok := s.LookupEdge(0, 1); ok {
		t.Error("old node pair should no longer resolve")
	}
	newID, ok := s.LookupEdge(0, 4)
	if !ok || newID != id {
		t.Error("new node pair should resolve to the same slot")
	}
}

func TestClockFace(t *testing.T) {
	f := NewTriangle(5, 6, 7)
	if err := f.Clock(6, 7); err != nil {
		t.Fatalf("Clock: %v", err)
	}
	if f.Nodes[0] != 6 || f.Nodes[1] != 7 || f.Nodes[2] != 5 {
		t.Errorf("unexpected nodes after clock: %v", f.Nodes)
	}
}

func TestClockFacePrecondition(t *testing.T) {
	f := NewTriangle(5, 6, 7)
	if err := f.Clock(6, 5); err == nil {
		t.Fatal("expected ErrClockPrecondition when b does not follow a")
	}
}

func TestApex(t *testing.T) {
	f := NewTriangle(1, 2, 3)
	apex, ok := f.Apex(1, 2)
	if !ok || apex != 3 {
		t.Errorf("expected apex 3, got %d (ok=%v)", apex, ok)
	}
}

func TestCheckEdgesDetectsDanglingFace(t *testing.T) {
	s := twoTriangleStore()
	if err := s.CreateEdges(); err != nil {
		t.Fatal(err)
	}
	s.Edges[0].F0 = 99
	if errs := s.CheckEdges(); len(errs) == 0 {
		t.Fatal("expected an out-of-range face index to be reported")
	}
}

func TestCreateEdgesIdempotent(t *testing.T) {
	s := twoTriangleStore()
	if err := s.CreateEdges(); err != nil {
		t.Fatal(err)
	}
	first := append([]Edge(nil), s.Edges...)
	if err := s.CreateEdges(); err != nil {
		t.Fatal(err)
	}
	if len(first) != len(s.Edges) {
		t.Fatalf("edge count changed across re-creation: %d vs %d", len(first), len(s.Edges))
	}
	for _, e := range first {
		if _, ok := s.LookupEdge(e.N0, e.N1); !ok {
			t.Errorf("edge {%d,%d} missing after second CreateEdges", e.N0, e.N1)
		}
	}
}
