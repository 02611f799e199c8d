package mesh

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
)

// Store owns the mesh's points, edges and faces. Ownership is
// exclusive: edges and faces reference points and faces by index
// only, never by pointer, so the arrays can be appended to freely
// without invalidating other entities' references. An Edge or Face
// value obtained from a Store method (e.g. via Edge or Face) is only
// valid until the next append to the corresponding slice; re-fetch
// after any Add*/Update* call.
type Store struct {
	Points []Point
	Edges  []Edge
	Faces  []Face

	edgeIndex map[uint64]edgeHashCell

	// Mesh constraints (§3), consulted by package quality.
	MinAllowedEdgeLength          float64
	MaxAllowedTriAspectRatio      float64
	MinAllowedTriIncludedAngleDeg float64

	// minIncludedAngleCos caches cos(MinAllowedTriIncludedAngleDeg);
	// recompute with SetMinIncludedAngle whenever the degree value
	// changes directly.
	minIncludedAngleCos float64
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{edgeIndex: map[uint64]edgeHashCell{}}
}

// Edge returns a pointer to the edge at id. The pointer is only valid
// until the next AddEdge/UpdateEdge call.
func (s *Store) Edge(id EdgeID) *Edge {
	return &s.Edges[id]
}

// Face returns a pointer to the face at index f. The pointer is only
// valid until the next append to Faces.
func (s *Store) Face(f int) *Face {
	return &s.Faces[f]
}

// AddEdge appends e to Edges and indexes it by its unordered node
// pair. A hash collision against a concurrently-live, distinct
// unordered pair is an invariant violation (§4.1) and aborts the
// process via essentials.Must.
func (s *Store) AddEdge(e Edge) EdgeID {
	id := EdgeID(len(s.Edges))
	s.Edges = append(s.Edges, e)
	s.insertHash(e.N0, e.N1, id)
	return id
}

func (s *Store) insertHash(a, b int, id EdgeID) {
	lo, hi := sorted2(a, b)
	h := edgeHash(lo, hi)
	if cell, ok := s.edgeIndex[h]; ok {
		essentials.Must(errors.Errorf(
			"mesh: edge hash collision between {%d,%d} and {%d,%d}",
			lo, hi, cell.lo, cell.hi))
	}
	s.edgeIndex[h] = edgeHashCell{lo: lo, hi: hi, id: id}
}

func (s *Store) removeHash(a, b int) bool {
	lo, hi := sorted2(a, b)
	h := edgeHash(lo, hi)
	if cell, ok := s.edgeIndex[h]; ok && cell.lo == lo && cell.hi == hi {
		delete(s.edgeIndex, h)
		return true
	}
	return false
}

// LookupEdge finds the edge with unordered node pair {a, b} without
// mutating it. This is the non-mutating sibling the original
// "findEdge" lacked; see FindAndOrientEdge for the orienting variant
// that SplitOp depends on.
func (s *Store) LookupEdge(a, b int) (EdgeID, bool) {
	lo, hi := sorted2(a, b)
	h := edgeHash(lo, hi)
	cell, ok := s.edgeIndex[h]
	if !ok || cell.lo != lo || cell.hi != hi {
		return NoEdge, false
	}
	return cell.id, true
}

// FindAndOrientEdge finds the edge with unordered node pair {a, b}
// and, if found, reorients it in place so N0 == a, N1 == b (swapping
// F0/F1 to match). This mutation-on-find is exactly what the original
// findEdge(a, b, matchOrientation=true) does; SplitOp relies on it to
// align a face's "leg" edges to the face's own orientation before
// reassigning their face slots.
func (s *Store) FindAndOrientEdge(a, b int) (EdgeID, bool) {
	id, ok := s.LookupEdge(a, b)
	if !ok {
		return NoEdge, false
	}
	e := &s.Edges[id]
	if e.N0 != a {
		FlipEdge(e)
	}
	return id, true
}

// UpdateEdge overwrites the edge at target with source, relocating
// the hash-map entry from target's old node pair to source's. It
// fails if target's current node pair is not present in the hash map.
func (s *Store) UpdateEdge(target EdgeID, source Edge) error {
	old := s.Edges[target]
	if !s.removeHash(old.N0, old.N1) {
		return errors.Errorf("mesh: UpdateEdge: target %d not present in edge index", target)
	}
	s.Edges[target] = source
	s.insertHash(source.N0, source.N1, target)
	return nil
}

// ErrNonTriangleFace is returned by CreateEdges when a face is not a
// triangle; per §9's Open Question resolution, CreateEdges rejects
// quads rather than silently mishandling them.
var ErrNonTriangleFace = errors.New("mesh: CreateEdges requires triangular faces")

// ErrNonManifoldEdge is returned by CreateEdges when more than two
// faces share an unordered node pair.
var ErrNonManifoldEdge = errors.New("mesh: non-manifold edge (3+ incident faces)")

// CreateEdges rebuilds Edges (and the hash index) from the current
// Faces. It emits three directed edges per triangle in face order,
// stable-sorts them under LessEdge, then coalesces runs of equal
// edges: the first occurrence contributes F0, a second contributes
// F1, and a third or further occurrence is ErrNonManifoldEdge.
//
// Calling CreateEdges discards any existing Edges.
func (s *Store) CreateEdges() error {
	type directed struct {
		n0, n1 int
		face   int
	}
	emitted := make([]directed, 0, len(s.Faces)*3)
	for fi, f := range s.Faces {
		if f.NumNodes != 3 {
			return errors.Wrapf(ErrNonTriangleFace, "face %d has %d nodes", fi, f.NumNodes)
		}
		for i := 0; i < 3; i++ {
			emitted = append(emitted, directed{
				n0:   f.Nodes[i],
				n1:   f.Nodes[(i+1)%3],
				face: fi,
			})
		}
	}

	sort.SliceStable(emitted, func(i, j int) bool {
		return LessEdge(Edge{N0: emitted[i].n0, N1: emitted[i].n1},
			Edge{N0: emitted[j].n0, N1: emitted[j].n1})
	})

	s.Edges = s.Edges[:0]
	s.edgeIndex = map[uint64]edgeHashCell{}

	i := 0
	for i < len(emitted) {
		j := i + 1
		for j < len(emitted) && sameUnordered(emitted[i], emitted[j]) {
			j++
		}
		run := emitted[i:j]
		if len(run) > 2 {
			lo, hi := sorted2(run[0].n0, run[0].n1)
			return errors.Wrapf(ErrNonManifoldEdge, "edge {%d,%d} has %d incident faces", lo, hi, len(run))
		}
		e := Edge{N0: run[0].n0, N1: run[0].n1, F0: run[0].face, F1: NoFace}
		if len(run) == 2 {
			e.F1 = run[1].face
		}
		s.AddEdge(e)
		i = j
	}
	return nil
}

func sameUnordered(a, b struct {
	n0, n1 int
	face   int
}) bool {
	aLo, aHi := sorted2(a.n0, a.n1)
	bLo, bHi := sorted2(b.n0, b.n1)
	return aLo == bLo && aHi == bHi
}

// CheckFaces verifies that every face node is a valid point index and
// that every face's three corner edges exist in the hash index.
func (s *Store) CheckFaces() []error {
	var errs []error
	for fi, f := range s.Faces {
		if f.NumNodes != 3 && f.NumNodes != 4 {
			errs = append(errs, errors.Errorf("face %d: invalid NumNodes %d", fi, f.NumNodes))
			continue
		}
		for i := 0; i < f.NumNodes; i++ {
			n := f.Nodes[i]
			if n < 0 || n >= len(s.Points) {
				errs = append(errs, errors.Errorf("face %d: node index %d out of range", fi, n))
			}
		}
		if f.NumNodes == 3 {
			for i := 0; i < 3; i++ {
				a, b := f.Nodes[i], f.Nodes[(i+1)%3]
				if _, ok := s.LookupEdge(a, b); !ok {
					errs = append(errs, errors.Errorf("face %d: missing edge {%d,%d}", fi, a, b))
				}
			}
		}
	}
	return errs
}

// CheckEdges verifies §8's per-edge invariants: distinct endpoints,
// valid indices, F0 >= 0, F1 >= -1, and that every adjacent face's
// node list contains both endpoints.
func (s *Store) CheckEdges() []error {
	var errs []error
	for i, e := range s.Edges {
		if e.N0 == e.N1 {
			errs = append(errs, errors.Errorf("edge %d: N0 == N1 (%d)", i, e.N0))
		}
		if e.N0 < 0 || e.N0 >= len(s.Points) || e.N1 < 0 || e.N1 >= len(s.Points) {
			errs = append(errs, errors.Errorf("edge %d: node index out of range", i))
		}
		if e.F0 < 0 {
			errs = append(errs, errors.Errorf("edge %d: F0 < 0", i))
		}
		if e.F1 < -1 {
			errs = append(errs, errors.Errorf("edge %d: F1 < -1", i))
		}
		for _, f := range []int{e.F0, e.F1} {
			if f == NoFace {
				continue
			}
			if f < 0 || f >= len(s.Faces) {
				errs = append(errs, errors.Errorf("edge %d: face index %d out of range", i, f))
				continue
			}
			face := s.Faces[f]
			if !faceHasNode(face, e.N0) || !faceHasNode(face, e.N1) {
				errs = append(errs, errors.Errorf("edge %d: face %d does not contain both endpoints", i, f))
			}
		}
	}
	return errs
}

func faceHasNode(f Face, n int) bool {
	for i := 0; i < f.NumNodes; i++ {
		if f.Nodes[i] == n {
			return true
		}
	}
	return false
}

// SetMinIncludedAngle sets MinAllowedTriIncludedAngleDeg and caches
// its cosine for use by package quality.
func (s *Store) SetMinIncludedAngle(degrees float64) {
	s.MinAllowedTriIncludedAngleDeg = degrees
	s.minIncludedAngleCos = cosDegrees(degrees)
}

// MinIncludedAngleCosine returns the cosine cached by
// SetMinIncludedAngle.
func (s *Store) MinIncludedAngleCosine() float64 {
	return s.minIncludedAngleCos
}
