package mesh

import "github.com/pkg/errors"

// MaxFaceNodes is the widest node list a Face can carry. Quads may be
// read into storage, but only triangles (NumNodes == 3) may be passed
// to the split transform; see Store.CreateEdges.
const MaxFaceNodes = 4

// Face holds up to MaxFaceNodes node indices, stored in cyclic order
// so that the order itself encodes orientation.
type Face struct {
	Nodes    [MaxFaceNodes]int
	NumNodes int
}

// NewTriangle builds a 3-node Face in the given cyclic order.
func NewTriangle(a, b, c int) Face {
	return Face{Nodes: [MaxFaceNodes]int{a, b, c, 0}, NumNodes: 3}
}

// NewQuad builds a 4-node Face in the given cyclic order. Quads may
// be stored and round-tripped but split requires NumNodes == 3; see
// Store.CreateEdges.
func NewQuad(a, b, c, d int) Face {
	return Face{Nodes: [MaxFaceNodes]int{a, b, c, d}, NumNodes: 4}
}

// ErrClockPrecondition is returned by Clock when a and b are not an
// adjacent, correctly-ordered pair on the face's cyclic boundary. Per
// §4.2, this indicates a bug in the caller, not a recoverable input
// error.
var ErrClockPrecondition = errors.New("mesh: clockFace precondition violated")

// Clock rotates the face's node list left, in place, until Nodes[0]
// == a. It requires that b follows a in the cyclic order (i.e. b ==
// Nodes[(i+1) % NumNodes] where Nodes[i] == a); ErrClockPrecondition
// is returned otherwise.
func (f *Face) Clock(a, b int) error {
	n := f.NumNodes
	for i := 0; i < n; i++ {
		if f.Nodes[i] == a && f.Nodes[(i+1)%n] == b {
			rotated := [MaxFaceNodes]int{}
			for j := 0; j < n; j++ {
				rotated[j] = f.Nodes[(i+j)%n]
			}
			f.Nodes = rotated
			return nil
		}
	}
	return ErrClockPrecondition
}

// Apex returns the single face node that is neither a nor b. It is a
// precondition that the face is a triangle containing both a and b;
// callers that violate this receive ok == false.
func (f Face) Apex(a, b int) (apex int, ok bool) {
	if f.NumNodes != 3 {
		return 0, false
	}
	hasA, hasB, others := false, false, 0
	for _, n := range f.Nodes[:f.NumNodes] {
		switch n {
		case a:
			hasA = true
		case b:
			hasB = true
		default:
			apex = n
			others++
		}
	}
	if !hasA || !hasB || others != 1 {
		return 0, false
	}
	return apex, true
}
