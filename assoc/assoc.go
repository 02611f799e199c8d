// Package assoc defines the mesh-associativity interfaces the core
// refinement engine consumes (§6): a registry binding mesh topo
// entities (points, edges, faces) to CAD geometry, organized into
// MeshStrings (1-D collections) and MeshSheets (2-D collections), and
// addressed throughout by 1-based node-index tuples.
//
// The associativity store itself is an external collaborator; this
// package describes its shape and supplies an in-memory reference
// implementation (Registry) used by splitop's tests.
package assoc

import "github.com/unixpickle/meshrefine/geomkernel"

// GroupResolver resolves a Gref tag to the geometry Group a kernel
// projects onto. The mapping lives outside the associativity
// interfaces below; callers (quality.Scorer, splitop.Split) take one
// as a collaborator.
type GroupResolver func(g Gref) (geomkernel.Group, bool)

// ID, Aref and Gref are opaque tags a topo record carries: identity,
// attribute reference, and geometry reference, respectively. The
// core never interprets their values; it only copies them across a
// split's parent-to-child inheritance.
type ID string
type Aref string
type Gref string

// AddParams bundles the fields every add* call on the associativity
// takes (§6): "Every add* variant takes (ID, Aref, Gref, [name],
// ParamVerts..., required=false)." A struct replaces the variadic
// parameter list the prose describes, since Go has no optional
// keyword arguments; Name and ParamVerts are the optional ones and
// are simply left at their zero values when absent.
type AddParams struct {
	ID        ID
	Aref      Aref
	Gref      Gref
	Name      string
	ParamVert []geomkernel.ParamVert
	Required  bool
}

// EdgeRecord is a topo record for a mesh edge: a lowest-topology edge
// record, a face-edge record, or a string-edge record, depending on
// which find/add method produced it.
type EdgeRecord struct {
	AddParams
	N0, N1 int // 1-based
}

// FaceRecord is a topo record for a mesh face.
type FaceRecord struct {
	AddParams
	N0, N1, N2 int // 1-based
}

// EntityFinder is the find/add/delete family shared by MeshModel,
// MeshString and MeshSheet, scoped to whichever collection the
// receiver represents.
type EntityFinder interface {
	// FindLowestTopoEdgeByInds finds the most specific (lowest-level)
	// edge record for the unordered 1-based pair (a, b), if any.
	FindLowestTopoEdgeByInds(a, b int) (EdgeRecord, bool)

	// FindFaceEdgeByInds finds a face-edge record for (a, b).
	FindFaceEdgeByInds(a, b int) (EdgeRecord, bool)

	// FindFaceByInds finds a face record for (a, b, c).
	FindFaceByInds(a, b, c int) (FaceRecord, bool)

	// AddEdge adds a string-level (or lowest-topology, at model
	// scope) edge record for (a, b).
	AddEdge(a, b int, p AddParams)

	// AddFaceEdge adds a face-edge record for (a, b).
	AddFaceEdge(a, b int, p AddParams)

	// AddFace adds a face record for (a, b, c).
	AddFace(a, b, c int, p AddParams)

	// DeleteEdgeByInds removes whatever edge record(s) are stored
	// for (a, b) in this collection's scope.
	DeleteEdgeByInds(a, b int)

	// DeleteFaceByInds removes the face record for (a, b, c).
	DeleteFaceByInds(a, b, c int)
}

// MeshString is a 1-D collection of topo entities (edges) within the
// associativity.
type MeshString interface {
	EntityFinder
	Name() string
}

// MeshSheet is a 2-D collection of topo entities (faces, and the
// edges bounding them) within the associativity.
type MeshSheet interface {
	EntityFinder
	Name() string
}

// MeshModel is the top-level associativity surface the core holds:
// the model-scoped EntityFinder, plus enumeration of the strings and
// sheets that might also contain a given entity.
type MeshModel interface {
	EntityFinder

	// GetMeshStrings returns every MeshString containing the
	// unordered edge (a, b).
	GetMeshStrings(a, b int) []MeshString

	// GetMeshSheetsForFaceEdge returns every MeshSheet that holds a
	// face-edge record for (a, b).
	GetMeshSheetsForFaceEdge(a, b int) []MeshSheet

	// GetMeshSheetsForFace returns every MeshSheet that holds a face
	// record for (a, b, c).
	GetMeshSheetsForFace(a, b, c int) []MeshSheet
}
