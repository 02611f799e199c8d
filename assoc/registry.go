package assoc

import "sort"

// collection is the shared find/add/delete implementation behind
// Registry, String and Sheet: three maps keyed by sorted node tuples,
// mirroring the lowest-topology/face-edge/face record classes.
type collection struct {
	name      string
	edges     map[[2]int]EdgeRecord
	faceEdges map[[2]int]EdgeRecord
	faces     map[[3]int]FaceRecord
}

func newCollection(name string) *collection {
	return &collection{
		name:      name,
		edges:     map[[2]int]EdgeRecord{},
		faceEdges: map[[2]int]EdgeRecord{},
		faces:     map[[3]int]FaceRecord{},
	}
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func faceKey(a, b, c int) [3]int {
	k := [3]int{a, b, c}
	sort.Ints(k[:])
	return k
}

func (c *collection) Name() string { return c.name }

func (c *collection) FindLowestTopoEdgeByInds(a, b int) (EdgeRecord, bool) {
	r, ok := c.edges[edgeKey(a, b)]
	return r, ok
}

func (c *collection) FindFaceEdgeByInds(a, b int) (EdgeRecord, bool) {
	r, ok := c.faceEdges[edgeKey(a, b)]
	return r, ok
}

func (c *collection) FindFaceByInds(a, b, ci int) (FaceRecord, bool) {
	r, ok := c.faces[faceKey(a, b, ci)]
	return r, ok
}

func (c *collection) AddEdge(a, b int, p AddParams) {
	c.edges[edgeKey(a, b)] = EdgeRecord{AddParams: p, N0: a, N1: b}
}

func (c *collection) AddFaceEdge(a, b int, p AddParams) {
	c.faceEdges[edgeKey(a, b)] = EdgeRecord{AddParams: p, N0: a, N1: b}
}

func (c *collection) AddFace(a, b, ci int, p AddParams) {
	c.faces[faceKey(a, b, ci)] = FaceRecord{AddParams: p, N0: a, N1: b, N2: ci}
}

func (c *collection) DeleteEdgeByInds(a, b int) {
	k := edgeKey(a, b)
	delete(c.edges, k)
	delete(c.faceEdges, k)
}

func (c *collection) DeleteFaceByInds(a, b, ci int) {
	delete(c.faces, faceKey(a, b, ci))
}

// String is a reference MeshString implementation.
type String struct{ *collection }

// Sheet is a reference MeshSheet implementation.
type Sheet struct{ *collection }

// Registry is an in-memory reference MeshModel: model-scoped records
// plus the set of strings and sheets an entity may additionally
// belong to. It is grounded on the same sorted-key hash-map approach
// package mesh uses for its own edge index, adapted here to 2- and
// 3-tuple keys.
type Registry struct {
	*collection
	Strings []*String
	Sheets  []*Sheet
}

// NewRegistry creates an empty associativity registry.
func NewRegistry() *Registry {
	return &Registry{collection: newCollection("model")}
}

// AddString creates and registers a new MeshString.
func (r *Registry) AddString(name string) *String {
	s := &String{collection: newCollection(name)}
	r.Strings = append(r.Strings, s)
	return s
}

// AddSheet creates and registers a new MeshSheet.
func (r *Registry) AddSheet(name string) *Sheet {
	s := &Sheet{collection: newCollection(name)}
	r.Sheets = append(r.Sheets, s)
	return s
}

func (r *Registry) GetMeshStrings(a, b int) []MeshString {
	k := edgeKey(a, b)
	var out []MeshString
	for _, s := range r.Strings {
		if _, ok := s.edges[k]; ok {
			out = append(out, s)
		}
	}
	return out
}

func (r *Registry) GetMeshSheetsForFaceEdge(a, b int) []MeshSheet {
	k := edgeKey(a, b)
	var out []MeshSheet
	for _, s := range r.Sheets {
		if _, ok := s.faceEdges[k]; ok {
			out = append(out, s)
		}
	}
	return out
}

func (r *Registry) GetMeshSheetsForFace(a, b, c int) []MeshSheet {
	k := faceKey(a, b, c)
	var out []MeshSheet
	for _, s := range r.Sheets {
		if _, ok := s.faces[k]; ok {
			out = append(out, s)
		}
	}
	return out
}
