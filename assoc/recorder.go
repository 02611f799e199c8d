package assoc

import "fmt"

// Call records one invocation of an add/delete operation on a
// Recorder, tagged with the collection ("model" or a string/sheet
// name) it was invoked against.
type Call struct {
	Collection string
	Op         string
	A, B, C    int
}

func (c Call) String() string {
	return fmt.Sprintf("%s.%s(%d,%d,%d)", c.Collection, c.Op, c.A, c.B, c.C)
}

// recordingFinder wraps an EntityFinder and appends every add/delete
// call to the shared log. Finds pass straight through.
type recordingFinder struct {
	EntityFinder
	name string
	log  *[]Call
}

func (f *recordingFinder) record(op string, a, b, c int) {
	*f.log = append(*f.log, Call{Collection: f.name, Op: op, A: a, B: b, C: c})
}

func (f *recordingFinder) AddEdge(a, b int, p AddParams) {
	f.record("AddEdge", a, b, 0)
	f.EntityFinder.AddEdge(a, b, p)
}

func (f *recordingFinder) AddFaceEdge(a, b int, p AddParams) {
	f.record("AddFaceEdge", a, b, 0)
	f.EntityFinder.AddFaceEdge(a, b, p)
}

func (f *recordingFinder) AddFace(a, b, c int, p AddParams) {
	f.record("AddFace", a, b, c)
	f.EntityFinder.AddFace(a, b, c, p)
}

func (f *recordingFinder) DeleteEdgeByInds(a, b int) {
	f.record("DeleteEdgeByInds", a, b, 0)
	f.EntityFinder.DeleteEdgeByInds(a, b)
}

func (f *recordingFinder) DeleteFaceByInds(a, b, c int) {
	f.record("DeleteFaceByInds", a, b, c)
	f.EntityFinder.DeleteFaceByInds(a, b, c)
}

// recordingString/recordingSheet adapt recordingFinder to satisfy
// MeshString/MeshSheet's Name() method by delegating to the wrapped
// collection.
type recordingString struct {
	*recordingFinder
	underlying MeshString
}

func (s *recordingString) Name() string { return s.underlying.Name() }

type recordingSheet struct {
	*recordingFinder
	underlying MeshSheet
}

func (s *recordingSheet) Name() string { return s.underlying.Name() }

// Recorder wraps a Registry (or any MeshModel-shaped set of
// collections) and logs every add/delete call made against the
// model or any of its strings/sheets, in call order. Tests use this
// to assert the exact mirroring call sequence a split must produce.
type Recorder struct {
	*recordingFinder
	inner *Registry
	Log   []Call
}

// NewRecorder wraps reg for call recording.
func NewRecorder(reg *Registry) *Recorder {
	r := &Recorder{inner: reg}
	r.recordingFinder = &recordingFinder{EntityFinder: reg.collection, name: "model", log: &r.Log}
	return r
}

func (r *Recorder) GetMeshStrings(a, b int) []MeshString {
	var out []MeshString
	for _, s := range r.inner.GetMeshStrings(a, b) {
		out = append(out, &recordingString{
			recordingFinder: &recordingFinder{EntityFinder: s, name: s.Name(), log: &r.Log},
			underlying: s,
		})
	}
	return out
}

func (r *Recorder) GetMeshSheetsForFaceEdge(a, b int) []MeshSheet {
	var out []MeshSheet
	for _, s := range r.inner.GetMeshSheetsForFaceEdge(a, b) {
		out = append(out, &recordingSheet{
			recordingFinder: &recordingFinder{EntityFinder: s, name: s.Name(), log: &r.Log},
			underlying: s,
		})
	}
	return out
}

func (r *Recorder) GetMeshSheetsForFace(a, b, c int) []MeshSheet {
	var out []MeshSheet
	for _, s := range r.inner.GetMeshSheetsForFace(a, b, c) {
		out = append(out, &recordingSheet{
			recordingFinder: &recordingFinder{EntityFinder: s, name: s.Name(), log: &r.Log},
			underlying: s,
		})
	}
	return out
}
