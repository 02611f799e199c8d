// Package splitop implements the edge-split transform: the single
// operation that inserts a midpoint on an edge, reuses and appends
// mesh topology around it, and mirrors every structural change into
// the associativity so the refined mesh stays consistent with its
// CAD geometry.
package splitop

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"

	"github.com/unixpickle/meshrefine/assoc"
	"github.com/unixpickle/meshrefine/geomkernel"
	"github.com/unixpickle/meshrefine/mesh"
)

// Result reports what a successful Split produced: the new
// midpoint's point index, and every edge whose node pair or face
// slots changed (the reused slot's child, the far child, and the
// face-split edges — not the untouched "leg" edges, whose node pairs
// didn't change even though a face slot on them was reassigned).
type Result struct {
	Midpoint      int
	ModifiedEdges []mesh.EdgeID
}

// Splitter bundles the collaborators a split needs: the mesh store
// it mutates, the associativity it mirrors into, and the geometry
// kernel/resolver used to project the new midpoint.
type Splitter struct {
	Store   *mesh.Store
	Model   assoc.MeshModel
	Kernel  geomkernel.Kernel
	Resolve assoc.GroupResolver
}

// pendingFace describes one adjacent-face split computed before any
// mutation, so that step 1's midpoint projection is the only
// fallible operation and everything else commits without further
// chance of failure (see the atomicity note in Split's doc comment).
type pendingFace struct {
	faceIdx  int
	apex     int
	legEdge  mesh.EdgeID // the "leg" edge to reassign, already oriented
	childA   mesh.Face   // overwrites faceIdx's slot
	childB   mesh.Face   // appended
	splitDir [2]int      // (m, apex) or (apex, m), per F1/F2 orientation
}

// Split performs the edge-split transform on the edge at id.
//
// Atomicity: every fallible step (midpoint projection, leg-edge
// lookup) runs before any mutation of Store or Model. Once the first
// mutation (appending the midpoint to Points) happens, the remainder
// of the transform cannot fail and always runs to completion — this
// implementation chooses option (a) from the atomicity note over
// explicit rollback, since every post-projection step here is a pure
// index computation with no further external dependency.
func (sp *Splitter) Split(id mesh.EdgeID) (Result, error) {
	store := sp.Store
	e := *store.Edge(id)
	a, b := e.N0, e.N1

	plan, err := sp.plan(e)
	if err != nil {
		return Result{}, err
	}

	m := len(store.Points)
	store.Points = append(store.Points, plan.midpoint)

	e1 := mesh.Edge{N0: a, N1: m, F1: mesh.NoFace}
	e2 := mesh.Edge{N0: m, N1: b, F1: mesh.NoFace}

	var modified []mesh.EdgeID
	var splitEdgeIDs [2]mesh.EdgeID
	haveSplit := [2]bool{}

	for i, pf := range plan.faces {
		if pf == nil {
			continue
		}
		pf.resolveMidpoint(m)
		childBIdx := len(store.Faces)
		store.Faces[pf.faceIdx] = pf.childA
		store.Faces = append(store.Faces, pf.childB)

		if i == 0 {
			e1.F0 = pf.faceIdx
			e2.F0 = childBIdx
		} else {
			e1.F1 = pf.faceIdx
			e2.F1 = childBIdx
		}

		leg := store.Edge(pf.legEdge)
		leg.F0 = childBIdx

		splitEdge := mesh.Edge{N0: pf.splitDir[0], N1: pf.splitDir[1], F0: pf.faceIdx, F1: childBIdx}
		splitID := store.AddEdge(splitEdge)
		splitEdgeIDs[i] = splitID
		haveSplit[i] = true
		modified = append(modified, splitID)
	}

	if err := store.UpdateEdge(id, e1); err != nil {
		essentials.Must(errors.Wrap(err, "splitop: updating parent edge slot"))
	}
	modified = append([]mesh.EdgeID{id}, modified...)
	e2ID := store.AddEdge(e2)
	modified = append(modified, e2ID)

	sp.mirrorAssociativity(a, b, m, plan, splitEdgeIDs, haveSplit)

	return Result{Midpoint: m, ModifiedEdges: modified}, nil
}

// plannedSplit is everything computed before the first mutation.
type plannedSplit struct {
	midpoint mesh.Point
	faces    [2]*pendingFace // index 0 <-> F1, index 1 <-> F2 (nil if absent)
}

// lowestTopoEdge tolerates a nil Model, matching mirrorAssociativity
// and package quality's own nil-Model tolerance (§1 treats the
// associativity as an optional external collaborator).
func (sp *Splitter) lowestTopoEdge(aa, bb int) (assoc.EdgeRecord, bool) {
	if sp.Model == nil {
		return assoc.EdgeRecord{}, false
	}
	return sp.Model.FindLowestTopoEdgeByInds(aa, bb)
}

// plan computes the midpoint (the one fallible step) and both
// adjacent faces' child data, without mutating the store.
func (sp *Splitter) plan(e mesh.Edge) (plannedSplit, error) {
	a, b := e.N0, e.N1
	mid := sp.Store.Points[a].Mid(sp.Store.Points[b])

	if rec, ok := sp.lowestTopoEdge(a+1, b+1); ok && sp.Kernel != nil && sp.Resolve != nil {
		group, ok := sp.Resolve(rec.Gref)
		if ok {
			proj, _, _, err := geomkernel.ProjectToGroup(sp.Kernel, group, mid)
			if err != nil {
				return plannedSplit{}, errors.Wrap(err, "splitop: midpoint projection")
			}
			mid = proj
		}
	}

	var out plannedSplit
	out.midpoint = mid

	f1, err := sp.planF1(e.F0, a, b)
	if err != nil {
		return plannedSplit{}, err
	}
	out.faces[0] = f1

	if e.F1 != mesh.NoFace {
		f2, err := sp.planF2(e.F1, a, b)
		if err != nil {
			return plannedSplit{}, err
		}
		out.faces[1] = f2
	}
	return out, nil
}

// planF1 clocks F1 to [a, b, capex] and computes its split per
// §4.5.1 step 3: child F1a = [a, m, capex] reuses F1's slot, child
// F1b = [m, b, capex] is appended, and the leg edge exclusively
// bordering the appended child — (b, capex), oriented with F0 == F1
// before the split — is the one whose face slot must be reassigned.
func (sp *Splitter) planF1(faceIdx, a, b int) (*pendingFace, error) {
	store := sp.Store
	face := *store.Face(faceIdx)
	if err := face.Clock(a, b); err != nil {
		essentials.Must(errors.Wrapf(err, "splitop: clocking face %d to (%d,%d)", faceIdx, a, b))
	}
	capex := face.Nodes[2]

	legID, ok := store.FindAndOrientEdge(b, capex)
	if !ok {
		essentials.Must(errors.Errorf("splitop: required leg edge (%d,%d) not found", b, capex))
	}
	if store.Edge(legID).F0 != faceIdx {
		essentials.Must(errors.Errorf("splitop: leg edge (%d,%d) does not border face %d", b, capex, faceIdx))
	}

	return &pendingFace{
		faceIdx:  faceIdx,
		apex:     capex,
		legEdge:  legID,
		childA:   mesh.NewTriangle(a, midpointPlaceholder, capex),
		childB:   mesh.NewTriangle(midpointPlaceholder, b, capex),
		splitDir: [2]int{midpointPlaceholder, capex},
	}, nil
}

// planF2 clocks F2 to [b, a, dapex] and computes its split per
// §4.5.1 step 4: child F2a = [m, a, dapex] reuses F2's slot, child
// F2b = [b, m, dapex] is appended, and the leg edge exclusively
// bordering the appended child — (dapex, b), oriented with F0 == F2
// before the split — is the one whose face slot must be reassigned.
func (sp *Splitter) planF2(faceIdx, a, b int) (*pendingFace, error) {
	store := sp.Store
	face := *store.Face(faceIdx)
	if err := face.Clock(b, a); err != nil {
		essentials.Must(errors.Wrapf(err, "splitop: clocking face %d to (%d,%d)", faceIdx, b, a))
	}
	dapex := face.Nodes[2]

	legID, ok := store.FindAndOrientEdge(dapex, b)
	if !ok {
		essentials.Must(errors.Errorf("splitop: required leg edge (%d,%d) not found", dapex, b))
	}
	if store.Edge(legID).F0 != faceIdx {
		essentials.Must(errors.Errorf("splitop: leg edge (%d,%d) does not border face %d", dapex, b, faceIdx))
	}

	return &pendingFace{
		faceIdx:  faceIdx,
		apex:     dapex,
		legEdge:  legID,
		childA:   mesh.NewTriangle(midpointPlaceholder, a, dapex),
		childB:   mesh.NewTriangle(b, midpointPlaceholder, dapex),
		splitDir: [2]int{dapex, midpointPlaceholder},
	}, nil
}

// midpointPlaceholder stands in for the midpoint's index during
// planning, before it is known; resolveMidpoint substitutes the real
// index before any face is committed.
const midpointPlaceholder = -2

// resolveMidpoint replaces every midpointPlaceholder in pf with the
// midpoint's real point index m, now that it has been assigned.
func (pf *pendingFace) resolveMidpoint(m int) {
	replace := func(f *mesh.Face) {
		for i := 0; i < f.NumNodes; i++ {
			if f.Nodes[i] == midpointPlaceholder {
				f.Nodes[i] = m
			}
		}
	}
	replace(&pf.childA)
	replace(&pf.childB)
	for i, v := range pf.splitDir {
		if v == midpointPlaceholder {
			pf.splitDir[i] = m
		}
	}
}
