package splitop

import (
	"github.com/unixpickle/meshrefine/assoc"
	"github.com/unixpickle/meshrefine/mesh"
)

// mirrorAssociativity implements §4.5.2: every add is issued first
// against the model, then repeated against every String/Sheet that
// also held the corresponding parent record, and the parent records
// are deleted last (by node-index tuple; deleting a record that
// doesn't exist is a no-op, left to the EntityFinder implementation).
//
// All associativity index tuples are 1-based; a, b and m below are
// the core's zero-based indices and are converted with +1 at every
// call.
func (sp *Splitter) mirrorAssociativity(a, b, m int, plan plannedSplit, splitEdgeIDs [2]mesh.EdgeID, haveSplit [2]bool) {
	model := sp.Model
	if model == nil {
		return
	}
	aa, bb, mm := a+1, b+1, m+1

	strings := model.GetMeshStrings(aa, bb)
	if rec, ok := model.FindLowestTopoEdgeByInds(aa, bb); ok {
		if feRec, feOk := model.FindFaceEdgeByInds(aa, bb); !feOk || feRec.ID != rec.ID {
			c1 := assoc.AddParams{ID: rec.ID, Aref: rec.Aref, Gref: rec.Gref, Name: rec.Name + ".1"}
			c2 := assoc.AddParams{ID: rec.ID, Aref: rec.Aref, Gref: rec.Gref, Name: rec.Name + ".2"}
			model.AddEdge(aa, mm, c1)
			model.AddEdge(bb, mm, c2)
			for _, str := range strings {
				str.AddEdge(aa, mm, c1)
				str.AddEdge(bb, mm, c2)
			}
		}
	}

	faceEdgeSheets := model.GetMeshSheetsForFaceEdge(aa, bb)
	if rec, ok := model.FindFaceEdgeByInds(aa, bb); ok {
		c1 := assoc.AddParams{ID: rec.ID, Aref: rec.Aref, Gref: rec.Gref}
		c2 := assoc.AddParams{ID: rec.ID, Aref: rec.Aref, Gref: rec.Gref}
		model.AddFaceEdge(aa, mm, c1)
		model.AddFaceEdge(bb, mm, c2)
		for _, sheet := range faceEdgeSheets {
			sheet.AddFaceEdge(aa, mm, c1)
			sheet.AddFaceEdge(bb, mm, c2)
		}
	}

	var faceSheets [2][]assoc.MeshSheet
	var faceKeys [2][3]int
	var faceFound [2]bool

	for i, pf := range plan.faces {
		if pf == nil || !haveSplit[i] {
			continue
		}
		key := [3]int{aa, bb, pf.apex + 1}
		faceKeys[i] = key
		rec, ok := model.FindFaceByInds(key[0], key[1], key[2])
		if !ok {
			continue
		}
		faceFound[i] = true
		sheets := model.GetMeshSheetsForFace(key[0], key[1], key[2])
		faceSheets[i] = sheets

		se := pf.splitDir
		seParams := assoc.AddParams{ID: rec.ID, Aref: rec.Aref, Gref: rec.Gref}
		model.AddFaceEdge(se[0]+1, se[1]+1, seParams)

		c1 := assoc.AddParams{ID: rec.ID, Aref: rec.Aref, Gref: rec.Gref, Name: rec.Name + ".1"}
		c2 := assoc.AddParams{ID: rec.ID, Aref: rec.Aref, Gref: rec.Gref, Name: rec.Name + ".2"}
		model.AddFace(pf.childA.Nodes[0]+1, pf.childA.Nodes[1]+1, pf.childA.Nodes[2]+1, c1)
		model.AddFace(pf.childB.Nodes[0]+1, pf.childB.Nodes[1]+1, pf.childB.Nodes[2]+1, c2)

		for _, sheet := range sheets {
			sheet.AddFaceEdge(se[0]+1, se[1]+1, seParams)
			sheet.AddFace(pf.childA.Nodes[0]+1, pf.childA.Nodes[1]+1, pf.childA.Nodes[2]+1, c1)
			sheet.AddFace(pf.childB.Nodes[0]+1, pf.childB.Nodes[1]+1, pf.childB.Nodes[2]+1, c2)
		}
	}

	model.DeleteEdgeByInds(aa, bb)
	for _, str := range strings {
		str.DeleteEdgeByInds(aa, bb)
	}
	for _, sheet := range faceEdgeSheets {
		sheet.DeleteEdgeByInds(aa, bb)
	}

	for i := range plan.faces {
		if !faceFound[i] {
			continue
		}
		key := faceKeys[i]
		model.DeleteFaceByInds(key[0], key[1], key[2])
		for _, sheet := range faceSheets[i] {
			sheet.DeleteFaceByInds(key[0], key[1], key[2])
		}
	}
}
