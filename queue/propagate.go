package queue

import (
	"github.com/unixpickle/meshrefine/mesh"
	"github.com/unixpickle/meshrefine/quality"
)

// qualityBoostFactor is the minimum fraction of a queued edge's
// quality that neighbor-propagation imposes on its legs, so a sharp
// corner's urgency spreads into its neighborhood instead of stopping
// dead at the one edge that happened to cross the split threshold.
const qualityBoostFactor = 0.5

// AddNeighbors implements the two-round neighbor-propagation step.
// For every edge currently in the queue, it walks each adjacent
// face's two "leg" edges, scores them with scorer, boosts that score
// to at least qualityBoostFactor times the parent edge's quality, and
// enqueues the leg if the boosted score clears threshold. A second
// round repeats the walk starting from edges enqueued in the first
// round, so propagation reaches two edges out; edges already queued
// before or during the sweep are never revisited, since Queue.Enqueue
// is a no-op on an id already present.
func (q *Queue) AddNeighbors(store *mesh.Store, scorer *quality.Scorer, threshold float64) {
	round := q.snapshot()
	for i := 0; i < 2 && len(round) > 0; i++ {
		round = q.propagateRound(store, scorer, threshold, round)
	}
}

// snapshot returns the EdgeIDs currently queued.
func (q *Queue) snapshot() []mesh.EdgeID {
	out := make([]mesh.EdgeID, 0, len(q.set))
	for id := range q.set {
		out = append(out, id)
	}
	return out
}

// propagateRound processes one round of propagation starting from
// seed edges, returning the EdgeIDs newly enqueued during this round
// (the seed for the next round).
func (q *Queue) propagateRound(store *mesh.Store, scorer *quality.Scorer, threshold float64, seed []mesh.EdgeID) []mesh.EdgeID {
	var fresh []mesh.EdgeID
	for _, id := range seed {
		n, ok := q.set[id]
		if !ok {
			continue
		}
		parentQuality := n.Quality
		e := *store.Edge(id)
		for _, fi := range []int{e.F0, e.F1} {
			if fi == mesh.NoFace {
				continue
			}
			_, leg0, leg1 := mustLegs(store, fi, e.N0, e.N1)
			for _, leg := range [2][2]int{leg0, leg1} {
				legID, ok := store.LookupEdge(leg[0], leg[1])
				if !ok || q.Contains(legID) {
					continue
				}
				legEdge := *store.Edge(legID)
				legQuality := scorer.ComputeQuality(legEdge)
				boosted := legQuality
				if b := qualityBoostFactor * parentQuality; b > boosted {
					boosted = b
				}
				if boosted <= threshold {
					continue
				}
				length := store.Points[legEdge.N0].Dist(store.Points[legEdge.N1])
				q.Enqueue(legID, length, boosted)
				fresh = append(fresh, legID)
			}
		}
	}
	return fresh
}

// mustLegs calls Store.Legs and discards the error; propagateRound
// only ever passes a face index taken from an edge's own F0/F1, so
// the face is always adjacent to (n0, n1) and Legs cannot fail here.
func mustLegs(store *mesh.Store, faceIdx, n0, n1 int) (apex int, leg0, leg1 [2]int) {
	apex, leg0, leg1, err := store.Legs(faceIdx, n0, n1)
	if err != nil {
		panic(err)
	}
	return apex, leg0, leg1
}
