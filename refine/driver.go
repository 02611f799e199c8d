// Package refine drives a full refinement pass: seed the queue from
// every edge's initial quality, propagate that urgency to neighbors,
// then repeatedly pop and split until the queue runs dry or a pass
// budget is exhausted.
package refine

import (
	"log"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"

	"github.com/unixpickle/meshrefine/assoc"
	"github.com/unixpickle/meshrefine/geomkernel"
	"github.com/unixpickle/meshrefine/mesh"
	"github.com/unixpickle/meshrefine/queue"
	"github.com/unixpickle/meshrefine/quality"
	"github.com/unixpickle/meshrefine/splitop"
)

// maxPassBudget bounds a caller-supplied PassBudget so a misconfigured
// driver can't be made to loop effectively forever.
const maxPassBudget = 10000

// Driver bundles everything a refinement run needs.
type Driver struct {
	Store   *mesh.Store
	Model   assoc.MeshModel
	Kernel  geomkernel.Kernel
	Resolve assoc.GroupResolver

	Curvature geomkernel.EdgeCurvatureConfig
	Policy    queue.OrderPolicy

	// Threshold is the quality an edge must exceed to be split.
	Threshold float64
	// PassBudget caps the number of full queue-drain passes; zero
	// means run a single pass.
	PassBudget int
}

// Result reports what a Run produced.
type Result struct {
	Passes int
	Splits int
	Stats  Statistics
}

// Run performs the refinement loop of §4.7: build edges, seed and
// propagate the queue, then split every edge that is still above
// threshold once re-scored at pop time, repeating passes (seeding
// fresh from the edges a prior pass modified) until a pass makes no
// splits or PassBudget is reached.
func (d *Driver) Run() (Result, error) {
	if err := d.Store.CreateEdges(); err != nil {
		return Result{}, errors.Wrap(err, "refine: creating edges")
	}

	scorer := &quality.Scorer{
		Store:     d.Store,
		Model:     d.Model,
		Kernel:    d.Kernel,
		Resolve:   d.Resolve,
		Curvature: d.Curvature,
	}
	sp := &splitop.Splitter{Store: d.Store, Model: d.Model, Kernel: d.Kernel, Resolve: d.Resolve}

	budget := essentials.MaxInt(1, essentials.MinInt(d.PassBudget, maxPassBudget))

	var res Result
	seed := d.allEdges()
	for pass := 0; pass < budget; pass++ {
		q := d.seedQueue(scorer, seed)
		q.AddNeighbors(d.Store, scorer, d.Threshold)

		splitCount, modified := d.drainQueue(sp, scorer, q)
		res.Passes++
		res.Splits += splitCount
		if splitCount == 0 {
			break
		}
		seed = modified
	}
	res.Stats = ComputeStatistics(d.Store, scorer)
	return res, nil
}

// allEdges returns every edge currently in the store, for the first
// pass's seed set.
func (d *Driver) allEdges() []mesh.EdgeID {
	out := make([]mesh.EdgeID, len(d.Store.Edges))
	for i := range out {
		out[i] = mesh.EdgeID(i)
	}
	return out
}

// seedQueue scores each candidate edge and enqueues those above
// threshold, per §4.7 step 1.
func (d *Driver) seedQueue(scorer *quality.Scorer, candidates []mesh.EdgeID) *queue.Queue {
	q := queue.New(d.Policy)
	for _, id := range candidates {
		if int(id) >= len(d.Store.Edges) {
			continue
		}
		e := *d.Store.Edge(id)
		qual := scorer.ComputeQuality(e)
		if qual <= d.Threshold {
			continue
		}
		length := d.Store.Points[e.N0].Dist(d.Store.Points[e.N1])
		q.Enqueue(id, length, qual)
	}
	return q
}

// drainQueue implements §4.7 step 2: pop every entry, re-fetch and
// re-score the edge against current geometry (indices may have
// shifted under earlier splits in this same pass), and split if it
// still clears threshold.
//
// The only error Split ever returns to a caller is a midpoint
// projection failure (every other failure mode is an invariant
// violation and goes through essentials.Must inside plan/planF1/
// planF2); per §4.5.3 and §7 that failure is non-fatal at this level,
// so it is logged and the edge is left unsplit rather than aborting
// the rest of the drain.
func (d *Driver) drainQueue(sp *splitop.Splitter, scorer *quality.Scorer, q *queue.Queue) (int, []mesh.EdgeID) {
	var splits int
	var modified []mesh.EdgeID
	for {
		entry, ok := q.Pop()
		if !ok {
			break
		}
		if int(entry.EdgeID) >= len(d.Store.Edges) {
			continue
		}
		e := *d.Store.Edge(entry.EdgeID)
		qual := scorer.ComputeQuality(e)
		if qual <= d.Threshold {
			continue
		}
		result, err := sp.Split(entry.EdgeID)
		if err != nil {
			log.Printf("refine: skipping edge %d: %v", entry.EdgeID, err)
			continue
		}
		splits++
		modified = append(modified, result.ModifiedEdges...)
	}
	return splits, modified
}
