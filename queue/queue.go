// Package queue orders candidate edges for splitting and implements
// the neighbor-propagation step that spreads refinement priority
// outward from each queued edge so local refinement does not
// leave a degenerate sliver next to a well-resolved region.
//
// The queue is a splaytree.Tree ordered under a pluggable policy,
// the same shape model3d's parameterization package uses for its own
// triangle-discovery queue: a small node type with a Compare method,
// tie-broken by a monotonic UID so equal-priority entries still
// order consistently.
package queue

import "github.com/unixpickle/meshrefine/mesh"

// OrderPolicy selects how the queue ranks entries. A compile-time
// flag becomes a constructor argument here — Go has no analogous
// compile-time configuration point, and a runtime switch costs
// nothing since both orderings are cheap to compute.
type OrderPolicy int

const (
	// OrderByLength pops the shortest edge first. This is the
	// default.
	OrderByLength OrderPolicy = iota
	// OrderByQuality pops the highest-quality (most urgent) edge
	// first.
	OrderByQuality
)

// EdgeQual is one queue entry: an edge identity plus the length and
// quality it was enqueued with. Priority is a snapshot, not
// recomputed automatically — stale entries (whose indices or
// qualities have since shifted under an earlier split) are tolerated
// by design; the refine driver re-scores on pop.
type EdgeQual struct {
	EdgeID  mesh.EdgeID
	Length  float64
	Quality float64
}
