package queue

import (
	"github.com/unixpickle/splaytree"

	"github.com/unixpickle/meshrefine/mesh"
)

// Queue is EdgeRefineQueue: an ordered set of candidate edges, keyed
// by EdgeID so an edge is never enqueued twice (the queueSet of
// §4.6).
type Queue struct {
	Policy OrderPolicy

	tree    splaytree.Tree[*edgeQualNode]
	set     map[mesh.EdgeID]*edgeQualNode
	nextUID int
}

// New creates an empty Queue under the given ordering policy.
func New(policy OrderPolicy) *Queue {
	return &Queue{Policy: policy, set: map[mesh.EdgeID]*edgeQualNode{}}
}

// Contains reports whether id is currently queued.
func (q *Queue) Contains(id mesh.EdgeID) bool {
	_, ok := q.set[id]
	return ok
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	return len(q.set)
}

// Enqueue adds id with the given length and quality. A no-op if id
// is already queued.
func (q *Queue) Enqueue(id mesh.EdgeID, length, quality float64) {
	if q.Contains(id) {
		return
	}
	q.nextUID++
	n := &edgeQualNode{EdgeID: id, Length: length, Quality: quality, uid: q.nextUID, policy: q.Policy}
	q.tree.Insert(n)
	q.set[id] = n
}

// Pop removes and returns the highest-priority entry under the
// queue's policy, or ok=false if the queue is empty.
func (q *Queue) Pop() (entry EdgeQual, ok bool) {
	n := q.tree.Max()
	if n == nil {
		return EdgeQual{}, false
	}
	q.tree.Delete(n)
	delete(q.set, n.EdgeID)
	return EdgeQual{EdgeID: n.EdgeID, Length: n.Length, Quality: n.Quality}, true
}
