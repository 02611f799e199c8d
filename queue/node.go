package queue

import "github.com/unixpickle/meshrefine/mesh"

// edgeQualNode is the splaytree element. policy is copied onto every
// node from the owning Queue so Compare needs no external state;
// uid breaks ties between equal-priority entries, favoring the
// earlier-enqueued one, mirroring the UID tie-break in model3d's
// queue node.
type edgeQualNode struct {
	EdgeID  mesh.EdgeID
	Length  float64
	Quality float64
	uid     int
	policy  OrderPolicy
}

// Compare orders nodes so that Tree.Max returns the entry that
// should be popped next: the shortest edge under OrderByLength, or
// the highest-quality edge under OrderByQuality.
func (n *edgeQualNode) Compare(other *edgeQualNode) int {
	var a, b float64
	switch n.policy {
	case OrderByQuality:
		a, b = n.Quality, other.Quality
	default:
		// Shortest-first: invert so the smallest length compares
		// greatest.
		a, b = other.Length, n.Length
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	if n.uid < other.uid {
		return 1
	}
	if n.uid > other.uid {
		return -1
	}
	return 0
}
