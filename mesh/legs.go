package mesh

import "github.com/pkg/errors"

// Legs returns the apex of face (relative to edge {n0, n1}) and the
// two "leg" node pairs (n0, apex) and (n1, apex). Package queue uses
// this to find the edges that neighbor-propagation should consider
// boosting.
func (s *Store) Legs(faceIdx, n0, n1 int) (apex int, leg0, leg1 [2]int, err error) {
	if faceIdx < 0 || faceIdx >= len(s.Faces) {
		return 0, [2]int{}, [2]int{}, errors.Errorf("mesh: face index %d out of range", faceIdx)
	}
	apex, ok := s.Faces[faceIdx].Apex(n0, n1)
	if !ok {
		return 0, [2]int{}, [2]int{}, errors.Errorf("mesh: face %d is not a triangle adjacent to {%d,%d}", faceIdx, n0, n1)
	}
	return apex, [2]int{n0, apex}, [2]int{n1, apex}, nil
}
