// Package vrml reads and writes the VRML subset used to carry a mesh
// between disk and a Store: a Coordinate3 point block and an
// IndexedFaceSet coordIndex block, nothing else. It is not a general
// VRML parser or writer; the format it speaks is exactly the one
// shape its own Write produces, so a Read/Write/Read round trip is
// bit-exact up to floating-point formatting.
package vrml

import "github.com/unixpickle/meshrefine/mesh"

// Mesh is the plain point/face data this package moves to and from
// disk. It carries raw node-index tuples rather than mesh.Face
// values so reading never has to guess a triangle-vs-quad clocking
// convention that isn't this package's to assume.
type Mesh struct {
	Points []mesh.Point
	// Faces holds one entry per face: 3 indices for a triangle, 4 for
	// a quad, zero-based, in file order.
	Faces [][]int
}
