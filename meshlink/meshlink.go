// Package meshlink loads the mesh constraints (minimum edge length,
// maximum triangle aspect ratio, minimum included angle) from a small
// XML document, standing in for the schema-driven MeshLink file the
// driver consumes in a full CAD pipeline.
//
// No third-party MeshLink-schema library exists in the ecosystem this
// module draws on, so this reads with encoding/xml directly; see
// DESIGN.md for the justification.
package meshlink

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Constraints is the subset of a MeshLink document this package
// understands: the three scalars §3 calls "Mesh constraints".
type Constraints struct {
	MinAllowedEdgeLength       float64
	MaxAllowedTriAspectRatio   float64
	MinAllowedTriIncludedAngle float64 // degrees
}

// document is the XML shape this package reads:
//
//	<MeshLinkRefinementParams>
//	  <MinAllowedEdgeLength>0.01</MinAllowedEdgeLength>
//	  <MaxAllowedTriAspectRatio>5</MaxAllowedTriAspectRatio>
//	  <MinAllowedTriIncludedAngle>10</MinAllowedTriIncludedAngle>
//	</MeshLinkRefinementParams>
type document struct {
	XMLName                    xml.Name `xml:"MeshLinkRefinementParams"`
	MinAllowedEdgeLength       float64  `xml:"MinAllowedEdgeLength"`
	MaxAllowedTriAspectRatio   float64  `xml:"MaxAllowedTriAspectRatio"`
	MinAllowedTriIncludedAngle float64  `xml:"MinAllowedTriIncludedAngle"`
}

// LoadFile reads and parses the MeshLink constraints document at path.
func LoadFile(path string) (Constraints, error) {
	f, err := os.Open(path)
	if err != nil {
		return Constraints{}, errors.Wrapf(err, "meshlink: open %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a MeshLink constraints document from r.
func Load(r io.Reader) (Constraints, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Constraints{}, errors.Wrap(err, "meshlink: decode")
	}
	if doc.MinAllowedEdgeLength <= 0 {
		return Constraints{}, errors.New("meshlink: MinAllowedEdgeLength must be positive")
	}
	if doc.MaxAllowedTriAspectRatio <= 0 {
		return Constraints{}, errors.New("meshlink: MaxAllowedTriAspectRatio must be positive")
	}
	return Constraints{
		MinAllowedEdgeLength:       doc.MinAllowedEdgeLength,
		MaxAllowedTriAspectRatio:   doc.MaxAllowedTriAspectRatio,
		MinAllowedTriIncludedAngle: doc.MinAllowedTriIncludedAngle,
	}, nil
}
