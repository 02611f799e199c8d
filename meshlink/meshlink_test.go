package meshlink

import (
	"strings"
	"testing"
)

func TestLoadParsesConstraints(t *testing.T) {
	src := `<MeshLinkRefinementParams>
  <MinAllowedEdgeLength>0.01</MinAllowedEdgeLength>
  <MaxAllowedTriAspectRatio>5</MaxAllowedTriAspectRatio>
  <MinAllowedTriIncludedAngle>10</MinAllowedTriIncludedAngle>
</MeshLinkRefinementParams>`
	c, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.MinAllowedEdgeLength != 0.01 {
		t.Errorf("expected MinAllowedEdgeLength 0.01, got %v", c.MinAllowedEdgeLength)
	}
	if c.MaxAllowedTriAspectRatio != 5 {
		t.Errorf("expected MaxAllowedTriAspectRatio 5, got %v", c.MaxAllowedTriAspectRatio)
	}
	if c.MinAllowedTriIncludedAngle != 10 {
		t.Errorf("expected MinAllowedTriIncludedAngle 10, got %v", c.MinAllowedTriIncludedAngle)
	}
}

func TestLoadRejectsNonPositiveEdgeLength(t *testing.T) {
	src := `<MeshLinkRefinementParams>
  <MinAllowedEdgeLength>0</MinAllowedEdgeLength>
  <MaxAllowedTriAspectRatio>5</MaxAllowedTriAspectRatio>
  <MinAllowedTriIncludedAngle>10</MinAllowedTriIncludedAngle>
</MeshLinkRefinementParams>`
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error for a non-positive MinAllowedEdgeLength")
	}
}

func TestLoadRejectsMalformedXML(t *testing.T) {
	if _, err := Load(strings.NewReader("not xml")); err == nil {
		t.Fatal("expected an error for malformed XML")
	}
}
