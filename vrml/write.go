package vrml

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Write emits m in the VRML subset Read accepts: a fixed header, a
// Coordinate3 point block at 17 significant digits, and an
// IndexedFaceSet coordIndex block whose lines each terminate with
// ", -1,".
func Write(w io.Writer, m *Mesh) error {
	if err := write(w, m); err != nil {
		return errors.Wrap(err, "vrml: write")
	}
	return nil
}

func write(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	lines := []string{
		"#VRML V1.0 ascii",
		"Separator {",
		"  Coordinate3 {",
		"    point [",
	}
	for _, l := range lines {
		if _, err := bw.WriteString(l + "\n"); err != nil {
			return err
		}
	}
	for _, p := range m.Points {
		line := strconv.FormatFloat(p.X, 'g', 17, 64) + " " +
			strconv.FormatFloat(p.Y, 'g', 17, 64) + " " +
			strconv.FormatFloat(p.Z, 'g', 17, 64)
		if _, err := bw.WriteString("      " + line + "\n"); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("    ]\n  }\n  IndexedFaceSet {\n    coordIndex [\n"); err != nil {
		return err
	}
	for _, face := range m.Faces {
		parts := make([]string, len(face))
		for i, idx := range face {
			parts[i] = strconv.Itoa(idx)
		}
		line := "      " + strings.Join(parts, ", ") + ", -1,"
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("    ]\n  }\n}\n"); err != nil {
		return err
	}
	return bw.Flush()
}
