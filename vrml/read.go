package vrml

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/unixpickle/meshrefine/mesh"
)

// parseState is which block the reader is currently inside.
type parseState int

const (
	stateOutside parseState = iota
	statePoints
	stateFaces
)

// Read parses the VRML subset from r: a state machine toggled by the
// literal lines "point [" and "coordIndex [", each block ending at a
// line whose trimmed content is "]". Inside the points block, each
// line holds three space-separated reals; inside the faces block,
// each line holds 3 or 4 comma-separated zero-based node indices
// followed by a -1 terminator, which is discarded.
func Read(r io.Reader) (*Mesh, error) {
	m, err := read(r)
	if err != nil {
		return nil, errors.Wrap(err, "vrml: read")
	}
	return m, nil
}

func read(r io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	m := &Mesh{}
	state := stateOutside
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch state {
		case stateOutside:
			switch line {
			case "point [":
				state = statePoints
			case "coordIndex [":
				state = stateFaces
			}
		case statePoints:
			if line == "]" {
				state = stateOutside
				continue
			}
			if line == "" {
				continue
			}
			p, err := parsePointLine(line)
			if err != nil {
				return nil, err
			}
			m.Points = append(m.Points, p)
		case stateFaces:
			if line == "]" {
				state = stateOutside
				continue
			}
			if line == "" {
				continue
			}
			face, err := parseFaceLine(line)
			if err != nil {
				return nil, err
			}
			m.Faces = append(m.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func parsePointLine(line string) (mesh.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return mesh.Point{}, errors.Errorf("expected 3 coordinates, got %d in %q", len(fields), line)
	}
	var coords [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return mesh.Point{}, errors.Wrapf(err, "parsing coordinate %q", f)
		}
		coords[i] = v
	}
	return mesh.Pt(coords[0], coords[1], coords[2]), nil
}

func parseFaceLine(line string) ([]int, error) {
	line = strings.TrimRight(line, ",")
	parts := strings.Split(line, ",")
	if len(parts) != 4 && len(parts) != 5 {
		return nil, errors.Errorf("expected 4 or 5 comma-separated fields, got %d in %q", len(parts), line)
	}
	nodes := make([]int, 0, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing node index %q", p)
		}
		nodes = append(nodes, v)
	}
	term, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing face terminator %q", parts[len(parts)-1])
	}
	if term != -1 {
		return nil, errors.Errorf("expected face terminator -1, got %d in %q", term, line)
	}
	return nodes, nil
}
