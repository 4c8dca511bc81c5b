package mesh

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"obj-rasterizer/internal/logging"
	"obj-rasterizer/internal/mathutil"
)

// Load reads a Wavefront OBJ file. Only vertex positions and faces are
// kept; every error wraps ErrLoad.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w: %w", path, ErrLoad, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("mesh: %s: %w", path, err)
	}

	lo, hi := m.Bounds()
	logging.Logger().Debug("mesh loaded",
		"path", path, "vertices", m.VertexCount(), "faces", m.FaceCount(), "min", lo, "max", hi)
	return m, nil
}

// Parse reads OBJ text from r.
//
// "v x y z [w]" adds a vertex. "f g1 g2 g3 ..." adds a face where each group
// is i, i/t, i//n or i/t/n; only i is used. Indices are 1-based, negative
// ones count back from the latest vertex. Polygons are split into a fan
// of triangles (0,k,k+1). Other statements are ignored. Input without a
// single vertex, or with a non-finite coordinate, is rejected.
func Parse(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "v "):
			v, err := parseVertex(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %w", lineNo, ErrLoad, err)
			}
			m.verts = append(m.verts, v)
		case strings.HasPrefix(line, "f "):
			faces, err := parseFace(line, len(m.verts))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %w", lineNo, ErrLoad, err)
			}
			m.faces = append(m.faces, faces...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w: %w", ErrLoad, err)
	}

	n := len(m.verts)
	if n == 0 {
		return nil, fmt.Errorf("%w: no vertices", ErrLoad)
	}

	// Forward references are legal in OBJ, so range is checked last.
	for i, f := range m.faces {
		for _, vi := range f {
			if vi < 0 || vi >= n {
				return nil, fmt.Errorf("face %d: %w: vertex index %d out of range [1,%d]", i, ErrLoad, vi+1, n)
			}
		}
	}
	return m, nil
}

func parseVertex(line string) (mathutil.Vec3, error) {
	fields := strings.Fields(line)[1:]
	if len(fields) < 3 {
		return mathutil.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var v mathutil.Vec3
	for k := 0; k < 3; k++ {
		f, err := strconv.ParseFloat(fields[k], 64)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("vertex coordinate %q: %w", fields[k], err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return mathutil.Vec3{}, fmt.Errorf("vertex coordinate %q is not finite", fields[k])
		}
		v[k] = f
	}
	return v, nil
}

func parseFace(line string, nverts int) ([]Face, error) {
	groups := strings.Fields(line)[1:]
	if len(groups) < 3 {
		return nil, fmt.Errorf("face needs 3 vertices, got %d", len(groups))
	}

	idx := make([]int, len(groups))
	for k, g := range groups {
		head, _, _ := strings.Cut(g, "/")
		i, err := strconv.Atoi(head)
		if err != nil {
			return nil, fmt.Errorf("face index %q: %w", g, err)
		}
		switch {
		case i > 0:
			idx[k] = i - 1
		case i < 0:
			idx[k] = nverts + i
		default:
			return nil, fmt.Errorf("face index 0 is not valid")
		}
	}

	faces := make([]Face, 0, len(idx)-2)
	for k := 1; k+1 < len(idx); k++ {
		faces = append(faces, Face{idx[0], idx[k], idx[k+1]})
	}
	return faces, nil
}
