package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrNoFaces = errors.New("mesh has no faces")

// objCorner is one v/vt/vn triple of a face, as zero based indices with -1
// for a missing element.
type objCorner struct {
	v, vt, vn int
}

// Progress is told the file size (-1 when unknown) before an OBJ file is
// read and returns a writer that receives every byte read. The writer is
// closed when loading ends.
type Progress func(size int64) io.WriteCloser

// LoadOBJ reads an OBJ file. progress may be nil.
func LoadOBJ(fileName string, progress Progress) (*Mesh, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open OBJ file %s: %w", fileName, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if progress != nil {
		size := int64(-1)
		if info, err := file.Stat(); err == nil {
			size = info.Size()
		}
		w := progress(size)
		defer w.Close()
		reader = io.TeeReader(file, w)
	}

	m, err := ReadOBJ(reader)
	if err != nil {
		return nil, fmt.Errorf("error parsing OBJ file %s: %w", fileName, err)
	}
	return m, nil
}

// ReadOBJ reads the geometry of a Wavefront OBJ file: v, vt, vn and f
// records. Polygons are split into triangle fans, negative indices count back
// from the latest element, and corners sharing the same v/vt/vn triple share
// one vertex. Faces without normals get the flat normal of their polygon.
// Everything else (materials, groups, smoothing) is ignored.
func ReadOBJ(reader io.Reader) (*Mesh, error) {
	var (
		positions []mgl32.Vec3
		texcoords []mgl32.Vec2
		normals   []mgl32.Vec3
	)
	b := newBuilder[objCorner]()
	// Corners with a flat normal cannot be shared across faces.
	flat := 0

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			positions = append(positions, mgl32.Vec3{p[0], p[1], p[2]})
		case "vt":
			p, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texture coordinate: %w", lineNo, err)
			}
			texcoords = append(texcoords, mgl32.Vec2{p[0], p[1]})
		case "vn":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			n := mgl32.Vec3{p[0], p[1], p[2]}
			if n.Len() > 0 {
				n = n.Normalize()
			}
			normals = append(normals, n)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners, got %d", lineNo, len(fields)-1)
			}
			corners := make([]objCorner, len(fields)-1)
			for i, f := range fields[1:] {
				c, err := parseCorner(f, len(positions), len(texcoords), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners[i] = c
			}

			faceNormal := polygonNormal(positions, corners)
			indices := make([]uint32, len(corners))
			for i, c := range corners {
				v := Vertex{Position: positions[c.v], Normal: faceNormal}
				if c.vt >= 0 {
					v.UV = texcoords[c.vt]
				}
				key := c
				if c.vn >= 0 {
					v.Normal = normals[c.vn]
				} else {
					flat++
					key.vn = -1 - flat
				}
				indices[i] = b.add(key, v)
			}
			for i := 1; i+1 < len(indices); i++ {
				b.triangle(indices[0], indices[i], indices[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from OBJ source: %w", err)
	}
	if len(b.mesh.Indices) == 0 {
		return nil, ErrNoFaces
	}
	return b.mesh, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d values, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("could not parse float value '%s': %w", fields[i], err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn".
func parseCorner(s string, nv, nvt, nvn int) (objCorner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return objCorner{}, fmt.Errorf("bad face corner '%s'", s)
	}
	c := objCorner{v: -1, vt: -1, vn: -1}
	var err error
	if c.v, err = resolveIndex(parts[0], nv); err != nil {
		return objCorner{}, fmt.Errorf("corner '%s' vertex: %w", s, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = resolveIndex(parts[1], nvt); err != nil {
			return objCorner{}, fmt.Errorf("corner '%s' texture coordinate: %w", s, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = resolveIndex(parts[2], nvn); err != nil {
			return objCorner{}, fmt.Errorf("corner '%s' normal: %w", s, err)
		}
	}
	return c, nil
}

// resolveIndex turns a one based (or negative, relative) OBJ index into a
// zero based one, checking it against the n elements read so far.
func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("index %d out of range (have %d)", i, n)
}

// polygonNormal is Newell's normal of the face; it copes with concave and
// slightly non-planar polygons.
func polygonNormal(positions []mgl32.Vec3, corners []objCorner) mgl32.Vec3 {
	var n mgl32.Vec3
	for i, c := range corners {
		cur := positions[c.v]
		next := positions[corners[(i+1)%len(corners)].v]
		n[0] += (cur[1] - next[1]) * (cur[2] + next[2])
		n[1] += (cur[2] - next[2]) * (cur[0] + next[0])
		n[2] += (cur[0] - next[0]) * (cur[1] + next[1])
	}
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}
