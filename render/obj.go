package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/soypat/tinyrender"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrParse is matched by all errors returned for malformed model files.
var ErrParse = errors.New("model parse error")

// ParseError reports a malformed line of a Wavefront OBJ file.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return "obj line " + strconv.Itoa(e.Line) + ": " + e.Msg
}

// Is makes ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ReadOBJ reads the geometry of a Wavefront OBJ file. Only vertex positions
// (v), texture coordinates (vt) and faces (f) are interpreted; other
// statements are ignored. Faces with more than three vertices are split
// into a triangle fan. A vertex gets texture coordinates only when its face
// entry references one.
func ReadOBJ(r io.Reader) ([]tinyrender.Triangle, error) {
	var (
		positions []r3.Vec
		uvs       []r2.Vec
		model     []tinyrender.Triangle
		line      int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		args := fields[1:]
		switch fields[0] {
		case "v":
			f, err := parseFloats(args, 3)
			if err != nil {
				return nil, &ParseError{Line: line, Msg: "vertex: " + err.Error()}
			}
			positions = append(positions, r3.Vec{X: f[0], Y: f[1], Z: f[2]})
		case "vt":
			f, err := parseFloats(args, 2)
			if err != nil {
				return nil, &ParseError{Line: line, Msg: "texture coordinate: " + err.Error()}
			}
			uvs = append(uvs, r2.Vec{X: f[0], Y: f[1]})
		case "f":
			if len(args) < 3 {
				return nil, &ParseError{Line: line, Msg: fmt.Sprintf("face with %d vertices", len(args))}
			}
			verts := make([]tinyrender.Vertex, len(args))
			for i, arg := range args {
				v, err := faceVertex(arg, positions, uvs)
				if err != nil {
					return nil, &ParseError{Line: line, Msg: "face: " + err.Error()}
				}
				verts[i] = v
			}
			for i := 1; i+1 < len(verts); i++ {
				model = append(model, tinyrender.Triangle{verts[0], verts[i], verts[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return model, nil
}

// LoadOBJ reads the Wavefront OBJ file at path.
func LoadOBJ(path string) ([]tinyrender.Triangle, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	model, err := ReadOBJ(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, nil
}

// faceVertex resolves a face entry of the form v, v/vt, v//vn or v/vt/vn.
func faceVertex(arg string, positions []r3.Vec, uvs []r2.Vec) (tinyrender.Vertex, error) {
	parts := strings.Split(arg, "/")
	vi, err := objIndex(parts[0], len(positions))
	if err != nil {
		return tinyrender.Vertex{}, err
	}
	if len(parts) < 2 || parts[1] == "" {
		return tinyrender.NewVertex(positions[vi]), nil
	}
	ti, err := objIndex(parts[1], len(uvs))
	if err != nil {
		return tinyrender.Vertex{}, err
	}
	return tinyrender.NewVertexUV(positions[vi], uvs[ti]), nil
}

// objIndex converts a 1-based (or negative, relative to the end) OBJ index
// into a 0-based index into a list of length n.
func objIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i += n
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %s out of range [1,%d]", s, n)
	}
	return i, nil
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("got %d components, want %d", len(args), n)
	}
	f := make([]float64, n)
	for i := range f {
		var err error
		f[i], err = strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}
