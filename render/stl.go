package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/tinyrender"
	"github.com/soypat/tinyrender/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// WriteSTL writes model triangles to a writer in binary STL file format.
// Texture coordinates are not stored.
func WriteSTL(w io.Writer, model []tinyrender.Triangle) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	header := stlHeader{
		Count: uint32(len(model)),
	}
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return err
	}
	var (
		b [stlTriangleSize]byte
		d stlTriangle
	)
	for _, triangle := range model {
		d.Normal = to3F32(triangle.SurfaceNormal())
		for i := range triangle {
			d.Vertex[i] = to3F32(triangle[i].Coords())
		}
		d.put(b[:])
		if _, err := bw.Write(b[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadSTL reads a binary STL model. Triangles whose stored normal disagrees
// with the one computed from their vertices are kept and an error matching
// ErrNormalMismatch is returned along with the model.
func ReadSTL(r io.Reader) ([]tinyrender.Triangle, error) {
	return readBinarySTL(bufio.NewReader(r))
}

// LoadSTL reads the binary STL file at path.
func LoadSTL(path string) ([]tinyrender.Triangle, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadSTL(fp)
}

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

const stlTriangleSize = 50

// ErrNormalMismatch is returned by ReadSTL when stored normals do not match
// the vertex winding.
var ErrNormalMismatch = errors.New("triangle normal not approximately equal to calculated normal from vertices. Ignore this error if model is OK")

func readBinarySTL(r io.Reader) (output []tinyrender.Triangle, readErr error) {
	var header stlHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errors.New("encountered EOF while reading STL header")
		}
		return nil, errors.New("STL header read failed: " + err.Error())
	}
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf            [stlTriangleSize]byte
		d              stlTriangle
		i              int
		normMismatches int
	)
	defer func() {
		if readErr != nil && !errors.Is(readErr, ErrNormalMismatch) {
			readErr = fmt.Errorf("%d/%d STL triangles read: %w", i+1, header.Count, readErr)
		}
	}()
	// Count is unchecked input; the slice grows with the records read.
	capacity := int(header.Count)
	if capacity > 1<<16 {
		capacity = 1 << 16
	}
	output = make([]tinyrender.Triangle, 0, capacity)
	for i = 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		d.get(buf[:])
		if err := d.validate(); err != nil {
			if errors.Is(err, ErrNormalMismatch) {
				normMismatches++
				if normMismatches > 10_000 {
					// This may be valid output, so we return the triangles.
					return output, fmt.Errorf("got too many normal vector mismatches (%d)", normMismatches)
				}
				readErr = err
			} else {
				return nil, err
			}
		}
		output = append(output, d.toTriangle())
	}
	return output, readErr
}

// stlTriangle is the 50 byte triangle record of a binary STL file: a
// normal, three vertices and an unused attribute byte count.
type stlTriangle struct {
	Normal [3]float32
	Vertex [3][3]float32
}

func (t *stlTriangle) put(b []byte) {
	_ = b[stlTriangleSize-1]
	put3F32(b, t.Normal)
	for i, v := range t.Vertex {
		put3F32(b[12*(i+1):], v)
	}
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (t *stlTriangle) get(b []byte) {
	_ = b[stlTriangleSize-1]
	t.Normal = get3F32(b)
	for i := range t.Vertex {
		t.Vertex[i] = get3F32(b[12*(i+1):])
	}
}

func put3F32(b []byte, f [3]float32) {
	for i, c := range f {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(c))
	}
}

func get3F32(b []byte) (f [3]float32) {
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return f
}

func finite3F32(f [3]float32) bool {
	for _, c := range f {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// validate checks a record read from a file. Vertices closer than 1e-12 in
// every component make a degenerate triangle. A stored normal more than 5e-2
// off the computed one in either orientation is reported as ErrNormalMismatch.
func (t *stlTriangle) validate() error {
	const (
		epsilon = 1e-12
		normTol = 5e-2
	)
	if !finite3F32(t.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	for _, v := range t.Vertex {
		if !finite3F32(v) {
			return errors.New("inf/NaN STL triangle vertex")
		}
	}
	tri := t.toTriangle()
	for i := range tri {
		if d3.EqualWithin(tri[i].Coords(), tri[(i+1)%3].Coords(), epsilon) {
			return errors.New("triangle is degenerate")
		}
	}
	calc := tri.SurfaceNormal()
	stored := r3From3F32(t.Normal)
	if !d3.EqualWithin(calc, stored, normTol) && !d3.EqualWithin(r3.Scale(-1, calc), stored, normTol) {
		return ErrNormalMismatch
	}
	return nil
}

func to3F32(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func r3From3F32(f [3]float32) r3.Vec {
	return r3.Vec{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}
}

func (t *stlTriangle) toTriangle() tinyrender.Triangle {
	var tri tinyrender.Triangle
	for i, v := range t.Vertex {
		tri[i] = tinyrender.NewVertex(r3From3F32(v))
	}
	return tri
}
