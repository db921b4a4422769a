package render

import (
	"io"

	"github.com/soypat/tinyrender"
)

// ReadAll reads the full contents of a Source and returns the slice read.
// It does not return error on io.EOF, like the io.ReadAll implementation.
func ReadAll(src Source) ([]tinyrender.Triangle, error) {
	var err error
	var nt int
	result := make([]tinyrender.Triangle, 0, 1<<12)
	buf := make([]tinyrender.Triangle, 1024)
	for {
		nt, err = src.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// NewSliceSource returns a Source reading from model.
func NewSliceSource(model []tinyrender.Triangle) Source {
	return &triangleBuffer{buf: model}
}

type triangleBuffer struct {
	buf []tinyrender.Triangle
}

// ReadTriangles reads from this buffer.
func (b *triangleBuffer) ReadTriangles(t []tinyrender.Triangle) (int, error) {
	if len(b.buf) == 0 {
		return 0, io.EOF
	}
	n := copy(t, b.buf)
	b.buf = b.buf[n:]
	return n, nil
}
