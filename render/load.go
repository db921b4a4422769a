package render

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/soypat/tinyrender"
	"github.com/soypat/tinyrender/internal/d3"
	"github.com/soypat/tinyrender/raster"
	"github.com/soypat/tinyrender/tga"
	"gonum.org/v1/gonum/spatial/r3"
)

// LoadModel reads a model file, choosing the format by extension:
// .obj for Wavefront OBJ and .stl for binary STL.
func LoadModel(path string) ([]tinyrender.Triangle, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".stl":
		return LoadSTL(path)
	default:
		return nil, fmt.Errorf("%s: unknown model format %q", path, ext)
	}
}

// LoadTexture decodes a TGA file for use as a texture.
func LoadTexture(path string) (*raster.Image, error) {
	img, err := tga.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return raster.FromTGA(img), nil
}

// FitBiUnit returns a copy of model translated and uniformly scaled so that
// it is centered on the origin and its largest dimension spans [-1,1].
func FitBiUnit(model []tinyrender.Triangle) []tinyrender.Triangle {
	if len(model) == 0 {
		return nil
	}
	set := make(d3.Set, 0, 3*len(model))
	for _, t := range model {
		set = append(set, t[0].Coords(), t[1].Coords(), t[2].Coords())
	}
	box := d3.BoxOf(set)
	center := box.Center()
	scale := 2 / d3.Max(box.Size())
	if math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}
	out := make([]tinyrender.Triangle, len(model))
	for i, t := range model {
		out[i] = t.Transform(func(v r3.Vec) r3.Vec {
			return r3.Scale(scale, r3.Sub(v, center))
		})
	}
	return out
}
