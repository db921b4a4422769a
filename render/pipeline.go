package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/soypat/tinyrender"
	"github.com/soypat/tinyrender/raster"
	"gonum.org/v1/gonum/spatial/r3"
)

// Config holds render parameters. The zero value renders an 800x800 image
// lit from the viewer (+Z) with flat shading.
type Config struct {
	Width, Height int
	// Light is the direction toward the light. Zero means +Z.
	Light r3.Vec
	// Texture, if set, is sampled with the model's texture coordinates.
	Texture *raster.Image
	// FlatWithoutUV draws triangles lacking texture coordinates with flat
	// shading when a texture is set instead of failing the render.
	FlatWithoutUV bool
	// Transform is applied to object space positions before projection.
	// The zero matrix is treated as identity.
	Transform mgl64.Mat4
	// Wireframe draws triangle edges only, in WireColor.
	Wireframe bool
	WireColor tinyrender.Color
	// Background is the initial color of every pixel.
	Background tinyrender.Color
}

// Stats summarizes a render.
type Stats struct {
	// Triangles is the number of triangles submitted.
	Triangles int
	// Fragments is the number of pixel writes that passed the depth test.
	Fragments int
	// Untextured counts triangles drawn flat for lack of texture coordinates.
	Untextured int
}

func (cfg Config) withDefaults() Config {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	if cfg.Light == (r3.Vec{}) {
		cfg.Light = r3.Vec{Z: 1}
	}
	if cfg.Wireframe && cfg.WireColor == tinyrender.Black {
		cfg.WireColor = tinyrender.White
	}
	return cfg
}

// Render draws model into a new image, one triangle at a time.
func Render(cfg Config, model []tinyrender.Triangle) (*raster.Image, Stats, error) {
	cfg = cfg.withDefaults()
	img := raster.NewImage(cfg.Width, cfg.Height)
	if cfg.Background != tinyrender.Black {
		img.Clear(cfg.Background)
	}
	var st Stats
	err := Draw(img, cfg, NewSliceSource(model), &st)
	if err != nil {
		return nil, st, err
	}
	return img, st, nil
}

// Draw reads every triangle from src and draws it into img. A zero
// cfg.Width or cfg.Height is taken from img; a non-zero one must match it.
// If st is not nil it accumulates statistics.
func Draw(img *raster.Image, cfg Config, src Source, st *Stats) error {
	if cfg.Width <= 0 {
		cfg.Width = img.Width()
	}
	if cfg.Height <= 0 {
		cfg.Height = img.Height()
	}
	if cfg.Width != img.Width() || cfg.Height != img.Height() {
		return fmt.Errorf("render: config size %dx%d does not match image %dx%d", cfg.Width, cfg.Height, img.Width(), img.Height())
	}
	cfg = cfg.withDefaults()
	if st == nil {
		st = new(Stats)
	}
	transform := cfg.Transform != (mgl64.Mat4{})
	buf := make([]tinyrender.Triangle, 256)
	for {
		nt, err := src.ReadTriangles(buf)
		for _, t := range buf[:nt] {
			if derr := drawOne(img, cfg, transform, t, st); derr != nil {
				return derr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func drawOne(img *raster.Image, cfg Config, transform bool, t tinyrender.Triangle, st *Stats) error {
	idx := st.Triangles
	st.Triangles++
	if transform {
		t = t.Transform(func(v r3.Vec) r3.Vec {
			p := mgl64.TransformCoordinate(mgl64.Vec3{v.X, v.Y, v.Z}, cfg.Transform)
			return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
		})
	}
	t.ScaleToImage(cfg.Width, cfg.Height)
	if cfg.Wireframe {
		raster.DrawWireframe(img, t, cfg.WireColor)
		return nil
	}
	tex := cfg.Texture
	if tex != nil && cfg.FlatWithoutUV && !t.HasUV() {
		tex = nil
		st.Untextured++
	}
	n, err := raster.DrawTriangle(img, t, cfg.Light, tex)
	if err != nil {
		return fmt.Errorf("triangle %d: %w", idx, err)
	}
	st.Fragments += n
	return nil
}
