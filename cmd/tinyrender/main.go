// Command tinyrender renders a triangle model into a TGA image.
//
//	tinyrender -model obj/african_head.obj -texture obj/african_head_diffuse.tga
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/soypat/tinyrender/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func main() {
	var (
		modelPath   = flag.String("model", "obj/african_head.obj", "model file (.obj or .stl)")
		texturePath = flag.String("texture", "", "RLE TGA texture file")
		output      = flag.String("o", "output.tga", "output TGA file")
		size        = flag.Int("size", 800, "output width and height in pixels")
		light       = flag.String("light", "0,0,1", "direction toward the light as x,y,z")
		yaw         = flag.Float64("yaw", 0, "model rotation about the Y axis in degrees")
		fit         = flag.Bool("fit", false, "fit model into the [-1,1] cube before rendering")
		wire        = flag.Bool("wire", false, "draw wireframe only")
		preview     = flag.String("preview", "", "also write a PNG preview to this file")
		previewSize = flag.Uint("preview-size", 256, "maximum preview width and height, 0 for full size")
	)
	flag.Parse()
	lightDir, err := parseVec(*light)
	if err != nil {
		log.Fatal("bad -light: ", err)
	}

	start := time.Now()
	model, err := render.LoadModel(*modelPath)
	if err != nil {
		log.Fatal(err)
	}
	if *fit {
		model = render.FitBiUnit(model)
	}
	log.Printf("loaded %s: %d triangles", *modelPath, len(model))

	cfg := render.Config{
		Width:         *size,
		Height:        *size,
		Light:         lightDir,
		Wireframe:     *wire,
		FlatWithoutUV: true,
	}
	if *yaw != 0 {
		cfg.Transform = mgl64.HomogRotate3DY(mgl64.DegToRad(*yaw))
	}
	if *texturePath != "" {
		cfg.Texture, err = render.LoadTexture(*texturePath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("loaded texture %s: %dx%d", *texturePath, cfg.Texture.Width(), cfg.Texture.Height())
	}

	img, st, err := render.Render(cfg, model)
	if err != nil {
		log.Fatal(err)
	}
	if err = img.WriteTGA(*output); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s: %d fragments from %d triangles (%d untextured) in %s",
		*output, st.Fragments, st.Triangles, st.Untextured, time.Since(start).Round(time.Millisecond))
	if *preview != "" {
		if err = render.SavePreview(*preview, img, *previewSize); err != nil {
			log.Fatal(err)
		}
	}
}

func parseVec(s string) (r3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return r3.Vec{}, fmt.Errorf("want 3 comma separated components, got %q", s)
	}
	var f [3]float64
	for i, p := range parts {
		var err error
		f[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r3.Vec{}, err
		}
	}
	return r3.Vec{X: f[0], Y: f[1], Z: f[2]}, nil
}
