package raster

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/soypat/tinyrender"
	"github.com/soypat/tinyrender/tga"
	"gonum.org/v1/gonum/spatial/r2"
)

var _ image.Image = (*Image)(nil)

// Image is a framebuffer: a row-major color buffer and a depth buffer of the
// same size. Row 0 is the bottom of the picture, matching the TGA default
// origin. The size is fixed at construction.
//
// An Image is not safe for concurrent use.
type Image struct {
	width, height int
	pix           []tinyrender.Color
	depth         []float64
}

// NewImage returns a black w by h image with every depth set to the
// lowest representable value. Negative sizes are treated as zero.
func NewImage(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return newImage(w, h, make([]tinyrender.Color, w*h))
}

// FromTGA returns an Image holding a copy of a decoded TGA image's pixels.
func FromTGA(t *tga.Image) *Image {
	pix := make([]tinyrender.Color, t.Width*t.Height)
	copy(pix, t.Pix)
	return newImage(t.Width, t.Height, pix)
}

func newImage(w, h int, pix []tinyrender.Color) *Image {
	img := &Image{
		width:  w,
		height: h,
		pix:    pix,
		depth:  make([]float64, w*h),
	}
	img.ClearDepth()
	return img
}

func (img *Image) Width() int  { return img.width }
func (img *Image) Height() int { return img.height }

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

// SetPixel sets the color at (x,y). Out of bounds writes are ignored.
func (img *Image) SetPixel(x, y int, c tinyrender.Color) {
	if img.inBounds(x, y) {
		img.pix[y*img.width+x] = c
	}
}

// Pixel returns the color at (x,y). The coordinates must be in bounds.
func (img *Image) Pixel(x, y int) tinyrender.Color {
	return img.pix[y*img.width+x]
}

// SetDepth sets the depth at (x,y). Out of bounds writes are ignored.
func (img *Image) SetDepth(x, y int, d float64) {
	if img.inBounds(x, y) {
		img.depth[y*img.width+x] = d
	}
}

// Depth returns the depth at (x,y). The coordinates must be in bounds.
func (img *Image) Depth(x, y int) float64 {
	return img.depth[y*img.width+x]
}

// Clear sets every pixel to c. The depth buffer is left untouched.
func (img *Image) Clear(c tinyrender.Color) {
	for i := range img.pix {
		img.pix[i] = c
	}
}

// ClearDepth resets the depth buffer so that any fragment passes the depth test.
func (img *Image) ClearDepth() {
	for i := range img.depth {
		img.depth[i] = -math.MaxFloat64
	}
}

// Sample returns the texel nearest to a texture space coordinate.
// Coordinates are truncated and clamped to the image. An empty image
// samples as black.
func (img *Image) Sample(texel r2.Vec) tinyrender.Color {
	if img.width == 0 || img.height == 0 {
		return tinyrender.Black
	}
	x := clampInt(int(texel.X), 0, img.width-1)
	y := clampInt(int(texel.Y), 0, img.height-1)
	return img.Pixel(x, y)
}

// TGA returns a tga.Image sharing the pixel buffer of img.
func (img *Image) TGA() *tga.Image {
	return &tga.Image{Width: img.width, Height: img.height, Pix: img.pix}
}

// EncodeTGA writes the color buffer to w as an uncompressed TGA image.
func (img *Image) EncodeTGA(w io.Writer) error {
	return tga.Encode(w, img.TGA())
}

// WriteTGA writes the color buffer to a TGA file at path.
func (img *Image) WriteTGA(path string) error {
	return tga.WriteFile(path, img.TGA())
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle { return image.Rect(0, 0, img.width, img.height) }

// At implements image.Image. Image rows are flipped so that the picture is
// upright in top-left origin consumers such as PNG encoders.
func (img *Image) At(x, y int) color.Color {
	y = img.height - 1 - y
	if !img.inBounds(x, y) {
		return color.RGBA{}
	}
	c := img.Pixel(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
