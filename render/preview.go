package render

import (
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/tinyrender/raster"
)

// SavePreview writes img as an upright PNG file. If maxSize is not zero the
// preview is downscaled to fit within maxSize by maxSize pixels.
func SavePreview(path string, img *raster.Image, maxSize uint) error {
	var im image.Image = img
	if maxSize > 0 {
		im = resize.Thumbnail(maxSize, maxSize, img, resize.Bilinear)
	}
	return fauxgl.SavePNG(path, im)
}
