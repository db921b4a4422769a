package tga

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Encode writes img to w as an uncompressed 24 bit true color TGA image.
// All header fields other than the type, size and depth are zero.
func Encode(w io.Writer, img *Image) error {
	if img.Width < 0 || img.Height < 0 || img.Width > math.MaxUint16 || img.Height > math.MaxUint16 {
		return fmt.Errorf("tga: image size %dx%d out of range", img.Width, img.Height)
	}
	if len(img.Pix) != img.Width*img.Height {
		return errors.New("tga: pixel buffer length does not match image size")
	}
	header := Header{
		ImageType:    RawTrueColor,
		Width:        uint16(img.Width),
		Height:       uint16(img.Height),
		BitsPerPixel: 24,
	}
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return err
	}
	var b [3]byte
	for _, c := range img.Pix {
		b[0], b[1], b[2] = c.B, c.G, c.R
		if _, err := bw.Write(b[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile encodes img into a new file at path, truncating any existing file.
func WriteFile(path string, img *Image) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = Encode(fp, img)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}
