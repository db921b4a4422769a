// Package tga reads and writes Truevision TGA images.
//
// Decoding supports run length encoded true color images (image type 10)
// and, for reading back what this package writes, uncompressed true color
// images (image type 2). Encoding always produces uncompressed 24 bit
// true color images.
package tga

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/soypat/tinyrender"
)

// ImageType is the TGA data type code stored in the header.
type ImageType uint8

const (
	NoImageData  ImageType = 0
	RawColorMap  ImageType = 1
	RawTrueColor ImageType = 2
	RawGrayScale ImageType = 3
	RunColorMap  ImageType = 9
	RunTrueColor ImageType = 10
	RunGrayScale ImageType = 11
)

func (t ImageType) String() string {
	switch t {
	case NoImageData:
		return "no image data"
	case RawColorMap:
		return "raw color-mapped"
	case RawTrueColor:
		return "raw true-color"
	case RawGrayScale:
		return "raw grayscale"
	case RunColorMap:
		return "RLE color-mapped"
	case RunTrueColor:
		return "RLE true-color"
	case RunGrayScale:
		return "RLE grayscale"
	}
	return "unknown(" + strconv.Itoa(int(t)) + ")"
}

// HeaderSize is the size in bytes of an encoded Header.
const HeaderSize = 18

// Header is the fixed size TGA file header. Multi byte fields are little
// endian and there is no padding between fields.
type Header struct {
	IDLength        uint8
	ColorMapType    uint8
	ImageType       ImageType
	ColorMapOrigin  uint16
	ColorMapLength  uint16
	ColorMapDepth   uint8
	XOrigin         uint16
	YOrigin         uint16
	Width           uint16
	Height          uint16
	BitsPerPixel    uint8
	ImageDescriptor uint8
}

// BytesPerPixel returns the number of bytes a single pixel occupies.
func (h Header) BytesPerPixel() int {
	return (int(h.BitsPerPixel) + 7) / 8
}

// ReadHeader reads a TGA header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return h, fmt.Errorf("tga: reading header: %w", io.ErrUnexpectedEOF)
		}
		return h, fmt.Errorf("tga: reading header: %w", err)
	}
	return h, nil
}

// Image is a decoded TGA image. Pixels are stored row-major in file order,
// so the first row is the bottom of the picture for images with the default
// lower left origin.
type Image struct {
	Width, Height int
	Pix           []tinyrender.Color
}

var (
	// ErrUnsupportedFormat is matched by errors returned for images that
	// this package does not decode.
	ErrUnsupportedFormat = errors.New("tga: unsupported format")
	// ErrCorrupt is wrapped by errors returned for malformed image data.
	ErrCorrupt = errors.New("tga: corrupt image data")
)

// FormatError describes a header this package refuses to decode.
type FormatError struct {
	Type   ImageType
	Reason string
}

func (e *FormatError) Error() string {
	return "tga: unsupported " + e.Type.String() + " image: " + e.Reason
}

// Is makes FormatError match ErrUnsupportedFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}
