package tga

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/soypat/tinyrender"
)

// Decode reads a run length encoded true color TGA image from r.
// Any other image type is rejected with a *FormatError.
func Decode(r io.Reader) (*Image, error) {
	return decode(r, RunTrueColor)
}

// DecodeUncompressed reads an uncompressed true color TGA image from r,
// such as the ones written by Encode.
func DecodeUncompressed(r io.Reader) (*Image, error) {
	return decode(r, RawTrueColor)
}

// ReadFile decodes the TGA file at path. Both run length encoded and
// uncompressed true color images are accepted.
func ReadFile(path string) (*Image, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	img, err := decode(fp, RunTrueColor, RawTrueColor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func decode(r io.Reader, accept ...ImageType) (*Image, error) {
	br := bufio.NewReader(r)
	h, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}
	if err = checkHeader(h, accept); err != nil {
		return nil, err
	}
	// Image ID field is not used.
	if _, err = br.Discard(int(h.IDLength)); err != nil {
		return nil, fmt.Errorf("tga: skipping image ID: %w", io.ErrUnexpectedEOF)
	}
	bpp := h.BytesPerPixel()
	size := int(h.Width) * int(h.Height) * bpp
	var data []byte
	switch h.ImageType {
	case RunTrueColor:
		data, err = readRLE(br, size, bpp)
	default:
		data, err = io.ReadAll(io.LimitReader(br, int64(size)))
		if err == nil && len(data) < size {
			err = fmt.Errorf("tga: %d/%d bytes of pixel data: %w", len(data), size, io.ErrUnexpectedEOF)
		}
	}
	if err != nil {
		return nil, err
	}
	return &Image{
		Width:  int(h.Width),
		Height: int(h.Height),
		Pix:    toColors(data, bpp),
	}, nil
}

func checkHeader(h Header, accept []ImageType) error {
	ok := false
	for _, t := range accept {
		ok = ok || h.ImageType == t
	}
	switch {
	case !ok:
		return &FormatError{Type: h.ImageType, Reason: "image type not handled"}
	case h.ColorMapType != 0:
		return &FormatError{Type: h.ImageType, Reason: "color map present"}
	case h.BitsPerPixel < 24:
		return &FormatError{Type: h.ImageType, Reason: fmt.Sprintf("%d bits per pixel", h.BitsPerPixel)}
	}
	return nil
}

// readRLE decodes run length packets until size bytes have been produced.
// Each packet starts with a byte whose high bit selects a run packet (one
// pixel repeated) or a raw packet (distinct pixels). The low 7 bits plus
// one give the pixel count. The output grows with the packets read, size
// coming from an unchecked header.
func readRLE(br *bufio.Reader, size, bpp int) ([]byte, error) {
	var data []byte
	pixel := make([]byte, bpp)
	raw := make([]byte, 128*bpp)
	for len(data) < size {
		packet, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("tga: %d/%d bytes decoded: %w", len(data), size, unexpectedEOF(err))
		}
		count := int(packet&0x7f) + 1
		if count*bpp > size-len(data) {
			return nil, fmt.Errorf("%w: packet of %d pixels overruns image at byte %d", ErrCorrupt, count, len(data))
		}
		if packet&0x80 != 0 {
			if _, err = io.ReadFull(br, pixel); err != nil {
				return nil, fmt.Errorf("tga: run packet: %w", unexpectedEOF(err))
			}
			for i := 0; i < count; i++ {
				data = append(data, pixel...)
			}
			continue
		}
		if _, err = io.ReadFull(br, raw[:count*bpp]); err != nil {
			return nil, fmt.Errorf("tga: raw packet: %w", unexpectedEOF(err))
		}
		data = append(data, raw[:count*bpp]...)
	}
	return data, nil
}

// toColors groups pixel bytes into BGR colors. Bytes past the third of
// each pixel (alpha) are dropped.
func toColors(data []byte, bpp int) []tinyrender.Color {
	pix := make([]tinyrender.Color, len(data)/bpp)
	for i := range pix {
		p := data[i*bpp : i*bpp+3]
		pix[i] = tinyrender.Color{B: p[0], G: p[1], R: p[2]}
	}
	return pix
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
