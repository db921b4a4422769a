package tga_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/soypat/tinyrender"
	"github.com/soypat/tinyrender/tga"
)

var (
	red   = tinyrender.RGB(255, 0, 0)
	green = tinyrender.RGB(0, 255, 0)
	blue  = tinyrender.RGB(0, 0, 255)
	white = tinyrender.White
)

// rleFile returns a 3x2 RLE true color image: a run of three red pixels
// followed by a raw packet holding green, blue and white.
func rleFile(t testing.TB) []byte {
	var b bytes.Buffer
	h := tga.Header{
		ImageType:    tga.RunTrueColor,
		Width:        3,
		Height:       2,
		BitsPerPixel: 24,
	}
	if err := binary.Write(&b, binary.LittleEndian, &h); err != nil {
		t.Fatal(err)
	}
	b.Write([]byte{0x80 | 2, 0, 0, 255})
	b.Write([]byte{2, 0, 255, 0, 255, 0, 0, 255, 255, 255})
	return b.Bytes()
}

func TestHeaderSize(t *testing.T) {
	if got := binary.Size(tga.Header{}); got != tga.HeaderSize {
		t.Errorf("header size %d, want %d", got, tga.HeaderSize)
	}
}

func TestDecodeRLE(t *testing.T) {
	img, err := tga.Decode(bytes.NewReader(rleFile(t)))
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("got size %dx%d, want 3x2", img.Width, img.Height)
	}
	want := []tinyrender.Color{red, red, red, green, blue, white}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("pixel %d: got %+v, want %+v", i, img.Pix[i], want[i])
		}
	}
}

func TestDecodeRLE32Bit(t *testing.T) {
	var b bytes.Buffer
	h := tga.Header{ImageType: tga.RunTrueColor, Width: 2, Height: 1, BitsPerPixel: 32}
	binary.Write(&b, binary.LittleEndian, &h)
	b.Write([]byte{0x80 | 1, 1, 2, 3, 200})
	img, err := tga.Decode(&b)
	if err != nil {
		t.Fatal(err)
	}
	want := tinyrender.Color{B: 1, G: 2, R: 3}
	if img.Pix[0] != want || img.Pix[1] != want {
		t.Errorf("got %+v, want alpha dropped %+v", img.Pix, want)
	}
}

func TestDecodeSkipsImageID(t *testing.T) {
	var b bytes.Buffer
	h := tga.Header{IDLength: 4, ImageType: tga.RunTrueColor, Width: 1, Height: 1, BitsPerPixel: 24}
	binary.Write(&b, binary.LittleEndian, &h)
	b.WriteString("abcd")
	b.Write([]byte{0x80, 9, 8, 7})
	img, err := tga.Decode(&b)
	if err != nil {
		t.Fatal(err)
	}
	if want := (tinyrender.Color{B: 9, G: 8, R: 7}); img.Pix[0] != want {
		t.Errorf("got %+v, want %+v", img.Pix[0], want)
	}
}

func TestDecodeUnsupported(t *testing.T) {
	for _, test := range []struct {
		name   string
		header tga.Header
	}{
		{"raw", tga.Header{ImageType: tga.RawTrueColor, Width: 1, Height: 1, BitsPerPixel: 24}},
		{"grayscale", tga.Header{ImageType: tga.RunGrayScale, Width: 1, Height: 1, BitsPerPixel: 8}},
		{"colormap", tga.Header{ImageType: tga.RunTrueColor, ColorMapType: 1, Width: 1, Height: 1, BitsPerPixel: 24}},
		{"16bit", tga.Header{ImageType: tga.RunTrueColor, Width: 1, Height: 1, BitsPerPixel: 16}},
	} {
		var b bytes.Buffer
		binary.Write(&b, binary.LittleEndian, &test.header)
		b.Write(make([]byte, 16))
		_, err := tga.Decode(&b)
		if !errors.Is(err, tga.ErrUnsupportedFormat) {
			t.Errorf("%s: got error %v, want ErrUnsupportedFormat", test.name, err)
		}
		var ferr *tga.FormatError
		if !errors.As(err, &ferr) || ferr.Type != test.header.ImageType {
			t.Errorf("%s: expected *FormatError for type %v, got %v", test.name, test.header.ImageType, err)
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := rleFile(t)
	for _, n := range []int{5, tga.HeaderSize + 2, len(data) - 1} {
		_, err := tga.Decode(bytes.NewReader(data[:n]))
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("truncated at %d: got %v, want io.ErrUnexpectedEOF", n, err)
		}
	}
}

func TestDecodeHugeDimensions(t *testing.T) {
	for _, test := range []struct {
		typ    tga.ImageType
		decode func(io.Reader) (*tga.Image, error)
		pixels []byte
	}{
		{tga.RunTrueColor, tga.Decode, []byte{0x80, 1, 2, 3, 4}},
		{tga.RunTrueColor, tga.Decode, []byte{0x7f, 1, 2, 3, 4}},
		{tga.RawTrueColor, tga.DecodeUncompressed, []byte{1, 2, 3, 4}},
	} {
		var b bytes.Buffer
		h := tga.Header{ImageType: test.typ, Width: 0xffff, Height: 0xffff, BitsPerPixel: 32}
		binary.Write(&b, binary.LittleEndian, &h)
		b.Write(test.pixels)
		_, err := test.decode(&b)
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("%v % x: got %v, want io.ErrUnexpectedEOF", test.typ, test.pixels, err)
		}
	}
}

func TestDecodeOverrun(t *testing.T) {
	var b bytes.Buffer
	h := tga.Header{ImageType: tga.RunTrueColor, Width: 2, Height: 1, BitsPerPixel: 24}
	binary.Write(&b, binary.LittleEndian, &h)
	b.Write([]byte{0x80 | 4, 1, 2, 3})
	_, err := tga.Decode(&b)
	if !errors.Is(err, tga.ErrCorrupt) {
		t.Errorf("got %v, want ErrCorrupt", err)
	}
}

func TestEncodeHeader(t *testing.T) {
	img := &tga.Image{Width: 2, Height: 1, Pix: []tinyrender.Color{red, blue}}
	var b bytes.Buffer
	if err := tga.Encode(&b, img); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0, 0, 2, 0, 0, 0, 0, 0, // id, cmap type, type, cmap origin, cmap length, cmap depth
		0, 0, 0, 0, 2, 0, 1, 0, // x, y origin, width, height
		24, 0,
		0, 0, 255, 255, 0, 0,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("encoded\n%v\nwant\n%v", b.Bytes(), want)
	}
}

func TestEncodeBadBuffer(t *testing.T) {
	img := &tga.Image{Width: 2, Height: 2, Pix: make([]tinyrender.Color, 3)}
	if err := tga.Encode(io.Discard, img); err == nil {
		t.Error("expected error for short pixel buffer")
	}
}

func TestRoundTrip(t *testing.T) {
	rle := rleFile(t)
	first, err := tga.Decode(bytes.NewReader(rle))
	if err != nil {
		t.Fatal(err)
	}
	var raw bytes.Buffer
	if err = tga.Encode(&raw, first); err != nil {
		t.Fatal(err)
	}
	if raw.Len() != tga.HeaderSize+3*len(first.Pix) {
		t.Errorf("raw size %d, want %d", raw.Len(), tga.HeaderSize+3*len(first.Pix))
	}
	if raw.Len() <= len(rle) {
		t.Errorf("raw encoding (%d bytes) expected larger than RLE input (%d bytes)", raw.Len(), len(rle))
	}
	second, err := tga.DecodeUncompressed(&raw)
	if err != nil {
		t.Fatal(err)
	}
	if second.Width != first.Width || second.Height != first.Height {
		t.Fatalf("size mismatch %dx%d vs %dx%d", second.Width, second.Height, first.Width, first.Height)
	}
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Errorf("pixel %d: %+v != %+v", i, second.Pix[i], first.Pix[i])
		}
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	img := &tga.Image{Width: 2, Height: 2, Pix: []tinyrender.Color{red, green, blue, white}}
	path := filepath.Join(dir, "out.tga")
	if err := tga.WriteFile(path, img); err != nil {
		t.Fatal(err)
	}
	got, err := tga.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for i := range img.Pix {
		if got.Pix[i] != img.Pix[i] {
			t.Errorf("pixel %d: %+v != %+v", i, got.Pix[i], img.Pix[i])
		}
	}
	if _, err = tga.ReadFile(filepath.Join(dir, "missing.tga")); err == nil {
		t.Error("expected error opening missing file")
	}
}
