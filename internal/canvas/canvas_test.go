package canvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

var (
	red   = color.NRGBA{255, 0, 0, 255}
	green = color.NRGBA{0, 255, 0, 255}
	black = color.NRGBA{0, 0, 0, 255}
)

func TestSetAt(t *testing.T) {
	c := New(4, 3)
	c.Set(1, 2, red)
	if got := c.At(1, 2); got != red {
		t.Errorf("At(1,2) = %v, want %v", got, red)
	}
	if got := c.At(2, 1); got != (color.NRGBA{}) {
		t.Errorf("untouched pixel = %v, want transparent", got)
	}

	// Out of range writes are dropped, not wrapped into another row.
	c.Set(4, 0, green)
	c.Set(-1, 1, green)
	c.Set(0, 3, green)
	for i := 0; i < len(c.Pix); i += 4 {
		if c.Pix[i+1] != 0 {
			t.Fatalf("out-of-range Set leaked into pixel %d", i/4)
		}
	}
	if got := c.At(9, 9); got != (color.NRGBA{}) {
		t.Errorf("At out of range = %v", got)
	}
}

func TestFill(t *testing.T) {
	c := New(3, 2)
	c.Fill(black)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := c.At(x, y); got != black {
				t.Fatalf("At(%d,%d) = %v after Fill", x, y, got)
			}
		}
	}
}

func TestFlipVertically(t *testing.T) {
	for _, h := range []int{1, 2, 3, 4} {
		c := New(2, h)
		c.Set(0, 0, red)
		c.Set(1, h-1, green)
		c.FlipVertically()
		if got := c.At(0, h-1); got != red {
			t.Errorf("h=%d: bottom-left after flip = %v, want red", h, got)
		}
		if got := c.At(1, 0); got != green {
			t.Errorf("h=%d: top-right after flip = %v, want green", h, got)
		}
		c.FlipVertically()
		if got := c.At(0, 0); got != red {
			t.Errorf("h=%d: double flip is not identity", h)
		}
	}
}

func TestImageSharesPixels(t *testing.T) {
	c := New(2, 2)
	img := c.Image()
	c.Set(1, 1, red)
	if got := img.NRGBAAt(1, 1); got != red {
		t.Errorf("Image().NRGBAAt(1,1) = %v, want %v", got, red)
	}
}

func testCanvas() *Canvas {
	c := New(5, 4)
	c.Fill(black)
	c.Set(0, 0, red)
	c.Set(4, 3, green)
	return c
}

func checkDecoded(t *testing.T, img image.Image) {
	t.Helper()
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 4 {
		t.Fatalf("decoded size = %v, want 5x4", b)
	}
	at := func(x, y int) color.NRGBA {
		return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	}
	if got := at(0, 0); got != red {
		t.Errorf("pixel (0,0) = %v, want red", got)
	}
	if got := at(4, 3); got != green {
		t.Errorf("pixel (4,3) = %v, want green", got)
	}
	if got := at(2, 2); got != black {
		t.Errorf("pixel (2,2) = %v, want black", got)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	tests := []struct {
		ext    string
		decode func(*os.File) (image.Image, error)
	}{
		{".tga", func(f *os.File) (image.Image, error) { return tga.Decode(f) }},
		{".png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{".bmp", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sub", "out"+tt.ext)
			if err := testCanvas().Write(path); err != nil {
				t.Fatalf("Write: %v", err)
			}
			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			checkDecoded(t, img)
		})
	}
}

func TestEncode_WebPHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := testCanvas().Encode(&buf, ".webp"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b := buf.Bytes()
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
		t.Errorf("missing RIFF/WEBP header: % x", b[:min(12, len(b))])
	}
}

func TestWrite_Unsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	err := testCanvas().Write(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Write(.jpg) = %v, want ErrUnsupportedFormat", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("unsupported format still created a file")
	}
}

func TestDrawLabel(t *testing.T) {
	c := New(64, 16)
	c.Fill(black)
	c.DrawLabel("v#3", 1, 1, green)

	lit := 0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.At(x, y).G > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("DrawLabel drew no pixels")
	}
}
