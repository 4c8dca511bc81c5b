package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

type encodeFunc func(w io.Writer, img image.Image) error

var encoders = map[string]encodeFunc{
	".tga":  tga.Encode,
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".webp": func(w io.Writer, img image.Image) error { return nativewebp.Encode(w, img, nil) },
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Formats lists the supported output extensions.
func Formats() []string {
	return []string{".tga", ".png", ".bmp", ".webp", ".tif", ".tiff"}
}

// Encode writes the canvas to w in the format named by ext (".tga", ".png", ...).
func (c *Canvas) Encode(w io.Writer, ext string) error {
	enc, ok := encoders[strings.ToLower(ext)]
	if !ok {
		return fmt.Errorf("canvas: %q: %w", ext, ErrUnsupportedFormat)
	}
	if err := enc(w, c.Image()); err != nil {
		return fmt.Errorf("canvas: encode %s: %w", ext, err)
	}
	return nil
}

// Write serializes the canvas to path, choosing the codec from the file
// extension. Missing parent directories are created.
func (c *Canvas) Write(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := encoders[ext]; !ok {
		return fmt.Errorf("canvas: %s: %w", path, ErrUnsupportedFormat)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("canvas: mkdir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("canvas: create %s: %w", path, err)
	}
	if err := c.Encode(f, ext); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("canvas: close %s: %w", path, err)
	}
	return nil
}
