package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawLabel draws text with its top-left corner at (x, y), in image
// orientation (row 0 at the top). Call it after FlipVertically.
func (c *Canvas) DrawLabel(text string, x, y int, col color.NRGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.Image(),
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}
