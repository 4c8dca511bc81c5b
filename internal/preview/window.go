// Package preview shows a finished render in a desktop window.
package preview

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"obj-rasterizer/internal/mathutil"
)

// Show opens a window displaying img at its native size, scaled by zoom.
// It blocks until the window is closed or Escape is pressed.
func Show(img image.Image, title string, zoom int) error {
	if zoom < 1 {
		zoom = 1
	}
	b := img.Bounds()
	g := &viewer{src: img, w: b.Dx(), h: b.Dy()}
	win := mathutil.Vec2i{g.w, g.h}.Scale(float64(zoom))

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(win.X(), win.Y())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

type viewer struct {
	src  image.Image
	tex  *ebiten.Image
	w, h int
}

func (g *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *viewer) Draw(screen *ebiten.Image) {
	if g.tex == nil {
		g.tex = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.tex, nil)
}

func (g *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
