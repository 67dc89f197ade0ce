package viewer

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/pointdist"
)

const antiAlias = true

// screenCanvas adapts an ebiten screen to pointdist.Canvas.
type screenCanvas struct {
	screen *ebiten.Image
	face   text.Face
}

func (c *screenCanvas) DrawLine(from, to pointdist.ScreenPoint, width float64, clr color.RGBA) {
	if !drawable(from.X, from.Y, to.X, to.Y) {
		return
	}
	vector.StrokeLine(c.screen,
		float32(from.X), float32(from.Y),
		float32(to.X), float32(to.Y),
		float32(width), clr, antiAlias)
}

func (c *screenCanvas) DrawMarker(at pointdist.ScreenPoint, radius float64, clr color.RGBA) {
	if !drawable(at.X, at.Y) {
		return
	}
	vector.DrawFilledCircle(c.screen, float32(at.X), float32(at.Y), float32(radius), clr, antiAlias)
}

func (c *screenCanvas) DrawText(at pointdist.ScreenPoint, s string, clr color.RGBA) {
	if !drawable(at.X, at.Y) {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.screen, s, c.face, op)
}

// drawable rejects coordinates that are non-finite or too large for float32.
func drawable(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxFloat32 {
			return false
		}
	}
	return true
}
