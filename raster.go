package pointdist

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const markerSegments = 24

// RasterCanvas paints onto an in-memory RGBA image.
type RasterCanvas struct {
	img  *image.RGBA
	face font.Face
}

func NewRasterCanvas(width, height int, background color.RGBA) *RasterCanvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &RasterCanvas{img: img, face: basicfont.Face7x13}
}

func (rc *RasterCanvas) Image() *image.RGBA {
	return rc.img
}

func (rc *RasterCanvas) DrawLine(from, to ScreenPoint, width float64, clr color.RGBA) {
	b := rc.img.Bounds()
	x0, y0, x1, y1, ok := clipSegment(from.X, from.Y, to.X, to.Y,
		float64(b.Min.X)-width, float64(b.Min.Y)-width,
		float64(b.Max.X)+width, float64(b.Max.Y)+width)
	if !ok {
		return
	}

	dir := Vector2{X: x1 - x0, Y: y1 - y0}.Normalize()
	if dir.X == 0 && dir.Y == 0 {
		return
	}
	n := dir.Perp().Mult(width / 2)

	xp := []float64{x0 + n.X, x1 + n.X, x1 - n.X, x0 - n.X}
	yp := []float64{y0 + n.Y, y1 + n.Y, y1 - n.Y, y0 - n.Y}
	rc.fillPolygon(xp, yp, clr)
}

func (rc *RasterCanvas) DrawMarker(at ScreenPoint, radius float64, clr color.RGBA) {
	if !finite(at.X, at.Y) {
		return
	}
	b := rc.img.Bounds()
	if at.X+radius < float64(b.Min.X) || at.X-radius > float64(b.Max.X) ||
		at.Y+radius < float64(b.Min.Y) || at.Y-radius > float64(b.Max.Y) {
		return
	}

	xp := make([]float64, markerSegments)
	yp := make([]float64, markerSegments)
	for i := range xp {
		v := NewVectorFromAngle(2 * math.Pi * float64(i) / markerSegments).Mult(radius)
		xp[i] = at.X + v.X
		yp[i] = at.Y + v.Y
	}
	rc.fillPolygon(xp, yp, clr)
}

func (rc *RasterCanvas) DrawText(at ScreenPoint, text string, clr color.RGBA) {
	if !finite(at.X, at.Y) {
		return
	}
	// keep coordinates inside fixed.Int26_6 range; the drawer clips to the image
	b := rc.img.Bounds()
	x := clampFloat(at.X, float64(b.Min.X-b.Dx()), float64(b.Max.X+b.Dx()))
	y := clampFloat(at.Y, float64(b.Min.Y-b.Dy()), float64(b.Max.Y+b.Dy()))

	d := &font.Drawer{
		Dst:  rc.img,
		Src:  image.NewUniform(clr),
		Face: rc.face,
		Dot:  fixed.P(int(x), int(y)+rc.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

func (rc *RasterCanvas) fillPolygon(xp, yp []float64, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}
	b := rc.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(xp[0]), float32(yp[0]))
	for i := 1; i < len(xp); i++ {
		z.LineTo(float32(xp[i]), float32(yp[i]))
	}
	z.ClosePath()
	z.Draw(rc.img, b, image.NewUniform(clr), image.Point{})
}

// clipSegment clips a segment to the rectangle with Liang-Barsky. ok is
// false when nothing of the segment is inside.
func clipSegment(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	if !finite(x0, y0, x1, y1) {
		return 0, 0, 0, 0, false
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Rasterize paints fig onto a new image of the figure's size.
func Rasterize(fig *Figure) *image.RGBA {
	rc := NewRasterCanvas(fig.Width, fig.Height, fig.Background)
	fig.Paint(rc)
	return rc.Image()
}

// PNGDisplay shows a figure by writing it as a PNG to W.
type PNGDisplay struct {
	W io.Writer
}

func (d PNGDisplay) Show(fig *Figure) error {
	return png.Encode(d.W, Rasterize(fig))
}

// SavePNG plots p1 and p2 into a PNG file at path. Points are validated before
// the file is created, and the file is removed again if plotting fails, so an
// error never leaves a partial image behind.
func SavePNG(path string, p1, p2 any, opts ...PlotOption) (err error) {
	if _, _, err := parsePair(p1, p2); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			err = errors.Join(err, os.Remove(path))
		}
	}()

	return PlotDistance(p1, p2, PNGDisplay{W: f}, opts...)
}
