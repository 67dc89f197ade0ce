package pointdist

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
)

const (
	boxMargin = 0.1
	// half extent used for an axis whose data has no spread
	flatAxisHalfSpan = 0.5
)

// Box is an axis-aligned bounding box in data space.
type Box struct {
	Min Point3d
	Max Point3d
}

// NewBox returns the bounds of pts, padded on every axis by boxMargin of
// the axis span.
func NewBox(pts ...Point3d) Box {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	zs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}

	lo := make([]float64, 3)
	hi := make([]float64, 3)
	for axis, vals := range [][]float64{xs, ys, zs} {
		lo[axis], hi[axis] = axisLimits(floats.Min(vals), floats.Max(vals))
	}
	return Box{
		Min: Point3d{X: lo[0], Y: lo[1], Z: lo[2]},
		Max: Point3d{X: hi[0], Y: hi[1], Z: hi[2]},
	}
}

func axisLimits(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		if math.IsNaN(lo) || math.IsInf(lo, 0) {
			return -flatAxisHalfSpan, flatAxisHalfSpan
		}
		return lo - flatAxisHalfSpan, lo + flatAxisHalfSpan
	}
	return lo - span*boxMargin, hi + span*boxMargin
}

func (b Box) Center() Point3d {
	return Point3d{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Corners returns the 8 corners; corner i takes Max on axis k when bit k of i is set.
func (b Box) Corners() [8]Point3d {
	var c [8]Point3d
	for i := range c {
		c[i] = b.Min
		if i&1 != 0 {
			c[i].X = b.Max.X
		}
		if i&2 != 0 {
			c[i].Y = b.Max.Y
		}
		if i&4 != 0 {
			c[i].Z = b.Max.Z
		}
	}
	return c
}

// Edges returns corner index pairs for the 12 box edges.
func (b Box) Edges() [][2]int {
	edges := make([][2]int, 0, 12)
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if i&bit == 0 {
				edges = append(edges, [2]int{i, i | bit})
			}
		}
	}
	return edges
}

// ScreenPoint is a projected position in pixels. Depth grows away from the
// viewer.
type ScreenPoint struct {
	X     float64
	Y     float64
	Depth float64
}

// Camera projects data-space points onto a width x height canvas. The box is
// normalised to [-1, 1] on each axis, rotated by azimuth about Z and by
// elevation about X, and projected orthographically.
type Camera struct {
	viewMatrix *Matrix
	scale      float64
	centerX    float64
	centerY    float64
}

// NewCamera builds a camera for box. Angles are in degrees, with the same
// meaning as a matplotlib 3D axes view_init(elev, azim).
func NewCamera(box Box, azimuth, elevation float64, width, height int) *Camera {
	center := box.Center()
	toOrigin := TransMatrix(-center.X, -center.Y, -center.Z)
	normalise := ScaleMatrix(
		2/(box.Max.X-box.Min.X),
		2/(box.Max.Y-box.Min.Y),
		2/(box.Max.Z-box.Min.Z),
	)

	// viewer ends up on the -Y axis looking toward +Y, with Z up
	rotZ := mgl64.HomogRotate3DZ(degreesToRadians(-(azimuth + 90)))
	rotX := mgl64.HomogRotate3DX(degreesToRadians(elevation))
	rotation := ToMatrix(rotX.Mul4(rotZ))

	size := math.Min(float64(width), float64(height))
	return &Camera{
		viewMatrix: rotation.MultiplyBy(normalise.MultiplyBy(toOrigin)),
		scale:      0.9 * size / (2 * math.Sqrt(3)),
		centerX:    float64(width) / 2,
		centerY:    float64(height) / 2,
	}
}

// GetMatrix returns the data-space to view-space transform. View X runs right,
// view Z runs up and view Y is depth.
func (c *Camera) GetMatrix() *Matrix {
	return c.viewMatrix
}

func (c *Camera) Project(p Point3d) ScreenPoint {
	v := c.viewMatrix.TransformPoint(p)
	return ScreenPoint{
		X:     c.centerX + c.scale*v.X,
		Y:     c.centerY - c.scale*v.Z,
		Depth: v.Y,
	}
}

func degreesToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
