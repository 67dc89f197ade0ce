package pointdist

import "github.com/go-gl/mathgl/mgl64"

type Point3d struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3d(x, y, z float64) *Point3d {
	return &Point3d{
		X: x,
		Y: y,
		Z: z,
	}
}

func (p Point3d) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

func (p Point3d) Slice() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

// DistanceTo returns the Euclidean distance from p to other.
func (p Point3d) DistanceTo(other Point3d) float64 {
	return Distance(p, other)
}

// AnnotationAnchor returns where the distance label of a plot is placed.
// With averageX false the x coordinate is x1+x2 rather than the mean, which
// is how the label has always been positioned. y and z are always averaged.
func AnnotationAnchor(p1, p2 Point3d, averageX bool) Point3d {
	x := p1.X + p2.X
	if averageX {
		x /= 2
	}
	return Point3d{
		X: x,
		Y: (p1.Y + p2.Y) / 2,
		Z: (p1.Z + p2.Z) / 2,
	}
}
