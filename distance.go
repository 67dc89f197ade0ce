package pointdist

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Squared differences of coordinates at or beyond this magnitude overflow
// (or lose precision to underflow), so Distance rescales before summing.
const (
	maxUnscaled = 1e150
	minUnscaled = 1e-150
)

// DistanceBetween returns the Euclidean distance between two points in 3D
// space.
//
// Both arguments are validated first (see ParsePoint). A *TypeError is
// returned when an argument is not a sequence or holds a non-numeric
// coordinate, and a *ValueError when a sequence is empty or does not have
// exactly 3 elements.
func DistanceBetween(p1, p2 any) (float64, error) {
	a, b, err := parsePair(p1, p2)
	if err != nil {
		return 0, err
	}
	return Distance(a, b), nil
}

// Distance is the typed form of DistanceBetween. The result is finite
// whenever the true distance fits in a float64.
func Distance(a, b Point3d) float64 {
	d := b.Vec3().Sub(a.Vec3())
	m := math.Max(math.Abs(d[0]), math.Max(math.Abs(d[1]), math.Abs(d[2])))
	switch {
	case math.IsNaN(d[0]) || math.IsNaN(d[1]) || math.IsNaN(d[2]):
		return math.NaN()
	case math.IsInf(m, 1):
		return m
	case m == 0:
		return 0
	case m < maxUnscaled && m > minUnscaled:
		return d.Len()
	}
	return m * mgl64.Vec3{d[0] / m, d[1] / m, d[2] / m}.Len()
}
