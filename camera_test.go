package pointdist

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPointInDelta(t *testing.T, expected, actual Point3d) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, float64EqualityThreshold, "X")
	assert.InDelta(t, expected.Y, actual.Y, float64EqualityThreshold, "Y")
	assert.InDelta(t, expected.Z, actual.Z, float64EqualityThreshold, "Z")
}

func TestMatrixComposition(t *testing.T) {
	// MultiplyBy applies its argument first
	m := TransMatrix(1, 0, 0).MultiplyBy(ScaleMatrix(2, 2, 2))
	assertPointInDelta(t, Point3d{X: 3, Y: 2, Z: 2}, m.TransformPoint(Point3d{X: 1, Y: 1, Z: 1}))

	m = ScaleMatrix(2, 2, 2).MultiplyBy(TransMatrix(1, 0, 0))
	assertPointInDelta(t, Point3d{X: 4, Y: 2, Z: 2}, m.TransformPoint(Point3d{X: 1, Y: 1, Z: 1}))

	assertPointInDelta(t, Point3d{X: 5, Y: 6, Z: 7}, IdentMatrix().TransformPoint(Point3d{X: 5, Y: 6, Z: 7}))
}

func TestToMatrix(t *testing.T) {
	tests := []struct {
		name     string
		m        mgl64.Mat4
		in       Point3d
		expected Point3d
	}{
		{"Translate", mgl64.Translate3D(1, 2, 3), Point3d{}, Point3d{X: 1, Y: 2, Z: 3}},
		{"Rotate Z", mgl64.HomogRotate3DZ(math.Pi / 2), Point3d{X: 1}, Point3d{Y: 1}},
		{"Rotate X", mgl64.HomogRotate3DX(math.Pi / 2), Point3d{Y: 1}, Point3d{Z: 1}},
		{"Scale", mgl64.Scale3D(2, 3, 4), Point3d{X: 1, Y: 1, Z: 1}, Point3d{X: 2, Y: 3, Z: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPointInDelta(t, tt.expected, ToMatrix(tt.m).TransformPoint(tt.in))
		})
	}
}

func TestNewBox(t *testing.T) {
	box := NewBox(Point3d{X: 0, Y: 0, Z: 0}, Point3d{X: 1, Y: 2, Z: -2})
	assertPointInDelta(t, Point3d{X: -0.1, Y: -0.2, Z: -2.2}, box.Min)
	assertPointInDelta(t, Point3d{X: 1.1, Y: 2.2, Z: 0.2}, box.Max)

	// no spread on any axis
	box = NewBox(Point3d{X: 3, Y: 3, Z: 3}, Point3d{X: 3, Y: 3, Z: 3})
	assertPointInDelta(t, Point3d{X: 2.5, Y: 2.5, Z: 2.5}, box.Min)
	assertPointInDelta(t, Point3d{X: 3.5, Y: 3.5, Z: 3.5}, box.Max)
}

func TestBoxEdges(t *testing.T) {
	box := NewBox(Point3d{}, Point3d{X: 1, Y: 1, Z: 1})
	edges := box.Edges()
	require.Len(t, edges, 12)

	corners := box.Corners()
	for _, e := range edges {
		a, b := corners[e[0]], corners[e[1]]
		differing := 0
		for _, d := range []float64{a.X - b.X, a.Y - b.Y, a.Z - b.Z} {
			if d != 0 {
				differing++
			}
		}
		assert.Equal(t, 1, differing, "edge %v must run along one axis", e)
	}
}

func TestCameraFrontView(t *testing.T) {
	box := NewBox(Point3d{}, Point3d{X: 1, Y: 1, Z: 1})
	cam := NewCamera(box, -90, 0, 640, 480)
	c := box.Center()

	center := cam.Project(c)
	assert.InDelta(t, 320, center.X, float64EqualityThreshold)
	assert.InDelta(t, 240, center.Y, float64EqualityThreshold)
	assert.InDelta(t, 0, center.Depth, float64EqualityThreshold)

	right := cam.Project(Point3d{X: box.Max.X, Y: c.Y, Z: c.Z})
	assert.Greater(t, right.X, center.X)
	assert.InDelta(t, center.Y, right.Y, float64EqualityThreshold)

	up := cam.Project(Point3d{X: c.X, Y: c.Y, Z: box.Max.Z})
	assert.Less(t, up.Y, center.Y)
	assert.InDelta(t, center.X, up.X, float64EqualityThreshold)

	far := cam.Project(Point3d{X: c.X, Y: box.Max.Y, Z: c.Z})
	assert.InDelta(t, 1, far.Depth, float64EqualityThreshold)
	assert.InDelta(t, center.X, far.X, float64EqualityThreshold)
	assert.InDelta(t, center.Y, far.Y, float64EqualityThreshold)

	// the view matrix maps the box onto the [-1, 1] cube
	view := cam.GetMatrix()
	assertPointInDelta(t, Point3d{X: -1, Y: -1, Z: -1}, view.TransformPoint(box.Min))
	assertPointInDelta(t, Point3d{X: 1, Y: 1, Z: 1}, view.TransformPoint(box.Max))
}

func TestCameraProjectUsesViewMatrix(t *testing.T) {
	box := NewBox(Point3d{X: -3, Y: 1, Z: 2}, Point3d{X: 5, Y: 4, Z: -6})
	cam := NewCamera(box, -60, 30, 640, 480)
	view := cam.GetMatrix()

	p := Point3d{X: 1, Y: 2, Z: 0}
	v := view.TransformPoint(p)
	c := view.TransformPoint(box.Center())
	projected := cam.Project(p)
	origin := cam.Project(box.Center())

	assert.InDelta(t, 0, c.X, float64EqualityThreshold)
	assert.InDelta(t, v.Y, projected.Depth, float64EqualityThreshold)

	// orthographic: screen offsets are proportional to view X and -Z
	dx, dz := projected.X-origin.X, origin.Y-projected.Y
	require.NotZero(t, v.X)
	require.NotZero(t, v.Z)
	assert.InDelta(t, dx/v.X, dz/v.Z, 1e-6)
}

func TestCameraTopView(t *testing.T) {
	box := NewBox(Point3d{}, Point3d{X: 1, Y: 1, Z: 1})
	cam := NewCamera(box, -90, 90, 640, 480)
	c := box.Center()
	center := cam.Project(c)

	north := cam.Project(Point3d{X: c.X, Y: box.Max.Y, Z: c.Z})
	assert.Less(t, north.Y, center.Y)

	top := cam.Project(Point3d{X: c.X, Y: c.Y, Z: box.Max.Z})
	assert.InDelta(t, -1, top.Depth, float64EqualityThreshold)
}

func TestCameraKeepsBoxOnCanvas(t *testing.T) {
	box := NewBox(Point3d{X: -50, Y: 10, Z: 0}, Point3d{X: 20, Y: -3, Z: 1000})
	for _, view := range [][2]float64{{-60, 30}, {0, 0}, {45, 60}, {180, -30}} {
		cam := NewCamera(box, view[0], view[1], 640, 480)
		for _, corner := range box.Corners() {
			p := cam.Project(corner)
			assert.True(t, p.X >= 0 && p.X <= 640 && p.Y >= 0 && p.Y <= 480,
				"corner %v projected off canvas at %v for view %v", corner, p, view)
		}
	}
}
