package pointdist

import "github.com/go-gl/mathgl/mgl64"

// Matrix is a 4x4 transform applied to row vectors: p' = p * M, with the
// translation held in row 3.
type Matrix struct {
	ThisMatrix [][]float64
}

func NewMatrixFromData(aMatrix [][]float64) *Matrix {
	m := &Matrix{
		ThisMatrix: make([][]float64, len(aMatrix)),
	}
	for i := range aMatrix {
		m.ThisMatrix[i] = make([]float64, len(aMatrix[i]))
		copy(m.ThisMatrix[i], aMatrix[i])
	}
	return m
}

func IdentMatrix() *Matrix {
	m := make([][]float64, 4)
	for i := range m {
		m[i] = make([]float64, 4)
	}
	m[0][0], m[1][1], m[2][2], m[3][3] = 1.0, 1.0, 1.0, 1.0
	return &Matrix{ThisMatrix: m}
}

func TransMatrix(x, y, z float64) *Matrix {
	nm := IdentMatrix()
	nm.ThisMatrix[3][0] = x
	nm.ThisMatrix[3][1] = y
	nm.ThisMatrix[3][2] = z
	return nm
}

func ScaleMatrix(x, y, z float64) *Matrix {
	nm := IdentMatrix()
	nm.ThisMatrix[0][0] = x
	nm.ThisMatrix[1][1] = y
	nm.ThisMatrix[2][2] = z
	return nm
}

// MultiplyBy returns aMatrix * m, i.e. a transform that applies aMatrix
// first and m second.
func (m *Matrix) MultiplyBy(aMatrix *Matrix) *Matrix {
	newMatrixData := make([][]float64, len(aMatrix.ThisMatrix))
	for i := range newMatrixData {
		newMatrixData[i] = make([]float64, 4)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < len(aMatrix.ThisMatrix); x++ {
			newMatrixData[x][y] = m.ThisMatrix[0][y]*aMatrix.ThisMatrix[x][0] +
				m.ThisMatrix[1][y]*aMatrix.ThisMatrix[x][1] +
				m.ThisMatrix[2][y]*aMatrix.ThisMatrix[x][2] +
				m.ThisMatrix[3][y]*aMatrix.ThisMatrix[x][3]
		}
	}
	return &Matrix{ThisMatrix: newMatrixData}
}

func (m *Matrix) TransformPoint(p Point3d) Point3d {
	t := m.ThisMatrix
	return Point3d{
		X: t[0][0]*p.X + t[1][0]*p.Y + t[2][0]*p.Z + t[3][0],
		Y: t[0][1]*p.X + t[1][1]*p.Y + t[2][1]*p.Z + t[3][1],
		Z: t[0][2]*p.X + t[1][2]*p.Y + t[2][2]*p.Z + t[3][2],
	}
}

// ToMatrix converts a column-major mgl64 matrix (column vectors) into the
// equivalent row-vector Matrix.
func ToMatrix(m mgl64.Mat4) *Matrix {
	return NewMatrixFromData(
		[][]float64{
			{m[0], m[1], m[2], m[3]},
			{m[4], m[5], m[6], m[7]},
			{m[8], m[9], m[10], m[11]},
			{m[12], m[13], m[14], m[15]},
		},
	)
}
