package pointdist

import "math"

type Vector2 struct {
	X float64
	Y float64
}

func NewVectorFromAngle(angle float64) Vector2 {
	return Vector2{
		X: math.Cos(angle),
		Y: math.Sin(angle),
	}
}

func (v Vector2) Normalize() Vector2 {
	magnitude := math.Sqrt(v.X*v.X + v.Y*v.Y)

	if magnitude == 0 {
		return Vector2{X: 0, Y: 0}
	}

	return Vector2{X: v.X / magnitude, Y: v.Y / magnitude}
}

// Perp returns v rotated a quarter turn counter-clockwise.
func (v Vector2) Perp() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// mult by scalar
func (v Vector2) Mult(scalar float64) Vector2 {
	return Vector2{
		X: v.X * scalar,
		Y: v.Y * scalar,
	}
}
