package geometry

import (
	"fmt"
	"math"
)

// Vector is a 2D value used for both positions and velocities.
type Vector struct {
	X float64
	Y float64
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y}
}

// Dot calculates the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return Vector{0, 0}
	}
	return Vector{v.X / magnitude, v.Y / magnitude}
}

// IsAxisAligned reports whether exactly one component is non-zero.
func (v Vector) IsAxisAligned() bool {
	return (v.X == 0) != (v.Y == 0)
}

// Reflect mirrors v about the line perpendicular to normal.
// proj = -(v·n)/(n·n) * n, reflected = 2*proj + v
// The normal does not have to be unit length. A zero normal leaves v unchanged.
func (v Vector) Reflect(normal Vector) Vector {
	nn := normal.Dot(normal)
	if nn == 0 {
		return v
	}
	proj := normal.Scale(-v.Dot(normal) / nn)
	return proj.Scale(2).Add(v)
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
