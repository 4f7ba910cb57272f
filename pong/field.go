package pong

import (
	"fmt"

	"github.com/meghashyamc/pong2d/geometry"
)

// Field is the playfield in screen coordinates: origin top-left, y grows downward.
type Field struct {
	Width  float64
	Height float64
}

func (f Field) Left() float64   { return 0 }
func (f Field) Right() float64  { return f.Width }
func (f Field) Top() float64    { return 0 }
func (f Field) Bottom() float64 { return f.Height }

func (f Field) Center() geometry.Vector {
	return geometry.Vector{X: f.Width / 2, Y: f.Height / 2}
}

func (f Field) Validate() error {
	if !(f.Width > 0) || !(f.Height > 0) {
		return fmt.Errorf("field %gx%g: %w", f.Width, f.Height, ErrInvalidDimension)
	}
	return nil
}
