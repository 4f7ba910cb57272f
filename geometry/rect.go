package geometry

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
// Y grows downward, matching screen coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCenter builds a rectangle of the given size centred on center.
func RectFromCenter(center Vector, width, height float64) Rect {
	return Rect{
		X:      center.X - width/2,
		Y:      center.Y - height/2,
		Width:  width,
		Height: height,
	}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Center() Vector {
	return Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) Translate(delta Vector) Rect {
	r.X += delta.X
	r.Y += delta.Y
	return r
}

// Intersects reports whether the two rectangles overlap. Touching edges count.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() <= other.Right() && other.Left() <= r.Right() &&
		r.Top() <= other.Bottom() && other.Top() <= r.Bottom()
}
