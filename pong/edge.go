package pong

import (
	"fmt"
	"math"

	"github.com/meghashyamc/pong2d/geometry"
)

// Circle is anything an Edge can be tested against.
type Circle interface {
	Position() geometry.Vector
	Radius() float64
}

// Edge is an axis-aligned boundary segment the ball can bounce off.
// Walls are treated as spanning the whole field along their length;
// paddle edges only count where the ball overlaps their span.
type Edge struct {
	start  geometry.Vector
	end    geometry.Vector
	side   Side
	isWall bool
	normal geometry.Vector
}

func NewEdge(start, end geometry.Vector, side Side, isWall bool) (*Edge, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("edge %v-%v: %w: got %v", start, end, ErrInvalidSide, side)
	}
	if side.IsHorizontal() && start.Y != end.Y || !side.IsHorizontal() && start.X != end.X {
		return nil, fmt.Errorf("%s edge %v-%v: %w", side, start, end, ErrNotAxisAligned)
	}

	return &Edge{
		start:  start,
		end:    end,
		side:   side,
		isWall: isWall,
		normal: side.Normal(),
	}, nil
}

func (e *Edge) Start() geometry.Vector  { return e.start }
func (e *Edge) End() geometry.Vector    { return e.end }
func (e *Edge) Side() Side              { return e.side }
func (e *Edge) IsWall() bool            { return e.isWall }
func (e *Edge) Normal() geometry.Vector { return e.normal }
func (e *Edge) IsHorizontal() bool      { return e.side.IsHorizontal() }

// WithinBounds reports whether the circle's bounding box reaches into the
// edge's span. It checks whether either box corner on the edge's axis lies on
// the span, so a circle wider than a short edge can straddle it and miss.
func (e *Edge) WithinBounds(c Circle) bool {
	if e.isWall {
		return true
	}

	pos, r := c.Position(), c.Radius()
	if e.IsHorizontal() {
		return geometry.InSpan(pos.X-r, e.start.X, e.end.X) ||
			geometry.InSpan(pos.X+r, e.start.X, e.end.X)
	}
	return geometry.InSpan(pos.Y-r, e.start.Y, e.end.Y) ||
		geometry.InSpan(pos.Y+r, e.start.Y, e.end.Y)
}

// DistanceTo is the perpendicular distance from the circle's centre to the
// edge's line. Only valid because every edge is axis-aligned.
func (e *Edge) DistanceTo(c Circle) float64 {
	pos := c.Position()
	if e.IsHorizontal() {
		return math.Abs(e.start.Y - pos.Y)
	}
	return math.Abs(e.start.X - pos.X)
}

// Reflect mirrors velocity about the edge. Axis-aligned normals negate a
// single component, which gives the same numbers as Vector.Reflect.
func (e *Edge) Reflect(velocity geometry.Vector) geometry.Vector {
	if !e.normal.IsAxisAligned() {
		return velocity.Reflect(e.normal)
	}
	if e.normal.X == 0 {
		velocity.Y = -velocity.Y
	} else {
		velocity.X = -velocity.X
	}
	return velocity
}

func (e *Edge) translate(delta geometry.Vector) {
	e.start = e.start.Add(delta)
	e.end = e.end.Add(delta)
}

func (e *Edge) String() string {
	kind := "paddle"
	if e.isWall {
		kind = "wall"
	}
	return fmt.Sprintf("%s %s %v-%v", e.side, kind, e.start, e.end)
}
