package pong

import (
	"fmt"

	"github.com/meghashyamc/pong2d/geometry"
	"github.com/meghashyamc/pong2d/logger"
)

// Paddle is a rectangle made of three edges that move together: the side
// facing the field and the top and bottom sides.
type Paddle struct {
	height float64
	width  float64
	center geometry.Vector
	side   Side
	step   float64
	field  Field

	mainEdge   *Edge
	topEdge    *Edge
	bottomEdge *Edge

	logger logger.Logger
}

// NewPaddle places a paddle on the left or right of the field. The step is the
// distance covered by one MoveUp or MoveDown.
func NewPaddle(field Field, height, width float64, center geometry.Vector, side Side, step float64, opts ...Option) (*Paddle, error) {
	if err := field.Validate(); err != nil {
		return nil, err
	}
	if !(height > 0) || !(width > 0) || !(step > 0) {
		return nil, fmt.Errorf("paddle height %g, width %g, step %g: %w", height, width, step, ErrInvalidDimension)
	}
	if side != SideLeft && side != SideRight {
		return nil, fmt.Errorf("paddle side %v: %w", side, ErrInvalidSide)
	}

	rect := geometry.RectFromCenter(center, width, height)
	if rect.Top() < field.Top() || rect.Bottom() > field.Bottom() ||
		rect.Left() < field.Left() || rect.Right() > field.Right() {
		return nil, fmt.Errorf("paddle at %v: %w", center, ErrOutOfField)
	}

	topLeft := geometry.Vector{X: rect.Left(), Y: rect.Top()}
	topRight := geometry.Vector{X: rect.Right(), Y: rect.Top()}
	bottomLeft := geometry.Vector{X: rect.Left(), Y: rect.Bottom()}
	bottomRight := geometry.Vector{X: rect.Right(), Y: rect.Bottom()}

	var mainEdge *Edge
	var err error
	if side == SideLeft {
		// a left paddle stops the ball on its right-hand side
		mainEdge, err = NewEdge(topRight, bottomRight, SideLeft, false)
	} else {
		mainEdge, err = NewEdge(topLeft, bottomLeft, SideRight, false)
	}
	if err != nil {
		return nil, err
	}
	// a ball above the paddle bounces up off its top, so that edge acts as a bottom boundary
	topEdge, err := NewEdge(topLeft, topRight, SideBottom, false)
	if err != nil {
		return nil, err
	}
	bottomEdge, err := NewEdge(bottomLeft, bottomRight, SideTop, false)
	if err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	p := &Paddle{
		height:     height,
		width:      width,
		center:     center,
		side:       side,
		step:       step,
		field:      field,
		mainEdge:   mainEdge,
		topEdge:    topEdge,
		bottomEdge: bottomEdge,
		logger:     o.logger,
	}

	p.logger.Debug("paddle created", "side", side.String(), "center", center, "height", height, "width", width)
	return p, nil
}

func (p *Paddle) Height() float64         { return p.height }
func (p *Paddle) Width() float64          { return p.width }
func (p *Paddle) Center() geometry.Vector { return p.center }
func (p *Paddle) Side() Side              { return p.side }
func (p *Paddle) Step() float64           { return p.step }
func (p *Paddle) MainEdge() *Edge         { return p.mainEdge }
func (p *Paddle) TopEdge() *Edge          { return p.topEdge }
func (p *Paddle) BottomEdge() *Edge       { return p.bottomEdge }

// Edges returns the field-facing, top and bottom edges in that order.
func (p *Paddle) Edges() []*Edge {
	return []*Edge{p.mainEdge, p.topEdge, p.bottomEdge}
}

func (p *Paddle) Rect() geometry.Rect {
	return geometry.RectFromCenter(p.center, p.width, p.height)
}

// Move shifts the paddle vertically by delta. A move that would take any part
// of the paddle past the top or bottom of the field is rejected and Move
// reports false.
func (p *Paddle) Move(delta float64) bool {
	next := p.Rect().Translate(geometry.Vector{Y: delta})
	if next.Top() < p.field.Top() || next.Bottom() > p.field.Bottom() {
		p.logger.Debug("paddle move rejected", "side", p.side.String(), "center", p.center, "delta", delta)
		return false
	}

	p.shift(delta)
	return true
}

func (p *Paddle) MoveUp() bool {
	return p.Move(-p.step)
}

func (p *Paddle) MoveDown() bool {
	return p.Move(p.step)
}

// recenter puts the paddle back at the vertical centre of the field.
func (p *Paddle) recenter() {
	p.shift(p.field.Center().Y - p.center.Y)
}

// shift moves the rectangle and all three edges by the same amount.
func (p *Paddle) shift(delta float64) {
	d := geometry.Vector{Y: delta}
	p.center = p.center.Add(d)
	p.mainEdge.translate(d)
	p.topEdge.translate(d)
	p.bottomEdge.translate(d)
}
