package pong

import (
	"fmt"

	"github.com/meghashyamc/pong2d/geometry"
	"github.com/meghashyamc/pong2d/logger"
)

// Winner is the outcome of a tick. The zero value means the rally goes on.
type Winner int

const (
	NoWinner Winner = iota
	LeftPlayer
	RightPlayer
)

func (w Winner) String() string {
	switch w {
	case NoWinner:
		return "none"
	case LeftPlayer:
		return "left player"
	case RightPlayer:
		return "right player"
	}
	return fmt.Sprintf("Winner(%d)", int(w))
}

// Ball is the moving circle. It tests a shared, ordered list of candidate
// edges every tick and reflects off at most one of them.
//
// The bounce lock keeps a ball that overlaps a boundary for several ticks
// from reflecting on each of them: it is set by a reflection and released on
// the first tick where no candidate edge is touched.
type Ball struct {
	position     geometry.Vector
	velocity     geometry.Vector
	radius       float64
	bounceLocked bool

	candidates    []*Edge
	leftBoundary  *Edge
	rightBoundary *Edge

	logger logger.Logger
}

// NewBall creates a ball testing candidates in the given order. The first
// left and right walls among them are the terminal boundaries that end the
// rally.
func NewBall(position geometry.Vector, radius float64, velocity geometry.Vector, candidates []*Edge, opts ...Option) (*Ball, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("ball radius %g: %w", radius, ErrInvalidRadius)
	}

	o := buildOptions(opts)
	b := &Ball{
		position:   position,
		velocity:   velocity,
		radius:     radius,
		candidates: make([]*Edge, 0, len(candidates)),
		logger:     o.logger,
	}

	for i, edge := range candidates {
		if edge == nil {
			return nil, fmt.Errorf("candidate %d: %w", i, ErrNilEdge)
		}
		b.candidates = append(b.candidates, edge)

		if !edge.IsWall() {
			continue
		}
		if edge.Side() == SideLeft && b.leftBoundary == nil {
			b.leftBoundary = edge
		}
		if edge.Side() == SideRight && b.rightBoundary == nil {
			b.rightBoundary = edge
		}
	}

	b.logger.Debug("ball created", "position", b.position, "velocity", b.velocity, "radius", b.radius, "candidates", len(b.candidates))
	return b, nil
}

func (b *Ball) Position() geometry.Vector { return b.position }
func (b *Ball) Velocity() geometry.Vector { return b.velocity }
func (b *Ball) Radius() float64           { return b.radius }
func (b *Ball) BounceLocked() bool        { return b.bounceLocked }

func (b *Ball) Left() float64   { return b.position.X - b.radius }
func (b *Ball) Right() float64  { return b.position.X + b.radius }
func (b *Ball) Top() float64    { return b.position.Y - b.radius }
func (b *Ball) Bottom() float64 { return b.position.Y + b.radius }

// Bounds is the ball's bounding box.
func (b *Ball) Bounds() geometry.Rect {
	return geometry.RectFromCenter(b.position, 2*b.radius, 2*b.radius)
}

// IsBeyond reports whether the ball touches or has passed the edge.
func (b *Ball) IsBeyond(edge *Edge) bool {
	return edge.DistanceTo(b) < b.radius && edge.WithinBounds(b)
}

// Update runs one tick. A ball already past a terminal boundary does not move
// and the opposite player wins. Otherwise it advances by its velocity and
// reflects off the first candidate edge it touches, unless the bounce lock
// is held.
func (b *Ball) Update() Winner {
	if winner := b.terminal(); winner != NoWinner {
		b.logger.Debug("ball crossed terminal boundary", "position", b.position, "winner", winner.String())
		return winner
	}

	b.position = b.position.Add(b.velocity)

	edge := b.firstContact()
	switch {
	case edge == nil:
		if b.bounceLocked {
			b.logger.Debug("bounce lock released", "position", b.position)
		}
		b.bounceLocked = false
	case !b.bounceLocked:
		b.reflect(edge)
	}

	return NoWinner
}

func (b *Ball) terminal() Winner {
	if b.leftBoundary != nil && b.IsBeyond(b.leftBoundary) {
		return RightPlayer
	}
	if b.rightBoundary != nil && b.IsBeyond(b.rightBoundary) {
		return LeftPlayer
	}
	return NoWinner
}

// firstContact returns the first candidate in scan order the ball is beyond.
// Corner overlaps only honour the earlier edge.
func (b *Ball) firstContact() *Edge {
	for _, edge := range b.candidates {
		if b.IsBeyond(edge) {
			return edge
		}
	}
	return nil
}

func (b *Ball) reflect(edge *Edge) {
	before := b.velocity
	b.velocity = edge.Reflect(b.velocity)
	b.bounceLocked = true

	b.logger.Debug("ball reflected",
		"edge", edge.String(),
		"position", b.position,
		"velocityBefore", before,
		"velocityAfter", b.velocity,
	)
}
