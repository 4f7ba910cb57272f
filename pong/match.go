package pong

import (
	"fmt"

	"github.com/meghashyamc/pong2d/geometry"
	"github.com/meghashyamc/pong2d/logger"
)

// Settings describes the geometry of a match.
type Settings struct {
	Field        Field
	PaddleHeight float64
	PaddleWidth  float64
	PaddleStep   float64
	BallRadius   float64
}

// Match owns the walls, both paddles and the ball of one rally.
// It is driven from a single goroutine: Queue collects paddle commands between
// frames and Tick advances the ball and then applies them, so edges never move
// while the ball is scanning them.
type Match struct {
	settings Settings

	topWall    *Edge
	bottomWall *Edge
	leftWall   *Edge
	rightWall  *Edge

	leftPaddle  *Paddle
	rightPaddle *Paddle
	ball        *Ball

	queue  []Command
	winner Winner

	opts   []Option
	logger logger.Logger
}

// NewMatch lays out the field and serves a ball from its centre with the given velocity.
func NewMatch(settings Settings, serve geometry.Vector, opts ...Option) (*Match, error) {
	field := settings.Field
	if err := field.Validate(); err != nil {
		return nil, err
	}

	m := &Match{
		settings: settings,
		opts:     opts,
		logger:   buildOptions(opts).logger,
	}

	var err error
	if m.topWall, err = NewEdge(geometry.Vector{X: field.Left(), Y: field.Top()}, geometry.Vector{X: field.Right(), Y: field.Top()}, SideTop, true); err != nil {
		return nil, err
	}
	if m.bottomWall, err = NewEdge(geometry.Vector{X: field.Left(), Y: field.Bottom()}, geometry.Vector{X: field.Right(), Y: field.Bottom()}, SideBottom, true); err != nil {
		return nil, err
	}
	if m.leftWall, err = NewEdge(geometry.Vector{X: field.Left(), Y: field.Top()}, geometry.Vector{X: field.Left(), Y: field.Bottom()}, SideLeft, true); err != nil {
		return nil, err
	}
	if m.rightWall, err = NewEdge(geometry.Vector{X: field.Right(), Y: field.Top()}, geometry.Vector{X: field.Right(), Y: field.Bottom()}, SideRight, true); err != nil {
		return nil, err
	}

	centerY := field.Center().Y
	m.leftPaddle, err = NewPaddle(field, settings.PaddleHeight, settings.PaddleWidth,
		geometry.Vector{X: field.Left() + settings.PaddleWidth/2, Y: centerY}, SideLeft, settings.PaddleStep, opts...)
	if err != nil {
		return nil, fmt.Errorf("left paddle: %w", err)
	}
	m.rightPaddle, err = NewPaddle(field, settings.PaddleHeight, settings.PaddleWidth,
		geometry.Vector{X: field.Right() - settings.PaddleWidth/2, Y: centerY}, SideRight, settings.PaddleStep, opts...)
	if err != nil {
		return nil, fmt.Errorf("right paddle: %w", err)
	}

	if err := m.serve(serve); err != nil {
		return nil, err
	}

	m.logger.Debug("match created", "field", field, "ballRadius", settings.BallRadius)
	return m, nil
}

func (m *Match) serve(velocity geometry.Vector) error {
	ball, err := NewBall(m.settings.Field.Center(), m.settings.BallRadius, velocity, m.Candidates(), m.opts...)
	if err != nil {
		return err
	}
	m.ball = ball
	return nil
}

func (m *Match) Settings() Settings { return m.settings }
func (m *Match) Field() Field       { return m.settings.Field }
func (m *Match) Ball() *Ball        { return m.ball }
func (m *Match) Winner() Winner     { return m.winner }

func (m *Match) Paddle(p Player) *Paddle {
	switch p {
	case PlayerLeft:
		return m.leftPaddle
	case PlayerRight:
		return m.rightPaddle
	}
	return nil
}

// Walls returns the top, bottom, left and right walls.
func (m *Match) Walls() []*Edge {
	return []*Edge{m.topWall, m.bottomWall, m.leftWall, m.rightWall}
}

// Candidates is the ball's scan order: walls, then the left paddle's edges,
// then the right paddle's.
func (m *Match) Candidates() []*Edge {
	edges := m.Walls()
	edges = append(edges, m.leftPaddle.Edges()...)
	return append(edges, m.rightPaddle.Edges()...)
}

// Queue schedules a paddle command for the next Tick.
func (m *Match) Queue(cmd Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	m.queue = append(m.queue, cmd)
	return nil
}

// Tick advances the ball once and then applies queued commands in order.
// Once a player has won, Tick keeps returning that winner, discards commands
// and changes nothing.
func (m *Match) Tick() Winner {
	if m.winner != NoWinner {
		m.queue = m.queue[:0]
		return m.winner
	}

	if winner := m.ball.Update(); winner != NoWinner {
		m.winner = winner
		m.queue = m.queue[:0]
		m.logger.Info("rally won", "winner", winner.String(), "ballPosition", m.ball.Position())
		return winner
	}

	for _, cmd := range m.queue {
		m.apply(cmd)
	}
	m.queue = m.queue[:0]

	return NoWinner
}

func (m *Match) apply(cmd Command) {
	paddle := m.Paddle(cmd.Player)
	switch cmd.Direction {
	case DirectionUp:
		paddle.MoveUp()
	case DirectionDown:
		paddle.MoveDown()
	}
}

// Reset starts a new rally: paddles return to the centre and a fresh ball is
// served with the given velocity.
func (m *Match) Reset(serve geometry.Vector) error {
	m.leftPaddle.recenter()
	m.rightPaddle.recenter()
	if err := m.serve(serve); err != nil {
		return err
	}
	m.queue = m.queue[:0]
	m.winner = NoWinner

	m.logger.Debug("match reset", "serve", serve)
	return nil
}
