package pong

import (
	"testing"

	"github.com/meghashyamc/pong2d/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPaddle(t *testing.T, center geometry.Vector, side Side, step float64) *Paddle {
	t.Helper()
	p, err := NewPaddle(testField, 200, 30, center, side, step)
	require.NoError(t, err)
	return p
}

// assertConsistent checks the three edges against the paddle's rectangle.
func assertConsistent(t *testing.T, p *Paddle) {
	t.Helper()
	r := p.Rect()

	mainX := r.Right()
	if p.Side() == SideRight {
		mainX = r.Left()
	}
	assert.Equal(t, geometry.Vector{X: mainX, Y: r.Top()}, p.MainEdge().Start())
	assert.Equal(t, geometry.Vector{X: mainX, Y: r.Bottom()}, p.MainEdge().End())
	assert.Equal(t, geometry.Vector{X: r.Left(), Y: r.Top()}, p.TopEdge().Start())
	assert.Equal(t, geometry.Vector{X: r.Right(), Y: r.Top()}, p.TopEdge().End())
	assert.Equal(t, geometry.Vector{X: r.Left(), Y: r.Bottom()}, p.BottomEdge().Start())
	assert.Equal(t, geometry.Vector{X: r.Right(), Y: r.Bottom()}, p.BottomEdge().End())
}

func TestNewPaddleLeft(t *testing.T) {
	p := mustPaddle(t, geometry.Vector{X: 15, Y: 325}, SideLeft, 15)

	assert.Equal(t, geometry.NewRect(0, 225, 30, 200), p.Rect())
	assert.Equal(t, 200.0, p.Height())
	assert.Equal(t, 30.0, p.Width())
	assert.Equal(t, 15.0, p.Step())

	edges := p.Edges()
	require.Len(t, edges, 3)
	assert.Same(t, p.MainEdge(), edges[0])
	assert.Same(t, p.TopEdge(), edges[1])
	assert.Same(t, p.BottomEdge(), edges[2])

	assert.Equal(t, SideLeft, p.MainEdge().Side())
	assert.Equal(t, SideBottom, p.TopEdge().Side())
	assert.Equal(t, SideTop, p.BottomEdge().Side())
	for _, e := range edges {
		assert.False(t, e.IsWall())
	}
	assertConsistent(t, p)
}

func TestNewPaddleRight(t *testing.T) {
	p := mustPaddle(t, geometry.Vector{X: 685, Y: 325}, SideRight, 15)

	assert.Equal(t, SideRight, p.MainEdge().Side())
	assert.Equal(t, geometry.Vector{X: 670, Y: 225}, p.MainEdge().Start())
	assertConsistent(t, p)
}

func TestNewPaddleErrors(t *testing.T) {
	tests := []struct {
		name    string
		height  float64
		width   float64
		center  geometry.Vector
		side    Side
		step    float64
		wantErr error
	}{
		{"zero height", 0, 30, geometry.Vector{X: 15, Y: 325}, SideLeft, 15, ErrInvalidDimension},
		{"negative width", 200, -1, geometry.Vector{X: 15, Y: 325}, SideLeft, 15, ErrInvalidDimension},
		{"zero step", 200, 30, geometry.Vector{X: 15, Y: 325}, SideLeft, 0, ErrInvalidDimension},
		{"top side", 200, 30, geometry.Vector{X: 15, Y: 325}, SideTop, 15, ErrInvalidSide},
		{"unknown side", 200, 30, geometry.Vector{X: 15, Y: 325}, Side(42), 15, ErrInvalidSide},
		{"above the field", 200, 30, geometry.Vector{X: 15, Y: 50}, SideLeft, 15, ErrOutOfField},
		{"past the right edge", 200, 30, geometry.Vector{X: 695, Y: 325}, SideRight, 15, ErrOutOfField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPaddle(testField, tt.height, tt.width, tt.center, tt.side, tt.step)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := NewPaddle(Field{}, 200, 30, geometry.Vector{}, SideLeft, 15)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestPaddleMoveTranslatesEveryEdge(t *testing.T) {
	p := mustPaddle(t, geometry.Vector{X: 15, Y: 325}, SideLeft, 15)

	require.True(t, p.Move(-40))
	assert.Equal(t, geometry.Vector{X: 15, Y: 285}, p.Center())
	assertConsistent(t, p)

	require.True(t, p.MoveDown())
	assert.Equal(t, geometry.Vector{X: 15, Y: 300}, p.Center())
	assertConsistent(t, p)
}

func TestPaddleMoveUpStopsAtTop(t *testing.T) {
	p := mustPaddle(t, geometry.Vector{X: 15, Y: 325}, SideLeft, 15)

	moved := 0
	for i := 0; i < 40; i++ {
		if p.MoveUp() {
			moved++
		}
		assert.GreaterOrEqual(t, p.Rect().Top(), testField.Top())
		assertConsistent(t, p)
	}

	assert.Equal(t, 15, moved)
	assert.Equal(t, 0.0, p.Rect().Top())

	at := p.Center()
	assert.False(t, p.MoveUp())
	assert.Equal(t, at, p.Center())
}

func TestPaddleMoveDownStopsAtBottom(t *testing.T) {
	p := mustPaddle(t, geometry.Vector{X: 685, Y: 325}, SideRight, 15)

	for i := 0; i < 40; i++ {
		p.MoveDown()
		assert.LessOrEqual(t, p.Rect().Bottom(), testField.Bottom())
	}

	assert.Equal(t, 650.0, p.Rect().Bottom())
	assert.Equal(t, geometry.Vector{X: 685, Y: 550}, p.Center())
	assertConsistent(t, p)
}

func TestPaddleMoveRejectsRatherThanClamps(t *testing.T) {
	p := mustPaddle(t, geometry.Vector{X: 15, Y: 325}, SideLeft, 40)

	for i := 0; i < 5; i++ {
		require.True(t, p.MoveUp())
	}
	assert.Equal(t, 25.0, p.Rect().Top())

	assert.False(t, p.MoveUp(), "a full step would leave the field")
	assert.Equal(t, 25.0, p.Rect().Top())
	assertConsistent(t, p)
}

func TestPaddleRecenter(t *testing.T) {
	p := mustPaddle(t, geometry.Vector{X: 15, Y: 325}, SideLeft, 15)
	p.Move(-100)
	p.recenter()

	assert.Equal(t, geometry.Vector{X: 15, Y: 325}, p.Center())
	assertConsistent(t, p)
}
