package pong

import "fmt"

type Player int

const (
	PlayerLeft Player = iota + 1
	PlayerRight
)

func (p Player) String() string {
	switch p {
	case PlayerLeft:
		return "left"
	case PlayerRight:
		return "right"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

type Direction int

const (
	DirectionUp Direction = iota + 1
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Command asks a player's paddle to take one step.
type Command struct {
	Player    Player
	Direction Direction
}

func (c Command) Validate() error {
	if c.Player != PlayerLeft && c.Player != PlayerRight {
		return fmt.Errorf("%w: player %v", ErrInvalidCommand, c.Player)
	}
	if c.Direction != DirectionUp && c.Direction != DirectionDown {
		return fmt.Errorf("%w: direction %v", ErrInvalidCommand, c.Direction)
	}
	return nil
}
