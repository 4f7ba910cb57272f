package pong

import (
	"fmt"
	"strings"

	"github.com/meghashyamc/pong2d/geometry"
)

// Side names the boundary an edge represents, seen from inside the region the
// ball moves in. A left side stops a ball travelling left, so its normal points right.
type Side int

const (
	SideTop Side = iota + 1
	SideBottom
	SideLeft
	SideRight
)

func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return SideTop, nil
	case "bottom":
		return SideBottom, nil
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSide, s)
}

func (s Side) Valid() bool {
	return s >= SideTop && s <= SideRight
}

// IsHorizontal reports whether an edge on this side runs along the x axis.
func (s Side) IsHorizontal() bool {
	return s == SideTop || s == SideBottom
}

// Normal is the unit vector pointing from the boundary into the field.
func (s Side) Normal() geometry.Vector {
	switch s {
	case SideTop:
		return geometry.Vector{X: 0, Y: 1}
	case SideBottom:
		return geometry.Vector{X: 0, Y: -1}
	case SideLeft:
		return geometry.Vector{X: 1, Y: 0}
	case SideRight:
		return geometry.Vector{X: -1, Y: 0}
	}
	return geometry.Vector{}
}

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}
