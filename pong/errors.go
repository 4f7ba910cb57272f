package pong

import "errors"

var (
	ErrInvalidRadius    = errors.New("radius must be positive")
	ErrInvalidSide      = errors.New("side must be one of top, bottom, left, right")
	ErrNotAxisAligned   = errors.New("edge endpoints are not aligned with its side")
	ErrNilEdge          = errors.New("nil edge")
	ErrInvalidDimension = errors.New("dimension must be positive")
	ErrOutOfField       = errors.New("outside the field")
	ErrInvalidCommand   = errors.New("invalid paddle command")
)
