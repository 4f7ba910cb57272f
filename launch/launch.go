// Package launch picks the velocity a ball is served with. The choice is made
// once per rally, outside the collision kernel, so that a fixed seed replays
// the same match.
package launch

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/meghashyamc/pong2d/geometry"
)

var ErrInvalidSpeedRange = errors.New("speed range must satisfy 0 < min <= max")

type Launcher struct {
	rng  *rand.Rand
	seed int64
}

// New returns a Launcher seeded with seed, or with the current time when seed is 0.
func New(seed int64) *Launcher {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Launcher{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

func (l *Launcher) Seed() int64 {
	return l.seed
}

// Velocity draws each axis speed uniformly from [min, max) and gives each
// axis a random direction.
func (l *Launcher) Velocity(min, max float64) (geometry.Vector, error) {
	if !(min > 0) || max < min {
		return geometry.Vector{}, fmt.Errorf("%w: got [%g, %g]", ErrInvalidSpeedRange, min, max)
	}

	return geometry.Vector{
		X: l.speed(min, max) * l.sign(),
		Y: l.speed(min, max) * l.sign(),
	}, nil
}

func (l *Launcher) speed(min, max float64) float64 {
	return min + l.rng.Float64()*(max-min)
}

func (l *Launcher) sign() float64 {
	return float64(l.rng.Intn(2)*2 - 1)
}
