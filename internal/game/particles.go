package game

import (
	"math"
	"math/rand"
)

// Background particle constants.
const (
	particleCount     = 50
	particleBaseSpeed = 0.5
)

// particle is one drifting background mote. Purely decorative.
type particle struct {
	pos   Vec2
	size  float64
	speed float64
	angle float64
}

// initParticles seeds the background field. Deterministic under the game RNG.
func initParticles(w, h float64, rng *rand.Rand) []particle {
	ps := make([]particle, particleCount)
	for i := range ps {
		ps[i] = particle{
			pos:   Vec2{rng.Float64() * w, rng.Float64() * h},
			size:  1 + rng.Float64()*2,
			speed: particleBaseSpeed * (0.5 + rng.Float64()),
			angle: rng.Float64() * 2 * math.Pi,
		}
	}
	return ps
}

// updateParticles drifts each particle, wraps at the edges, and occasionally
// re-rolls a heading.
func updateParticles(ps []particle, w, h float64, rng *rand.Rand) {
	for i := range ps {
		p := &ps[i]
		p.pos.X += math.Cos(p.angle) * p.speed
		p.pos.Y += math.Sin(p.angle) * p.speed

		if p.pos.X < 0 {
			p.pos.X = w
		} else if p.pos.X > w {
			p.pos.X = 0
		}
		if p.pos.Y < 0 {
			p.pos.Y = h
		} else if p.pos.Y > h {
			p.pos.Y = 0
		}

		if rng.Float64() < 0.01 {
			p.angle = rng.Float64() * 2 * math.Pi
		}
	}
}
