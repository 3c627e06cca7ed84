package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/minigolf/internal/draw"
	"github.com/tomz197/minigolf/internal/physics"
)

// particlePool reuses Particle values across bursts.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived cosmetic speck. It takes no part in the
// simulation and is never tested against the course.
type Particle struct {
	Pos     physics.Vec2
	Vel     physics.Vec2 // Logical units per tick
	Life    int          // Ticks remaining
	MaxLife int
	Drag    float64 // Per-tick velocity factor (1.0 = no drag)
	Ink     draw.Ink
}

// NewParticle takes a particle from the pool.
func NewParticle(pos, vel physics.Vec2, life int, ink draw.Ink) *Particle {
	p := particlePool.Get().(*Particle)
	p.Pos = pos
	p.Vel = vel
	p.Life = life
	p.MaxLife = life
	p.Drag = 0.92
	p.Ink = ink
	return p
}

// Release returns the particle to the pool. The caller must drop its reference.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Burst scatters count particles from (x, y) in random directions. Speeds
// vary between half and one and a half times speed, lifetimes between half
// and all of life.
func Burst(x, y float64, count int, speed float64, life int, rng *rand.Rand) []*Particle {
	inks := []draw.Ink{draw.InkBall, draw.InkAimLow, draw.InkAimMedium, draw.InkAimHigh}
	out := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rng.Float64())
		ticks := life/2 + rng.Intn(life/2+1)

		vel := physics.Vec2{X: math.Cos(angle) * spd, Y: math.Sin(angle) * spd}
		out = append(out, NewParticle(physics.Vec2{X: x, Y: y}, vel, ticks, inks[rng.Intn(len(inks))]))
	}
	return out
}

// Update advances the particle one tick and reports whether it has expired.
func (p *Particle) Update() bool {
	p.Life--
	if p.Life <= 0 {
		return true
	}
	p.Vel = p.Vel.Scale(p.Drag)
	p.Pos = p.Pos.Add(p.Vel)
	return false
}

// Draw paints the particle until its last quarter of life.
func (p *Particle) Draw(ctx DrawContext) {
	if p.MaxLife > 0 && p.Life*4 < p.MaxLife {
		return
	}
	ctx.Canvas.SetFloat(p.Pos.X, p.Pos.Y, p.Ink)
}

// UpdateParticles advances every particle, releasing expired ones, and
// returns the survivors in the same backing array.
func UpdateParticles(ps []*Particle) []*Particle {
	live := ps[:0]
	for _, p := range ps {
		if p.Update() {
			p.Release()
			continue
		}
		live = append(live, p)
	}
	for i := len(live); i < len(ps); i++ {
		ps[i] = nil
	}
	return live
}
