package components

import (
	"image/color"

	"github.com/yohamta/donburi"

	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// Particle is one pooled world-space fleck.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Drag    float64
	Grav    float64
	Color   color.RGBA
}

// ParticlesData is the fixed particle pool. Spawns write at Head and
// advance it, so overflowing the pool overwrites the oldest slot.
type ParticlesData struct {
	Items [cfg.MaxParticles]Particle
	Head  int
}

var Particles = donburi.NewComponentType[ParticlesData]()

// MustParticles returns the singleton pool.
func MustParticles(w donburi.World) *ParticlesData {
	entry, ok := Particles.First(w)
	if !ok {
		panic("particles singleton missing")
	}
	return Particles.Get(entry)
}

// Spawn claims the next slot.
func (p *ParticlesData) Spawn(item Particle) {
	if item.MaxLife <= 0 {
		item.MaxLife = item.Life
	}
	p.Items[p.Head] = item
	p.Head = (p.Head + 1) % len(p.Items)
}

// Update advances every live slot.
func (p *ParticlesData) Update(dt float64) {
	for i := range p.Items {
		it := &p.Items[i]
		if it.Life <= 0 {
			continue
		}
		it.Life -= dt
		it.VY += it.Grav * dt
		if it.Drag > 0 {
			f := 1 - it.Drag*dt
			if f < 0 {
				f = 0
			}
			it.VX *= f
			it.VY *= f
		}
		it.X += it.VX * dt
		it.Y += it.VY * dt
	}
}
