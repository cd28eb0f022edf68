package components

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi"

	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// UIParticle is a screen-space spark that curves toward a fixed target,
// used for gem sparks flying into the XP bar.
type UIParticle struct {
	X, Y   float64
	VX, VY float64
	TX, TY float64
	Life   float64
	Color  color.RGBA
}

// UIParticlesData is the fixed screen-space pool.
type UIParticlesData struct {
	Items [cfg.MaxUIParticles]UIParticle
	Head  int
}

var UIParticles = donburi.NewComponentType[UIParticlesData]()

// MustUIParticles returns the singleton pool.
func MustUIParticles(w donburi.World) *UIParticlesData {
	entry, ok := UIParticles.First(w)
	if !ok {
		panic("ui particles singleton missing")
	}
	return UIParticles.Get(entry)
}

// Spawn claims the next slot.
func (p *UIParticlesData) Spawn(item UIParticle) {
	p.Items[p.Head] = item
	p.Head = (p.Head + 1) % len(p.Items)
}

// Update steers live sparks toward their targets and kills them on
// arrival.
func (p *UIParticlesData) Update(dt float64) {
	for i := range p.Items {
		it := &p.Items[i]
		if it.Life <= 0 {
			continue
		}
		it.Life -= dt
		dx, dy := it.TX-it.X, it.TY-it.Y
		dist := math.Hypot(dx, dy)
		if dist < 10 {
			it.Life = 0
			continue
		}
		// accelerate toward the target, damping the launch velocity
		it.VX += dx / dist * 2400 * dt
		it.VY += dy / dist * 2400 * dt
		it.VX *= 1 - 3*dt
		it.VY *= 1 - 3*dt
		it.X += it.VX * dt
		it.Y += it.VY * dt
	}
}
