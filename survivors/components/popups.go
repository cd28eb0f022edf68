package components

import (
	"image/color"

	"github.com/yohamta/donburi"

	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// Popup is one floating world-space text: damage numbers, gem values,
// combo callouts.
type Popup struct {
	X, Y    float64
	VY      float64
	Text    string
	Life    float64
	MaxLife float64
	Big     bool
	Color   color.RGBA
}

// PopupsData is the fixed popup pool, overwrite-oldest like the
// particle pool.
type PopupsData struct {
	Items [cfg.MaxPopups]Popup
	Head  int
}

var Popups = donburi.NewComponentType[PopupsData]()

// MustPopups returns the singleton pool.
func MustPopups(w donburi.World) *PopupsData {
	entry, ok := Popups.First(w)
	if !ok {
		panic("popups singleton missing")
	}
	return Popups.Get(entry)
}

// Spawn claims the next slot.
func (p *PopupsData) Spawn(item Popup) {
	if item.MaxLife <= 0 {
		item.MaxLife = item.Life
	}
	if item.VY == 0 {
		item.VY = -34
	}
	p.Items[p.Head] = item
	p.Head = (p.Head + 1) % len(p.Items)
}

// Update floats live popups upward.
func (p *PopupsData) Update(dt float64) {
	for i := range p.Items {
		it := &p.Items[i]
		if it.Life <= 0 {
			continue
		}
		it.Life -= dt
		it.Y += it.VY * dt
	}
}
