// Package host is the desktop harness around the plugin ABI: it maps
// mouse and keyboard to the input snapshot, drives the active plugin's
// frame protocol on an 800x480 surface, and fronts it all with an
// ebitenui launcher. The embedded device loader does the same job
// against the real framebuffer; plugins cannot tell the two apart.
package host

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/plugin"
	"github.com/pautown/llizard-plugins/score"
)

// Screen is the fixed plugin surface, matching the embedded panel.
const (
	ScreenW = 800
	ScreenH = 480
)

// maxFrameDt caps measured frame time so a stalled window cannot
// teleport a simulation.
const maxFrameDt = 1.0 / 20

// Game is the harness loop: the launcher until a plugin is picked,
// then that plugin's Update/Draw protocol until it wants out.
type Game struct {
	mapper   Mapper
	launcher *launcher

	active   *plugin.Plugin
	lastTick time.Time
}

func NewGame(store score.Store) *Game {
	g := &Game{lastTick: time.Now()}
	g.launcher = newLauncher(store, func(id string) {
		if err := g.Launch(id); err != nil {
			log.Printf("Warning: could not launch %s: %v", id, err)
		}
	})
	return g
}

// Launch instantiates a registered plugin and hands it the surface.
func (g *Game) Launch(id string) error {
	p, err := plugin.Create(id)
	if err != nil {
		return err
	}
	p.Init(ScreenW, ScreenH)
	g.active = p
	return nil
}

func (g *Game) Update() error {
	now := time.Now()
	dt := gamemath.Clamp(now.Sub(g.lastTick).Seconds(), 0, maxFrameDt)
	g.lastTick = now

	in := g.mapper.Poll(dt)

	if g.active != nil {
		if in.BackPressed && !g.active.HandlesBackButton {
			g.closeActive()
			return nil
		}
		g.active.Update(in, dt)
		if g.active.WantsClose() {
			g.closeActive()
		}
		return nil
	}

	if in.BackPressed {
		return ebiten.Termination
	}
	g.launcher.update()
	return nil
}

func (g *Game) closeActive() {
	g.active.Shutdown()
	g.active = nil
	// bests may have moved while the plugin ran
	g.launcher.refresh()
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.active != nil {
		g.active.Draw(screen)
		return
	}
	g.launcher.draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenW, ScreenH
}
