// Package survivors is the arena-survival game plugin: waves of
// enemies close on a lone hero who fights back with an evolving
// automatic arsenal, chaining kills for XP and outlasting the swarm.
package survivors

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/plugin"
	"github.com/pautown/llizard-plugins/score"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
	"github.com/pautown/llizard-plugins/survivors/systems"
	"github.com/pautown/llizard-plugins/survivors/systems/factory"
)

const ID = "survivors"

func init() {
	plugin.Register(ID, New)
}

// New builds a fresh plugin instance. Each launch gets its own world.
func New() *plugin.Plugin {
	g := &game{}
	return &plugin.Plugin{
		Name:              "Survivors",
		Description:       "Outlast the swarm. Nine weapons, thirteen threats, one arena.",
		Category:          plugin.CategoryGame,
		HandlesBackButton: true,
		Init:              g.init,
		Update:            g.update,
		Draw:              g.draw,
		Shutdown:          g.shutdown,
		WantsClose:        g.wantsClose,
	}
}

// SetScoreStore wires best-score persistence into every future
// instance. The host calls this once before launching anything.
func SetScoreStore(s score.Store) {
	systems.SetScoreStore(s)
}

type game struct {
	ecs *ecs.ECS
}

func (g *game) init(width, height int) {
	g.ecs = ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(g.ecs, float64(width), float64(height), plugin.Seed())
	systems.RegisterUpdate(g.ecs)

	// back to front
	for _, r := range []func(*ecs.ECS, *ebiten.Image){
		systems.DrawWorld,
		systems.DrawPickups,
		systems.DrawEnemies,
		systems.DrawEnemyFX,
		systems.DrawWeaponFX,
		systems.DrawPlayer,
		systems.DrawParticles,
		systems.DrawHUD,
		systems.DrawMinimap,
		systems.DrawScreens,
		systems.DrawOverlays,
	} {
		g.ecs.AddRenderer(cfg.Default, r)
	}
}

func (g *game) update(in plugin.Input, dt float64) {
	systems.SetFrame(in, dt)
	g.ecs.Update()
}

func (g *game) draw(dst *ebiten.Image) {
	g.ecs.Draw(dst)
}

func (g *game) shutdown() {
	systems.SetFrame(plugin.Input{}, 0)
	systems.ResetGrid()
	g.ecs = nil
}

func (g *game) wantsClose() bool {
	if g.ecs == nil {
		return false
	}
	return systems.WantsQuit(g.ecs)
}
