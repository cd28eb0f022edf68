package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

const (
	minimapW   = 108.0
	minimapH   = 68.0
	minimapPad = 12.0
)

// DrawMinimap renders the top-right overview: arena bounds, viewport
// rectangle, zones, sampled pickups and enemies. Regular enemies are
// cycled across frames to bound the cost; dangerous types always draw.
func DrawMinimap(e *ecs.ECS, screen *ebiten.Image) {
	session := components.MustSession(e.World)
	if !hudVisible(session.State) {
		return
	}
	pentry, ok := components.Player.First(e.World)
	if !ok {
		return
	}

	mx := session.ScreenW - minimapW - minimapPad
	my := minimapPad
	sx := minimapW / cfg.World.Width
	sy := minimapH / cfg.World.Height
	plot := func(wx, wy float64) (float32, float32) {
		return float32(mx + wx*sx), float32(my + wy*sy)
	}

	vector.DrawFilledRect(screen, float32(mx), float32(my), minimapW, minimapH,
		fade(cfg.ColorBackground, 0.85), false)
	vector.StrokeRect(screen, float32(mx), float32(my), minimapW, minimapH,
		1, cfg.ColorTextDim, false)

	components.Zone.Each(e.World, func(entry *donburi.Entry) {
		z := components.Zone.Get(entry)
		pos := components.Position.Get(entry)
		px, py := plot(pos.X, pos.Y)
		vector.DrawFilledCircle(screen, px, py, float32(z.Radius*sx), cfg.ZoneTable[z.Kind].Color, false)
	})

	i := 0
	components.Gem.Each(e.World, func(entry *donburi.Entry) {
		i++
		if i%4 != 0 {
			return
		}
		pos := components.Position.Get(entry)
		px, py := plot(pos.X, pos.Y)
		vector.DrawFilledRect(screen, px, py, 1, 1, fade(cfg.ColorXPBar, 0.7), false)
	})

	i = 0
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		en := components.Enemy.Get(entry)
		i++
		cycled := (int(session.Tick)+i)%3 == 0
		if !cycled && !cfg.EnemyTable[en.Type].Dangerous && !en.Champion {
			return
		}
		pos := components.Position.Get(entry)
		px, py := plot(pos.X, pos.Y)
		r := float32(1.5)
		if en.Type == cfg.EnemyBoss || en.Champion {
			r = 2.5
		}
		vector.DrawFilledCircle(screen, px, py, r, cfg.EnemyTable[en.Type].Color, false)
	})

	ppos := components.Position.Get(pentry)
	px, py := plot(ppos.X, ppos.Y)
	vector.DrawFilledCircle(screen, px, py, 2.5, cfg.ColorText, false)

	cam := components.MustCamera(e.World)
	vx, vy := plot(cam.X-session.ScreenW/2, cam.Y-session.ScreenH/2)
	vector.StrokeRect(screen, vx, vy,
		float32(session.ScreenW*sx), float32(session.ScreenH*sy),
		1, fade(cfg.ColorText, 0.5), false)
}
