package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pautown/llizard-plugins/gamemath"
	"github.com/pautown/llizard-plugins/survivors/components"
	cfg "github.com/pautown/llizard-plugins/survivors/config"
)

// UpdateEnemyBullets flies hostile shots, grants the graze bonus on a
// near miss and lands hits on the player.
func UpdateEnemyBullets(e *ecs.ECS) {
	session := components.MustSession(e.World)
	playerEntry, _ := components.MustPlayer(e.World)
	ppos := components.Position.Get(playerEntry)
	dt := session.Dt

	var toRemove []*donburi.Entry
	components.EnemyBullet.Each(e.World, func(entry *donburi.Entry) {
		b := components.EnemyBullet.Get(entry)
		pos := components.Position.Get(entry)

		b.Life -= dt
		pos.X += b.VX * dt
		pos.Y += b.VY * dt
		if b.Life <= 0 || outsideWorld(pos.X, pos.Y) {
			toRemove = append(toRemove, entry)
			return
		}

		dist := gamemath.Dist(pos.X, pos.Y, ppos.X, ppos.Y)
		if dist < cfg.Player.Size+4 {
			HurtPlayer(e, b.Damage, pos.X, pos.Y, nil)
			toRemove = append(toRemove, entry)
			return
		}

		// a whisker away counts: small XP for living dangerously
		if !b.Grazed && dist < cfg.Player.Size+cfg.Combat.GrazeRadius {
			b.Grazed = true
			GainXP(e, cfg.Combat.GrazeXP)
			popups := components.MustPopups(e.World)
			popups.Spawn(components.Popup{
				X: ppos.X, Y: ppos.Y - 20,
				Text: "graze", Life: 0.5, Color: cfg.ColorTextDim,
			})
		}
	})

	for _, entry := range toRemove {
		if entry.Valid() {
			e.World.Remove(entry.Entity())
		}
	}
}

// UpdateMines burns the fuses down. Each mine explodes exactly once,
// hurting the player only if inside the blast at that moment.
func UpdateMines(e *ecs.ECS) {
	session := components.MustSession(e.World)
	playerEntry, _ := components.MustPlayer(e.World)
	ppos := components.Position.Get(playerEntry)
	dt := session.Dt

	var toRemove []*donburi.Entry
	components.Mine.Each(e.World, func(entry *donburi.Entry) {
		m := components.Mine.Get(entry)
		pos := components.Position.Get(entry)

		m.Fuse -= dt
		if m.Fuse > 0 {
			return
		}

		burst(e, pos.X, pos.Y, 10, cfg.EnemyTable[cfg.EnemyBomber].Color, 150)
		session.AddShake(0.15, 3)
		if gamemath.Dist(pos.X, pos.Y, ppos.X, ppos.Y) <= m.Radius {
			HurtPlayer(e, m.Damage, pos.X, pos.Y, nil)
		}
		toRemove = append(toRemove, entry)
	})

	for _, entry := range toRemove {
		if entry.Valid() {
			e.World.Remove(entry.Entity())
		}
	}
}
